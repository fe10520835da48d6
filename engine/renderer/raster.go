package renderer

import (
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/shading"
)

// The rasterizer stands in for the fixed-function hardware between the two
// shading stages: perspective divide, viewport mapping, coverage and the
// barycentric interpolation of varyings. The stages themselves stay pure.

// toScreen maps a clip-space position to pixel coordinates, +Y up in clip
// space landing at the top of the image. Returns false for a degenerate w.
func (fb *Framebuffer) toScreen(clip math.Vec4) (math.Vec2, bool) {
	if clip.W == 0 {
		return math.Vec2{}, false
	}
	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	return math.NewVec2(
		(ndcX+1.0)*0.5*float32(fb.Width),
		(1.0-ndcY)*0.5*float32(fb.Height),
	), true
}

// edge is the signed area function. Positive when p lies to the left of the
// directed edge a->b in screen space.
func edge(a, b, p math.Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// rasterTriangle shades every pixel whose center is covered by the triangle
// and returns the number of fragment stage invocations. Pixels outside the
// target bounds are clipped here; the vertex stage intentionally produces
// out-of-frustum positions unclamped.
func (fb *Framebuffer) rasterTriangle(s *Sampler, v0, v1, v2 shading.Varyings) uint64 {
	p0, ok0 := fb.toScreen(v0.ClipPosition)
	p1, ok1 := fb.toScreen(v1.ClipPosition)
	p2, ok2 := fb.toScreen(v2.ClipPosition)
	if !ok0 || !ok1 || !ok2 {
		return 0
	}

	area := edge(p0, p1, p2)
	if area == 0 {
		return 0
	}

	minX := kfloor(min3(p0.X, p1.X, p2.X))
	maxX := kfloor(max3(p0.X, p1.X, p2.X)) + 1
	minY := kfloor(min3(p0.Y, p1.Y, p2.Y))
	maxY := kfloor(max3(p0.Y, p1.Y, p2.Y)) + 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > int(fb.Width) {
		maxX = int(fb.Width)
	}
	if maxY > int(fb.Height) {
		maxY = int(fb.Height)
	}

	var shaded uint64
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := math.NewVec2(float32(x)+0.5, float32(y)+0.5)

			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)

			// Accept both windings; back-face culling is not part of a
			// 2D tile pass.
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else {
				if w0 > 0 || w1 > 0 || w2 > 0 {
					continue
				}
			}

			bary := shading.Barycentric{
				W0: w0 / area,
				W1: w1 / area,
				W2: w2 / area,
			}
			frag := shading.Interpolate(v0, v1, v2, bary)
			fb.set(x, y, shading.FragmentStage(s, frag))
			shaded++
		}
	}
	return shaded
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
