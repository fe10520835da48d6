package shading

import (
	"github.com/eabellows/chickpea/engine/math"
)

// On a GPU the varyings produced by the vertex stage arrive at the fragment
// stage already interpolated by fixed-function hardware. A software
// rasterizer has to replicate that step itself, so the contract is made
// explicit here: a barycentric-weighted lerp across the three vertices of a
// triangle.

// Barycentric holds the normalized weights of a point with respect to a
// triangle's three vertices. Inside the triangle all three weights are in
// [0,1] and sum to one.
type Barycentric struct {
	W0, W1, W2 float32
}

// Interpolate blends the varyings of a triangle's three vertices with the
// given barycentric weights, producing the fragment stage's input. Every
// field is interpolated with the same weights, matching the linear
// (noperspective-equivalent) interpolation a 2D orthographic pipeline gets
// from hardware.
func Interpolate(v0, v1, v2 Varyings, w Barycentric) Varyings {
	return Varyings{
		ClipPosition: weigh4(v0.ClipPosition, v1.ClipPosition, v2.ClipPosition, w),
		TexCoords:    weigh2(v0.TexCoords, v1.TexCoords, v2.TexCoords, w),
		Color:        weigh3(v0.Color, v1.Color, v2.Color, w),
	}
}

func weigh2(a, b, c math.Vec2, w Barycentric) math.Vec2 {
	return a.MulScalar(w.W0).Add(b.MulScalar(w.W1)).Add(c.MulScalar(w.W2))
}

func weigh3(a, b, c math.Vec3, w Barycentric) math.Vec3 {
	return a.MulScalar(w.W0).Add(b.MulScalar(w.W1)).Add(c.MulScalar(w.W2))
}

func weigh4(a, b, c math.Vec4, w Barycentric) math.Vec4 {
	return a.MulScalar(w.W0).Add(b.MulScalar(w.W1)).Add(c.MulScalar(w.W2))
}
