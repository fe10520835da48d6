package renderer

import (
	"errors"
	"testing"

	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/shading"
)

const tol = 1e-5

// unitUniforms maps the [0,1]x[0,1] world square exactly onto the target.
func unitUniforms() shading.Uniforms {
	return shading.Uniforms{Matrix: math.NewMat4Orthographic(0, 1, 0, 1, -1, 1)}
}

func whiteSampler() *Sampler {
	return NewSampler(NewSolidTexture(math.NewVec4One()), FilterNearest, WrapClampToEdge)
}

func TestDrawFillsTargetWithDoubledTint(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(math.NewVec4Zero())

	mesh := NewQuadMesh(math.NewVec2One(), FullUV(), math.NewVec3(0.25, 0.25, 0.25))
	call := NewQuadDrawCall(unitUniforms(), whiteSampler(), mesh, []shading.Instance{{}})

	if err := fb.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := math.NewVec4Create(0.5, 0.5, 0.5, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); !got.Compare(want, tol) {
				t.Fatalf("pixel (%d,%d) = %+v; want %+v", x, y, got, want)
			}
		}
	}
}

func TestDrawSaturatesBrightTint(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(math.NewVec4Zero())

	mesh := NewQuadMesh(math.NewVec2One(), FullUV(), math.NewVec3(0.9, 0.9, 0.9))
	call := NewQuadDrawCall(unitUniforms(), whiteSampler(), mesh, []shading.Instance{{}})

	if err := fb.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := math.NewVec4One()
	if got := fb.At(1, 1); !got.Compare(want, tol) {
		t.Fatalf("pixel = %+v; want saturated white", got)
	}
}

func TestDrawInstancePlacement(t *testing.T) {
	// An 8x8 target over a [0,2]x[0,2] world; one unit quad instanced at
	// (0,0) and (1,1) covers the bottom-left and top-right quadrants.
	fb := NewFramebuffer(8, 8)
	fb.Clear(math.NewVec4Zero())

	u := shading.Uniforms{Matrix: math.NewMat4Orthographic(0, 2, 0, 2, -1, 1)}
	mesh := NewQuadMesh(math.NewVec2One(), FullUV(), math.NewVec3(0.5, 0.5, 0.5))
	call := NewQuadDrawCall(u, whiteSampler(), mesh, []shading.Instance{
		{WorldPos: math.NewVec2(0, 0)},
		{WorldPos: math.NewVec2(1, 1)},
	})

	if err := fb.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	white := math.NewVec4One()
	empty := math.NewVec4Zero()

	// Top rows are world y in [1,2]: top-right quadrant filled.
	if got := fb.At(6, 1); !got.Compare(white, tol) {
		t.Errorf("top-right quadrant pixel = %+v; want filled", got)
	}
	if got := fb.At(1, 1); !got.Compare(empty, tol) {
		t.Errorf("top-left quadrant pixel = %+v; want clear", got)
	}
	if got := fb.At(1, 6); !got.Compare(white, tol) {
		t.Errorf("bottom-left quadrant pixel = %+v; want filled", got)
	}
	if got := fb.At(6, 6); !got.Compare(empty, tol) {
		t.Errorf("bottom-right quadrant pixel = %+v; want clear", got)
	}
}

func TestDrawOffscreenInstanceIsClipped(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(math.NewVec4Zero())

	mesh := NewQuadMesh(math.NewVec2One(), FullUV(), math.NewVec3(0.5, 0.5, 0.5))
	call := NewQuadDrawCall(unitUniforms(), whiteSampler(), mesh, []shading.Instance{
		{WorldPos: math.NewVec2(50, 50)},
	})

	if err := fb.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); !got.Compare(math.NewVec4Zero(), 0) {
				t.Fatalf("pixel (%d,%d) = %+v; want untouched", x, y, got)
			}
		}
	}
}

func TestDrawValidation(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	mesh := NewQuadMesh(math.NewVec2One(), FullUV(), math.NewVec3(1, 1, 1))

	empty := NewQuadDrawCall(unitUniforms(), whiteSampler(), mesh, nil)
	if err := fb.Draw(empty); !errors.Is(err, core.ErrEmptyDrawCall) {
		t.Errorf("no instances: err = %v; want ErrEmptyDrawCall", err)
	}

	unbound := NewQuadDrawCall(unitUniforms(), nil, mesh, []shading.Instance{{}})
	if err := fb.Draw(unbound); !errors.Is(err, core.ErrTextureUnbound) {
		t.Errorf("nil sampler: err = %v; want ErrTextureUnbound", err)
	}
}

func TestDrawInterpolatesCornerTints(t *testing.T) {
	// Black-to-red horizontal gradient: left corners black, right corners
	// red. At the horizontal middle the doubled red channel is ~1.
	fb := NewFramebuffer(16, 16)
	fb.Clear(math.NewVec4Zero())

	mesh := NewQuadMeshTinted(math.NewVec2One(), FullUV(), [4]math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
	})
	call := NewQuadDrawCall(unitUniforms(), whiteSampler(), mesh, []shading.Instance{{}})

	if err := fb.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	left := fb.At(0, 8).X
	mid := fb.At(8, 8).X
	right := fb.At(15, 8).X

	if left >= mid || mid > right {
		t.Fatalf("red channel not increasing: %v, %v, %v", left, mid, right)
	}
	if right != 1 {
		t.Fatalf("right edge = %v; want saturated 1", right)
	}
}
