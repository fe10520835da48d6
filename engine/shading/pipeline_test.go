package shading

import (
	"testing"

	"github.com/eabellows/chickpea/engine/math"
)

const tol = 1e-6

// constSampler returns the same sample regardless of coordinate, standing in
// for a bound texture.
type constSampler struct {
	value math.Vec4
}

func (s constSampler) Sample(uv math.Vec2) math.Vec4 {
	return s.value
}

func TestVertexStageIdentityMatrix(t *testing.T) {
	u := Uniforms{Matrix: math.NewMat4Identity()}
	inst := Instance{WorldPos: math.NewVec2(2, 3)}
	v := Vertex{
		Position:  math.NewVec2(1, 0),
		Color:     math.NewVec3(0.2, 0.4, 0.6),
		TexCoords: math.NewVec2(0.25, 0.75),
	}

	out := VertexStage(u, inst, v)

	want := math.NewVec4Create(3, 3, 0, 1)
	if !out.ClipPosition.Compare(want, tol) {
		t.Fatalf("clip position = %+v; want %+v", out.ClipPosition, want)
	}
}

func TestVertexStagePassThrough(t *testing.T) {
	u := Uniforms{Matrix: math.NewMat4EulerZ(1.2)}
	inst := Instance{WorldPos: math.NewVec2(-5, 9)}

	corners := []Vertex{
		{Position: math.NewVec2(0, 0), Color: math.NewVec3(1, 0, 0), TexCoords: math.NewVec2(0, 0)},
		{Position: math.NewVec2(1, 0), Color: math.NewVec3(0, 1, 0), TexCoords: math.NewVec2(1, 0)},
		{Position: math.NewVec2(1, 1), Color: math.NewVec3(0, 0, 1), TexCoords: math.NewVec2(1, 1)},
		{Position: math.NewVec2(0, 1), Color: math.NewVec3(1, 1, 1), TexCoords: math.NewVec2(0, 1)},
	}

	for i, v := range corners {
		out := VertexStage(u, inst, v)
		if !out.TexCoords.Compare(v.TexCoords, 0) {
			t.Errorf("corner %d: tex coords %+v; want identical %+v", i, out.TexCoords, v.TexCoords)
		}
		if !out.Color.Compare(v.Color, 0) {
			t.Errorf("corner %d: color %+v; want identical %+v", i, out.Color, v.Color)
		}
	}
}

func TestVertexStageMatchesManualTransform(t *testing.T) {
	matrix := math.NewMat4EulerZ(0.7).Mul(math.NewMat4Orthographic(-4, 4, -3, 3, -1, 1))
	u := Uniforms{Matrix: matrix}
	inst := Instance{WorldPos: math.NewVec2(12.5, -0.75)}
	v := Vertex{Position: math.NewVec2(0.5, 1)}

	out := VertexStage(u, inst, v)
	want := matrix.MulVec4(math.NewVec4Create(0.5+12.5, 1-0.75, 0, 1))

	if !out.ClipPosition.Compare(want, tol) {
		t.Fatalf("clip position = %+v; want %+v", out.ClipPosition, want)
	}
}

func TestVertexStageNoClamping(t *testing.T) {
	u := Uniforms{Matrix: math.NewMat4Identity()}
	inst := Instance{WorldPos: math.NewVec2(1e6, -1e6)}
	v := Vertex{Position: math.NewVec2(0, 0)}

	out := VertexStage(u, inst, v)
	if out.ClipPosition.X != 1e6 || out.ClipPosition.Y != -1e6 {
		t.Fatalf("out-of-frustum position was altered: %+v", out.ClipPosition)
	}
}

func TestFragmentStageMidGraySaturates(t *testing.T) {
	// v_color=(0.5,0.5,0.5) on a white opaque sample doubles to exactly 1.
	tex := constSampler{value: math.NewVec4One()}
	v := Varyings{Color: math.NewVec3(0.5, 0.5, 0.5)}

	out := FragmentStage(tex, v)
	want := math.NewVec4Create(1, 1, 1, 1)
	if !out.Compare(want, tol) {
		t.Fatalf("output = %+v; want %+v", out, want)
	}
}

func TestFragmentStageDoublesBelowHalf(t *testing.T) {
	tex := constSampler{value: math.NewVec4One()}
	v := Varyings{Color: math.NewVec3(0.1, 0.2, 0.3)}

	out := FragmentStage(tex, v)
	want := math.NewVec4Create(0.2, 0.4, 0.6, 1.0)
	if !out.Compare(want, tol) {
		t.Fatalf("output = %+v; want %+v", out, want)
	}
}

func TestFragmentStageAlphaFollowsTexture(t *testing.T) {
	// Alpha is 1.0 * texAlpha, then doubled and clamped like any channel.
	tex := constSampler{value: math.NewVec4Create(1, 1, 1, 0.4)}
	v := Varyings{Color: math.NewVec3(1, 1, 1)}

	out := FragmentStage(tex, v)
	if !math.CompareFloat32(out.W, 0.8, tol) {
		t.Fatalf("alpha = %v; want 0.8", out.W)
	}
	if out.X != 1 || out.Y != 1 || out.Z != 1 {
		t.Fatalf("color channels = %+v; want saturated white", out)
	}
}

func TestFragmentStageSaturationBoundary(t *testing.T) {
	tcs := []struct {
		c    float32
		want float32
	}{
		{0.0, 0.0},
		{0.25, 0.5},
		{0.5, 1.0},
		{0.500001, 1.0},
		{0.75, 1.0},
		{1.0, 1.0},
	}

	for _, tc := range tcs {
		tex := constSampler{value: math.NewVec4One()}
		v := Varyings{Color: math.NewVec3(tc.c, tc.c, tc.c)}
		out := FragmentStage(tex, v)
		if !math.CompareFloat32(out.X, tc.want, tol) {
			t.Errorf("c=%v: output %v; want %v", tc.c, out.X, tc.want)
		}
	}
}

func TestFragmentStageTintTimesSample(t *testing.T) {
	tex := constSampler{value: math.NewVec4Create(0.5, 0.25, 1.0, 1.0)}
	v := Varyings{Color: math.NewVec3(0.5, 0.8, 0.3)}

	out := FragmentStage(tex, v)
	// (0.25, 0.2, 0.3) doubled.
	want := math.NewVec4Create(0.5, 0.4, 0.6, 1.0)
	if !out.Compare(want, tol) {
		t.Fatalf("output = %+v; want %+v", out, want)
	}
}

func TestClampIdempotent(t *testing.T) {
	values := []math.Vec4{
		math.NewVec4Create(-1, 0.5, 2, 0.75),
		math.NewVec4Zero(),
		math.NewVec4One(),
	}
	for _, v := range values {
		once := v.Clamp01()
		twice := once.Clamp01()
		if !once.Compare(twice, 0) {
			t.Errorf("re-clamping %+v changed the value: %+v != %+v", v, once, twice)
		}
	}
}

func TestStagesArePure(t *testing.T) {
	u := Uniforms{Matrix: math.NewMat4EulerZ(0.3)}
	inst := Instance{WorldPos: math.NewVec2(4, 2)}
	v := Vertex{Position: math.NewVec2(1, 1), Color: math.NewVec3(0.3, 0.3, 0.3), TexCoords: math.NewVec2(0.5, 0.5)}
	tex := constSampler{value: math.NewVec4Create(0.4, 0.4, 0.4, 1)}

	first := VertexStage(u, inst, v)
	second := VertexStage(u, inst, v)
	if first != second {
		t.Fatalf("vertex stage is not deterministic: %+v != %+v", first, second)
	}

	f1 := FragmentStage(tex, first)
	f2 := FragmentStage(tex, second)
	if f1 != f2 {
		t.Fatalf("fragment stage is not deterministic: %+v != %+v", f1, f2)
	}
}
