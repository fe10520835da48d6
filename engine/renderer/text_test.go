package renderer

import (
	"errors"
	"testing"

	"github.com/eabellows/chickpea/engine/assets/loaders"
	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/shading"
)

func testFont() *loaders.FontData {
	return &loaders.FontData{
		Face:       "test",
		Size:       8,
		LineHeight: 10,
		Baseline:   8,
		AtlasSizeX: 64,
		AtlasSizeY: 64,
		Glyphs: []loaders.FontGlyph{
			{Codepoint: 'A', X: 0, Y: 0, Width: 8, Height: 8, XAdvance: 9},
			{Codepoint: 'B', X: 8, Y: 0, Width: 8, Height: 8, XAdvance: 9},
			{Codepoint: ' ', X: 0, Y: 0, Width: 0, Height: 0, XAdvance: 4},
		},
		Kernings: []loaders.FontKerning{
			{Codepoint0: 'A', Codepoint1: 'B', Amount: -2},
		},
	}
}

func TestTextQuadsLayout(t *testing.T) {
	vertices, indices := TextQuads(testFont(), "AB", math.NewVec3(1, 1, 1))

	if len(vertices) != 8 {
		t.Fatalf("vertex count = %d; want 8", len(vertices))
	}
	if len(indices) != 12 {
		t.Fatalf("index count = %d; want 12", len(indices))
	}

	// First glyph starts at the origin.
	if got := vertices[0].Position; !got.Compare(math.NewVec2(0, -8), tol) {
		t.Errorf("glyph A bottom-left = %+v; want (0,-8)", got)
	}
	// Second glyph is advanced by XAdvance plus the A->B kerning.
	if got := vertices[4].Position.X; !math.CompareFloat32(got, 9-2, tol) {
		t.Errorf("glyph B left edge = %v; want 7", got)
	}
}

func TestTextQuadsSkipsInvisibleGlyphs(t *testing.T) {
	vertices, _ := TextQuads(testFont(), "A B", math.NewVec3(1, 1, 1))

	// The space advances the pen but emits no quad.
	if len(vertices) != 8 {
		t.Fatalf("vertex count = %d; want 8", len(vertices))
	}
	if got := vertices[4].Position.X; !math.CompareFloat32(got, 9+4, tol) {
		t.Errorf("glyph after space left edge = %v; want 13", got)
	}
}

func TestTextQuadsNewlineDropsALine(t *testing.T) {
	vertices, _ := TextQuads(testFont(), "A\nB", math.NewVec3(1, 1, 1))

	if len(vertices) != 8 {
		t.Fatalf("vertex count = %d; want 8", len(vertices))
	}
	// Second line restarts at x=0 one line height down.
	if got := vertices[4].Position; !got.Compare(math.NewVec2(0, -18), tol) {
		t.Errorf("second line bottom-left = %+v; want (0,-18)", got)
	}
}

func TestTextQuadsAtlasCoordinates(t *testing.T) {
	vertices, _ := TextQuads(testFont(), "B", math.NewVec3(1, 1, 1))

	if len(vertices) != 4 {
		t.Fatalf("vertex count = %d; want 4", len(vertices))
	}
	// B sits at atlas x=8..16, y=0..8 of a 64x64 atlas; v points up.
	bl := vertices[0].TexCoords
	tr := vertices[2].TexCoords
	if !bl.Compare(math.NewVec2(8.0/64.0, 1.0-8.0/64.0), tol) {
		t.Errorf("bottom-left uv = %+v", bl)
	}
	if !tr.Compare(math.NewVec2(16.0/64.0, 1.0), tol) {
		t.Errorf("top-right uv = %+v", tr)
	}
}

func TestTextQuadsUnknownRuneIsDropped(t *testing.T) {
	vertices, _ := TextQuads(testFont(), "A?B", math.NewVec3(1, 1, 1))
	if len(vertices) != 8 {
		t.Fatalf("vertex count = %d; want 8 with unknown rune dropped", len(vertices))
	}
}

func TestNewTextDrawCallRendersGlyphs(t *testing.T) {
	target := NewFramebuffer(16, 16)
	target.Clear(math.NewVec4Zero())

	atlas := NewSolidTexture(math.NewVec4One())
	defer atlas.Destroy()
	s := NewSampler(atlas, FilterNearest, WrapClampToEdge)

	// Screen-space pixels: x right, y down from the top-left corner.
	u := shading.Uniforms{Matrix: math.NewMat4Orthographic(0, 16, -16, 0, -1, 1)}
	call := NewTextDrawCall(u, s, testFont(), "A", math.NewVec3(0.3, 0.3, 0.3), math.NewVec2Zero())

	if err := target.Draw(call); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// Glyph A is an 8x8 quad at the origin; tint 0.3 on white doubles to 0.6.
	got := target.At(4, 4)
	want := math.NewVec4Create(0.6, 0.6, 0.6, 1)
	if !got.Compare(want, tol) {
		t.Fatalf("glyph pixel = %+v; want %+v", got, want)
	}
	if got := target.At(12, 12); got.W != 0 {
		t.Fatalf("pixel outside the glyph was written: %+v", got)
	}
}

func TestNewTextDrawCallEmptyTextIsRejected(t *testing.T) {
	target := NewFramebuffer(8, 8)
	atlas := NewSolidTexture(math.NewVec4One())
	defer atlas.Destroy()
	s := NewSampler(atlas, FilterNearest, WrapClampToEdge)

	u := shading.Uniforms{Matrix: math.NewMat4Identity()}
	call := NewTextDrawCall(u, s, testFont(), "", math.NewVec3(1, 1, 1), math.NewVec2Zero())
	if err := target.Draw(call); !errors.Is(err, core.ErrEmptyDrawCall) {
		t.Fatalf("err = %v; want empty draw call error", err)
	}
}
