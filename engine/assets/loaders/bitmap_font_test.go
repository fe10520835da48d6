package loaders

import "testing"

func TestFontDataGlyphLookup(t *testing.T) {
	fd := &FontData{
		Glyphs: []FontGlyph{
			{Codepoint: 'A', X: 0, Y: 0, Width: 8, Height: 8},
			{Codepoint: 'B', X: 8, Y: 0, Width: 8, Height: 8},
		},
	}

	g, ok := fd.Glyph('B')
	if !ok {
		t.Fatal("glyph B not found")
	}
	if g.X != 8 {
		t.Errorf("glyph B x = %d; want 8", g.X)
	}

	if _, ok := fd.Glyph('Z'); ok {
		t.Error("glyph Z should be missing")
	}
}

func TestFontDataKerningAmount(t *testing.T) {
	fd := &FontData{
		Kernings: []FontKerning{
			{Codepoint0: 'A', Codepoint1: 'V', Amount: -3},
		},
	}

	if got := fd.KerningAmount('A', 'V'); got != -3 {
		t.Errorf("kerning A,V = %d; want -3", got)
	}
	if got := fd.KerningAmount('V', 'A'); got != 0 {
		t.Errorf("kerning V,A = %d; want 0 (pairs are ordered)", got)
	}
	if got := fd.KerningAmount('A', 'A'); got != 0 {
		t.Errorf("kerning A,A = %d; want 0", got)
	}
}
