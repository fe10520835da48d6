package loaders

import (
	"fmt"

	"github.com/fzipp/bmfont"
)

// FontGlyph is one character's rectangle within the font atlas, in pixels
// with the descriptor's top-left origin.
type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

// FontKerning is the horizontal adjustment for one codepoint pair.
type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

// BitmapFontPage names one atlas image of the font.
type BitmapFontPage struct {
	ID   int8
	File string
}

// FontData is a parsed bitmap font: enough to lay glyph quads out and
// address them in the font's atlas texture.
type FontData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []BitmapFontPage
}

// Glyph returns the glyph for a codepoint, or false when the font lacks it.
func (fd *FontData) Glyph(r rune) (FontGlyph, bool) {
	for i := range fd.Glyphs {
		if fd.Glyphs[i].Codepoint == r {
			return fd.Glyphs[i], true
		}
	}
	return FontGlyph{}, false
}

// KerningAmount returns the adjustment between two consecutive codepoints.
func (fd *FontData) KerningAmount(first, second rune) int16 {
	for i := range fd.Kernings {
		if fd.Kernings[i].Codepoint0 == first && fd.Kernings[i].Codepoint1 == second {
			return fd.Kernings[i].Amount
		}
	}
	return 0
}

// BitmapFontLoader parses AngelCode .fnt descriptors.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, params interface{}) (*Resource, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, fmt.Errorf("loading bitmap font %s: %w", path, err)
	}

	data := &FontData{
		Face:       desc.Info.Face,
		Size:       uint32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleW),
		AtlasSizeY: int32(desc.Common.ScaleH),
		Glyphs:     make([]FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]BitmapFontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, BitmapFontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		data.Glyphs = append(data.Glyphs, FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for pair, k := range desc.Kerning {
		data.Kernings = append(data.Kernings, FontKerning{
			Codepoint0: pair.First,
			Codepoint1: pair.Second,
			Amount:     int16(k.Amount),
		})
	}

	return &Resource{
		Name:     desc.Info.Face,
		FullPath: path,
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *Resource) error {
	if resource.Data != nil {
		resource.Data = nil
		resource.DataSize = 0
		resource.FullPath = ""
	}
	return nil
}
