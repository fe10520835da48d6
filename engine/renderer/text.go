package renderer

import (
	"github.com/eabellows/chickpea/engine/assets/loaders"
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/shading"
)

// Debug text goes through the exact same two-stage pipeline as tiles: each
// glyph is a tinted, textured quad sampled from the font's atlas texture.

// TextQuads lays a string out with a bitmap font and returns one quad per
// visible glyph, in local coordinates with the first line's top-left at the
// origin and Y pointing up. Pair the result with a single instance to place
// the whole string in the world.
func TextQuads(font *loaders.FontData, text string, tint math.Vec3) ([]shading.Vertex, []uint32) {
	var vertices []shading.Vertex
	var indices []uint32

	atlasW := float32(font.AtlasSizeX)
	atlasH := float32(font.AtlasSizeY)

	var penX float32
	var lineTop float32
	var prev rune = -1

	for _, r := range text {
		if r == '\n' {
			penX = 0
			lineTop -= float32(font.LineHeight)
			prev = -1
			continue
		}

		g, ok := font.Glyph(r)
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += float32(font.KerningAmount(prev, r))
		}

		if g.Width > 0 && g.Height > 0 {
			x0 := penX + float32(g.XOffset)
			x1 := x0 + float32(g.Width)
			yTop := lineTop - float32(g.YOffset)
			yBot := yTop - float32(g.Height)

			u0 := float32(g.X) / atlasW
			u1 := (float32(g.X) + float32(g.Width)) / atlasW
			vTop := 1.0 - float32(g.Y)/atlasH
			vBot := 1.0 - (float32(g.Y)+float32(g.Height))/atlasH

			base := uint32(len(vertices))
			vertices = append(vertices,
				shading.Vertex{Position: math.NewVec2(x0, yBot), Color: tint, TexCoords: math.NewVec2(u0, vBot)},
				shading.Vertex{Position: math.NewVec2(x1, yBot), Color: tint, TexCoords: math.NewVec2(u1, vBot)},
				shading.Vertex{Position: math.NewVec2(x1, yTop), Color: tint, TexCoords: math.NewVec2(u1, vTop)},
				shading.Vertex{Position: math.NewVec2(x0, yTop), Color: tint, TexCoords: math.NewVec2(u0, vTop)},
			)
			indices = append(indices,
				base+0, base+1, base+2,
				base+2, base+3, base+0,
			)
		}

		penX += float32(g.XAdvance)
		prev = r
	}

	return vertices, indices
}

// NewTextDrawCall bundles laid-out text with the font's atlas sampler at the
// given world position.
func NewTextDrawCall(u shading.Uniforms, fontSampler *Sampler, font *loaders.FontData, text string, tint math.Vec3, worldPos math.Vec2) *DrawCall {
	vertices, indices := TextQuads(font, text, tint)
	return &DrawCall{
		Uniforms:  u,
		Sampler:   fontSampler,
		Vertices:  vertices,
		Indices:   indices,
		Instances: []shading.Instance{{WorldPos: worldPos}},
	}
}
