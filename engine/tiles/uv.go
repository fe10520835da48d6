package tiles

import (
	"github.com/eabellows/chickpea/engine/math"
)

// Atlas pixel coordinates have row 0 at the top while texture-space v points
// up, so the v range is flipped when deriving sample rectangles.

// UVFor returns the normalized texture rectangle of the tile at the given
// atlas location.
func (ts *CompiledTileSet) UVFor(loc TileLoc) math.UVRect {
	w := float32(ts.ImageSize[0])
	h := float32(ts.ImageSize[1])
	tw := float32(ts.TileSize[0])
	th := float32(ts.TileSize[1])

	uMin := float32(loc.X) / w
	uMax := (float32(loc.X) + tw) / w
	vTop := 1.0 - float32(loc.Y)/h
	vBottom := 1.0 - (float32(loc.Y)+th)/h

	return math.UVRect{
		Min: math.NewVec2(uMin, vBottom),
		Max: math.NewVec2(uMax, vTop),
	}
}

// NumpadUV returns the UV rectangle for a floor set tile addressed like a
// keypad digit, 1 through 9. Out-of-range digits fall back to the center.
func (fs *CompiledFloorSet) NumpadUV(ts *CompiledTileSet, digit int) math.UVRect {
	if digit < 1 || digit > 9 {
		digit = 5
	}
	return ts.UVFor(fs.Numpad[digit-1])
}

// ClosedCenterUV returns the UV rectangle of the fully enclosed floor tile.
func (fs *CompiledFloorSet) ClosedCenterUV(ts *CompiledTileSet) math.UVRect {
	return ts.UVFor(fs.ClosedCenter)
}

// WallUV returns the UV rectangle of the straight wall tile.
func (ws *CompiledWallSet) WallUV(ts *CompiledTileSet) math.UVRect {
	return ts.UVFor(ws.Wall)
}
