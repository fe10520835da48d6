package tiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	m "math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/draw"

	"github.com/eabellows/chickpea/engine/core"
)

var (
	ErrMissingTileSource = errors.New("tile set references a missing tile_source")
	ErrAtlasOverflow     = errors.New("couldn't fit tile into atlas image")
)

// cursor packs fixed-size tiles left to right, top to bottom into the atlas.
type cursor struct {
	img      *image.NRGBA
	loc      TileLoc
	tileSize [2]uint32
}

func newCursor(width, height uint32, tileSize [2]uint32) *cursor {
	return &cursor{
		img:      image.NewNRGBA(image.Rect(0, 0, int(width), int(height))),
		tileSize: tileSize,
	}
}

// addTile copies one tile out of a source image into the next free atlas
// slot and returns the pixel location the tile was placed at.
func (c *cursor) addTile(from image.Image, tileX, tileY uint32) (TileLoc, error) {
	width := uint32(c.img.Bounds().Dx())
	if c.loc.X+c.tileSize[0] > width {
		return TileLoc{}, ErrAtlasOverflow
	}
	if c.loc.Y+c.tileSize[1] > uint32(c.img.Bounds().Dy()) {
		return TileLoc{}, ErrAtlasOverflow
	}

	placed := c.loc

	sx := int(tileX * c.tileSize[0])
	sy := int(tileY * c.tileSize[1])
	dst := image.Rect(int(placed.X), int(placed.Y),
		int(placed.X+c.tileSize[0]), int(placed.Y+c.tileSize[1]))
	draw.Draw(c.img, dst, from, image.Pt(sx, sy), draw.Src)

	c.loc.X += c.tileSize[0]
	if c.loc.X+c.tileSize[0] > width {
		c.loc.X = 0
		c.loc.Y += c.tileSize[1]
	}

	return placed, nil
}

// Compile packs every tile referenced by the module into a fresh atlas and
// returns the lookup table along with the atlas image. Source images are
// keyed by tile source identifier.
func Compile(module *TileSetModule, sources map[string]image.Image) (*CompiledTileSet, *image.NRGBA, error) {
	totalTiles := module.NumTiles()

	// Smallest square grid that holds every tile.
	root := uint32(m.Floor(m.Sqrt(float64(totalTiles)))) + 1
	width := root * module.TileSize[0]
	height := root * module.TileSize[1]

	cur := newCursor(width, height, module.TileSize)

	floorSets, err := compileFloorSets(module.FloorSources, sources, cur)
	if err != nil {
		return nil, nil, err
	}
	wallSets, err := compileWallSets(module.WallSources, sources, cur)
	if err != nil {
		return nil, nil, err
	}

	compiled := &CompiledTileSet{
		Identifier: module.Identifier,
		TileSize:   module.TileSize,
		ImagePath:  module.OutImagePath,
		ImageSize:  [2]uint32{width, height},
		FloorSets:  floorSets,
		WallSets:   wallSets,
	}
	return compiled, cur.img, nil
}

func compileFloorSets(floorSources []FloorSource, sources map[string]image.Image, cur *cursor) (map[string]CompiledFloorSet, error) {
	out := make(map[string]CompiledFloorSet)
	for i := range floorSources {
		src, ok := sources[floorSources[i].TileSource]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTileSource, floorSources[i].TileSource)
		}
		for _, set := range floorSources[i].FloorSets {
			x, y := set.Location[0], set.Location[1]

			// The authored layout is three rows: numpad row 7-8-9 with the
			// top strip tile and the closed tile, then 4-5-6 with the middle
			// strip and left/mid/right, then 1-2-3 with the bottom strip.
			slots := [16][2]uint32{
				{x, y}, {x + 1, y}, {x + 2, y}, {x + 3, y}, {x + 5, y},
				{x, y + 1}, {x + 1, y + 1}, {x + 2, y + 1}, {x + 3, y + 1},
				{x + 4, y + 1}, {x + 5, y + 1}, {x + 6, y + 1},
				{x, y + 2}, {x + 1, y + 2}, {x + 2, y + 2}, {x + 3, y + 2},
			}
			var locs [16]TileLoc
			for j, s := range slots {
				loc, err := cur.addTile(src, s[0], s[1])
				if err != nil {
					return nil, err
				}
				locs[j] = loc
			}

			out[set.Identifier] = CompiledFloorSet{
				Numpad: [9]TileLoc{
					locs[12], locs[13], locs[14], // 1 2 3
					locs[5], locs[6], locs[7], // 4 5 6
					locs[0], locs[1], locs[2], // 7 8 9
				},
				TopBottom:    [3]TileLoc{locs[3], locs[8], locs[15]},
				LeftRight:    [3]TileLoc{locs[9], locs[10], locs[11]},
				ClosedCenter: locs[4],
			}
		}
	}
	return out, nil
}

func compileWallSets(wallSources []WallSource, sources map[string]image.Image, cur *cursor) (map[string]CompiledWallSet, error) {
	out := make(map[string]CompiledWallSet)
	for i := range wallSources {
		src, ok := sources[wallSources[i].TileSource]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTileSource, wallSources[i].TileSource)
		}
		for _, set := range wallSources[i].WallSets {
			x, y := set.Location[0], set.Location[1]

			slots := [13][2]uint32{
				{x, y}, {x + 1, y}, {x + 2, y}, {x + 3, y}, {x + 4, y},
				{x, y + 1}, {x + 1, y + 1}, {x + 3, y + 1}, {x + 4, y + 1}, {x + 5, y + 1},
				{x, y + 2}, {x + 2, y + 2}, {x + 4, y + 2},
			}
			var locs [13]TileLoc
			for j, s := range slots {
				loc, err := cur.addTile(src, s[0], s[1])
				if err != nil {
					return nil, err
				}
				locs[j] = loc
			}

			out[set.Identifier] = CompiledWallSet{
				Circle:      [6]TileLoc{locs[10], locs[5], locs[0], locs[1], locs[2], locs[11]},
				CenterPoint: locs[6],
				Wall:        locs[3],
				Cross:       [5]TileLoc{locs[4], locs[7], locs[8], locs[9], locs[12]},
			}
		}
	}
	return out, nil
}

// CompileModuleFile reads a TOML module description, compiles it and writes
// the JSON tile set and PNG atlas to the module's configured output paths.
func CompileModuleFile(path string) (*CompiledTileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var module TileSetModule
	if err := toml.Unmarshal(data, &module); err != nil {
		return nil, fmt.Errorf("parsing tile set module %s: %w", path, err)
	}

	sources := make(map[string]image.Image, len(module.TileSources))
	for _, ts := range module.TileSources {
		f, err := os.Open(ts.ImagePath)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding tile source %s: %w", ts.ImagePath, err)
		}
		sources[ts.Identifier] = img
	}

	compiled, atlas, err := Compile(&module, sources)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(module.OutTileSetPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	if err := json.NewEncoder(out).Encode(compiled); err != nil {
		return nil, err
	}

	imgOut, err := os.Create(module.OutImagePath)
	if err != nil {
		return nil, err
	}
	defer imgOut.Close()
	if err := png.Encode(imgOut, atlas); err != nil {
		return nil, err
	}

	core.LogInfo("compiled tile set %s: %d tiles into %dx%d atlas",
		module.Identifier, module.NumTiles(), compiled.ImageSize[0], compiled.ImageSize[1])
	return compiled, nil
}

// LoadCompiled reads a compiled tile set JSON artifact back from disk.
func LoadCompiled(path string) (*CompiledTileSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ts CompiledTileSet
	if err := json.NewDecoder(f).Decode(&ts); err != nil {
		return nil, err
	}
	return &ts, nil
}
