package tiles

// Tile sets are authored as a module description referencing source images,
// then compiled into a single atlas plus a lookup table. A floor set is a
// block of 16 tiles (3x3 numpad, a top/middle/bottom strip, a
// left/middle/right strip and one closed-center tile); a wall set is a block
// of 13 (6-tile circle, a center point, a straight wall and a 5-tile cross).

const (
	// TilesInFloorSet is the number of atlas tiles one floor set occupies.
	TilesInFloorSet uint32 = 16
	// TilesInWallSet is the number of atlas tiles one wall set occupies.
	TilesInWallSet uint32 = 13
)

// TileSource names one source image tiles are cut from.
type TileSource struct {
	Identifier string `toml:"identifier"`
	ImagePath  string `toml:"image_path"`
}

// FloorSetSource locates one floor set inside a tile source, in tile units.
type FloorSetSource struct {
	Identifier string    `toml:"identifier"`
	Location   [2]uint32 `toml:"location"`
}

// FloorSource groups the floor sets cut from a single tile source.
type FloorSource struct {
	TileSource string           `toml:"tile_source"`
	FloorSets  []FloorSetSource `toml:"floor_sets"`
}

// NumTiles returns how many atlas tiles this source's floor sets occupy.
func (fs *FloorSource) NumTiles() uint32 {
	return uint32(len(fs.FloorSets)) * TilesInFloorSet
}

// WallSetSource locates one wall set inside a tile source, in tile units.
type WallSetSource struct {
	Identifier string    `toml:"identifier"`
	Location   [2]uint32 `toml:"location"`
}

// WallSource groups the wall sets cut from a single tile source.
type WallSource struct {
	TileSource string          `toml:"tile_source"`
	WallSets   []WallSetSource `toml:"wall_sets"`
}

// NumTiles returns how many atlas tiles this source's wall sets occupy.
func (ws *WallSource) NumTiles() uint32 {
	return uint32(len(ws.WallSets)) * TilesInWallSet
}

// TileSetModule is the authored description of a tile set, loaded from TOML.
type TileSetModule struct {
	Identifier     string        `toml:"identifier"`
	TileSize       [2]uint32     `toml:"tile_size"`
	OutTileSetPath string        `toml:"out_tile_set_path"`
	OutImagePath   string        `toml:"out_image_path"`
	TileSources    []TileSource  `toml:"tile_sources"`
	FloorSources   []FloorSource `toml:"floor_sources"`
	WallSources    []WallSource  `toml:"wall_sources"`
}

// NumTiles returns the total atlas tile count of the module.
func (m *TileSetModule) NumTiles() uint32 {
	var sum uint32
	for i := range m.FloorSources {
		sum += m.FloorSources[i].NumTiles()
	}
	for i := range m.WallSources {
		sum += m.WallSources[i].NumTiles()
	}
	return sum
}

// TileLoc is a tile's pixel offset within the compiled atlas.
type TileLoc struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// CompiledFloorSet indexes a floor set's tiles within the atlas. Numpad is
// keyed like the digits of a keypad: index 0 is numpad 1 (bottom-left) and
// index 8 is numpad 9 (top-right).
type CompiledFloorSet struct {
	Numpad       [9]TileLoc `json:"numpad"`
	TopBottom    [3]TileLoc `json:"top_bottom"`
	LeftRight    [3]TileLoc `json:"left_right"`
	ClosedCenter TileLoc    `json:"closed_center"`
}

// CompiledWallSet indexes a wall set's tiles within the atlas.
type CompiledWallSet struct {
	Circle      [6]TileLoc `json:"circle"`
	CenterPoint TileLoc    `json:"center_point"`
	Wall        TileLoc    `json:"wall"`
	Cross       [5]TileLoc `json:"cross"`
}

// CompiledTileSet is the compiler's output artifact, serialized as JSON next
// to the atlas image.
type CompiledTileSet struct {
	Identifier string                      `json:"identifier"`
	TileSize   [2]uint32                   `json:"tile_size"`
	ImagePath  string                      `json:"image_path"`
	ImageSize  [2]uint32                   `json:"image_size"`
	FloorSets  map[string]CompiledFloorSet `json:"floor_sets"`
	WallSets   map[string]CompiledWallSet  `json:"wall_sets"`
}
