package loaders

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/eabellows/chickpea/engine/tiles"
)

// TileSetModuleLoader parses authored tile set descriptions.
type TileSetModuleLoader struct{}

func (tl *TileSetModuleLoader) Load(path string, params interface{}) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var module tiles.TileSetModule
	if err := toml.Unmarshal(data, &module); err != nil {
		return nil, fmt.Errorf("parsing tile set module %s: %w", path, err)
	}
	return &Resource{
		Name:     module.Identifier,
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     &module,
	}, nil
}

func (tl *TileSetModuleLoader) Unload(*Resource) error {
	return nil
}

// TileSetLoader reads compiled tile set artifacts.
type TileSetLoader struct{}

func (tl *TileSetLoader) Load(path string, params interface{}) (*Resource, error) {
	ts, err := tiles.LoadCompiled(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     ts.Identifier,
		FullPath: path,
		Data:     ts,
	}, nil
}

func (tl *TileSetLoader) Unload(*Resource) error {
	return nil
}
