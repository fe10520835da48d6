//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"

	"github.com/eabellows/chickpea/engine/tiles"
)

type Assets mg.Namespace

// Compiles a tile set module description into its atlas and lookup table.
func (Assets) Compile(module string) error {
	fmt.Printf("Compiling tile set module %s...\n", module)
	if _, err := tiles.CompileModuleFile(module); err != nil {
		return err
	}
	return nil
}
