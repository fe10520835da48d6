package engine

import (
	"github.com/eabellows/chickpea/engine/renderer"
)

// Game wires application-specific behavior into the engine loop. The engine
// owns the clock, the render target and the asset manager; the game fills in
// the callbacks.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnShutdown        Shutdown
}

type Initialize func(e *Engine) error
type Update func(deltaTime float64) error
type Render func(target *renderer.Framebuffer, deltaTime float64) error
type Shutdown func() error
