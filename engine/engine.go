package engine

import (
	"errors"

	"github.com/fsnotify/fsnotify"

	"github.com/eabellows/chickpea/engine/assets"
	"github.com/eabellows/chickpea/engine/containers"
	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/platform"
	"github.com/eabellows/chickpea/engine/renderer"
)

// pendingAssetCapacity bounds how many file change notifications are held
// between frames before the oldest are dropped.
const pendingAssetCapacity = 64

// Engine drives the fixed-timestep loop around the game's callbacks. Each
// frame updates the game, lets it render into the shared framebuffer and
// feeds the metrics with the elapsed time, sleeping off any leftover budget
// the way the original main loop did.
type Engine struct {
	gameInstance  *Game
	clock         *core.Clock
	target        *renderer.Framebuffer
	assetManager  *assets.AssetManager
	pendingAssets *containers.RingQueue[fsnotify.Event]

	isRunning     bool
	targetResized bool
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("engine requires a game with an application config")
	}
	return &Engine{
		gameInstance:  g,
		clock:         core.NewClock(),
		pendingAssets: containers.NewRingQueue[fsnotify.Event](pendingAssetCapacity),
	}, nil
}

func (e *Engine) Initialize() error {
	cfg := e.gameInstance.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventInitialize()
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, onQuitRequested)

	am, err := assets.NewAssetManager()
	if err != nil {
		return err
	}
	if err := am.Initialize(cfg.AssetsDir); err != nil {
		core.LogWarn("asset directory %s not indexed: %s", cfg.AssetsDir, err.Error())
	}
	e.assetManager = am

	e.target = renderer.NewFramebuffer(cfg.RenderWidth, cfg.RenderHeight)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}

	core.LogInfo("%s initialized, %dx%d target", cfg.Name, cfg.RenderWidth, cfg.RenderHeight)
	return nil
}

// AssetManager exposes the shared asset manager to game code.
func (e *Engine) AssetManager() *assets.AssetManager {
	return e.assetManager
}

// Target exposes the shared render target to game code.
func (e *Engine) Target() *renderer.Framebuffer {
	return e.target
}

// ResizeTarget replaces the render target with one of the given size. The
// in-flight frame is dropped, since the game may already have sized work for
// the old target; listeners on EVENT_CODE_TARGET_RESIZED receive the new
// dimensions.
func (e *Engine) ResizeTarget(width, height uint32) {
	e.target = renderer.NewFramebuffer(width, height)
	e.targetResized = true
	core.EventFire(core.EVENT_CODE_TARGET_RESIZED, e, core.EventContext{
		U32: [4]uint32{width, height},
	})
}

func (e *Engine) Run() error {
	cfg := e.gameInstance.ApplicationConfig

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()
	e.isRunning = true

	var frameCount uint64 = 0
	var targetFrameSeconds float64 = 1.0 / 60.0

	for e.isRunning {
		e.clock.Update()

		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		var frameStartTime float64 = platform.GetAbsoluteTime()

		e.pumpAssetEvents()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		if err := e.renderFrame(delta); err != nil {
			if errors.Is(err, core.ErrTargetResized) {
				core.LogDebug(err.Error())
			} else {
				core.LogError("game render failed, shutting down: %s", err.Error())
				e.isRunning = false
				break
			}
		}

		// Figure out how long the frame took and give leftover time back
		// to the OS when frame limiting is on.
		var frameEndTime float64 = platform.GetAbsoluteTime()
		var frameElapsedTime float64 = frameEndTime - frameStartTime
		core.MetricsUpdate(frameElapsedTime)

		var remainingSeconds float64 = targetFrameSeconds - frameElapsedTime
		if remainingSeconds > 0 && cfg.LimitFrames {
			platform.Sleep(remainingSeconds*1000 - 1)
		}

		frameCount++
		if cfg.MaxFrames > 0 && frameCount >= cfg.MaxFrames {
			e.isRunning = false
		}

		e.lastTime = currentTime
	}

	fps, frameTime := core.MetricsFrame()
	vertices, fragments := core.MetricsShading()
	core.LogInfo("loop ended after %d frames (%.1f fps, %.2f ms avg, %d vertices, %d fragments shaded)",
		frameCount, fps, frameTime, vertices, fragments)
	return nil
}

func (e *Engine) Shutdown() error {
	e.isRunning = false
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if e.assetManager != nil {
		e.assetManager.Shutdown()
	}
	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, e)
	return core.EventShutdown()
}

// renderFrame invokes the game's render callback, or skips the frame when
// the target was replaced since the last one.
func (e *Engine) renderFrame(delta float64) error {
	if e.targetResized {
		e.targetResized = false
		return core.ErrTargetResized
	}
	if e.gameInstance.FnRender != nil {
		return e.gameInstance.FnRender(e.target, delta)
	}
	return nil
}

// pumpAssetEvents drains the watcher's channel into the bounded queue and
// republishes each change on the event bus, so game code reacts to file
// changes at a frame boundary instead of on the watcher goroutine.
func (e *Engine) pumpAssetEvents() {
	if e.assetManager == nil {
		return
	}
	for {
		select {
		case ev, ok := <-e.assetManager.Events():
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if e.pendingAssets.IsFull() {
				e.pendingAssets.Dequeue()
			}
			e.pendingAssets.Enqueue(ev)
		default:
			for !e.pendingAssets.IsEmpty() {
				ev, _ := e.pendingAssets.Dequeue()
				core.EventFire(core.EVENT_CODE_ASSET_CHANGED, e, core.EventContext{Path: ev.Name})
			}
			return
		}
	}
}

func onQuitRequested(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	if e, ok := listenerInst.(*Engine); ok {
		core.LogInfo("shutdown requested")
		e.isRunning = false
		return true
	}
	return false
}
