package testbed

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/eabellows/chickpea/engine"
	"github.com/eabellows/chickpea/engine/assets/loaders"
	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/renderer"
	"github.com/eabellows/chickpea/engine/renderer/components"
	"github.com/eabellows/chickpea/engine/shading"
)

// TestGame renders a slowly rotating patch of tinted tile quads into PNG
// frames: the original demo scene, re-targeted at the headless renderer.
type TestGame struct {
	*engine.Game
}

type gameState struct {
	camera        *components.Camera
	mesh          *renderer.QuadMesh
	sampler       *renderer.Sampler
	tiles         []shading.Instance
	hudFont       *loaders.FontData
	hudSampler    *renderer.Sampler
	texturePath   string
	reloadPending bool
	frame         uint64
	saved         uint64
	maxSaves      uint64
	outDir        string
	eng           *engine.Engine
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: engine.DefaultApplicationConfig(),
			State: &gameState{
				maxSaves: 8,
				outDir:   "out",
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (tg *TestGame) Initialize(e *engine.Engine) error {
	state := tg.State.(*gameState)
	state.eng = e

	state.texturePath = filepath.Join(tg.ApplicationConfig.AssetsDir, "textures", "river-stone.jpg")
	texture := tg.loadTexture(e)
	state.sampler = renderer.NewSampler(texture, renderer.FilterBilinear, renderer.WrapRepeat)

	state.camera = components.NewCamera()

	// One unit quad, tinted per corner like the original demo geometry.
	state.mesh = renderer.NewQuadMeshTinted(
		math.NewVec2One(),
		renderer.FullUV(),
		[4]math.Vec3{
			math.NewVec3(1, 0, 0),
			math.NewVec3(0, 1, 0),
			math.NewVec3(0, 0, 1),
			math.NewVec3(0.5, 0.5, 0.5),
		},
	)

	// A small patch of the tile-grid world, one instance per tile.
	for y := int32(-3); y <= 3; y++ {
		for x := int32(-3); x <= 3; x++ {
			state.tiles = append(state.tiles, shading.Instance{
				WorldPos: math.NewVec2(float32(x), float32(y)),
			})
		}
	}

	tg.loadFont(e)

	// Reload the demo texture when its file is rewritten on disk.
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, tg, onAssetChanged)

	if err := os.MkdirAll(state.outDir, 0o755); err != nil {
		return err
	}
	return nil
}

// loadTexture pulls the demo texture through the asset manager and falls
// back to a procedural checkerboard when the asset directory is absent.
// Rows stay in image order; the sampler maps v-up onto them, so a load-time
// flip would mirror the texture twice.
func (tg *TestGame) loadTexture(e *engine.Engine) *renderer.Texture {
	state := tg.State.(*gameState)
	res, err := e.AssetManager().LoadAsset(state.texturePath, nil)
	if err == nil {
		if img, ok := res.Data.(image.Image); ok {
			return renderer.NewTextureFromImage("river-stone", img)
		}
	}
	core.LogWarn("demo texture unavailable, using checkerboard: %v", err)
	return checkerTexture()
}

// loadFont pulls the HUD bitmap font and its atlas page through the asset
// manager. The HUD is skipped when the font asset is absent.
func (tg *TestGame) loadFont(e *engine.Engine) {
	state := tg.State.(*gameState)
	fontPath := filepath.Join(tg.ApplicationConfig.AssetsDir, "fonts", "ubuntu-mono.fnt")

	res, err := e.AssetManager().LoadAsset(fontPath, nil)
	if err != nil {
		core.LogDebug("HUD font unavailable: %v", err)
		return
	}
	font, ok := res.Data.(*loaders.FontData)
	if !ok || len(font.Pages) == 0 {
		core.LogWarn("HUD font %s has no atlas page", fontPath)
		return
	}

	atlasPath := filepath.Join(filepath.Dir(fontPath), font.Pages[0].File)
	atlasRes, err := e.AssetManager().LoadAsset(atlasPath, nil)
	if err != nil {
		core.LogWarn("HUD font atlas unavailable: %v", err)
		return
	}
	img, ok := atlasRes.Data.(image.Image)
	if !ok {
		core.LogWarn("HUD font atlas %s is not an image", atlasPath)
		return
	}

	state.hudFont = font
	state.hudSampler = renderer.NewSampler(
		renderer.NewTextureFromImage("hud-font-atlas", img),
		renderer.FilterNearest,
		renderer.WrapClampToEdge,
	)
}

func checkerTexture() *renderer.Texture {
	const size = 16
	light := color.NRGBA{R: 115, G: 107, B: 97, A: 255}
	dark := color.NRGBA{R: 64, G: 61, B: 56, A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return renderer.NewTextureFromImage("checker", img)
}

func onAssetChanged(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	tg, ok := listenerInst.(*TestGame)
	if !ok {
		return false
	}
	state := tg.State.(*gameState)
	if !strings.HasSuffix(data.Path, filepath.Base(state.texturePath)) {
		return false
	}
	state.reloadPending = true
	return true
}

func (tg *TestGame) Update(deltaTime float64) error {
	state := tg.State.(*gameState)
	state.camera.Rotate(float32(deltaTime))

	if state.reloadPending {
		state.reloadPending = false
		old := state.sampler.Texture
		state.sampler = renderer.NewSampler(tg.loadTexture(state.eng), renderer.FilterBilinear, renderer.WrapRepeat)
		old.Destroy()
		core.LogInfo("demo texture reloaded")
	}
	return nil
}

func (tg *TestGame) Render(target *renderer.Framebuffer, deltaTime float64) error {
	state := tg.State.(*gameState)

	target.Clear(math.NewVec4Create(0, 0, 0, 1))

	call := renderer.NewQuadDrawCall(
		shading.Uniforms{Matrix: state.camera.ViewProjection(target.Width, target.Height)},
		state.sampler,
		state.mesh,
		state.tiles,
	)
	if err := target.Draw(call); err != nil {
		return err
	}

	if err := tg.drawHUD(target, state); err != nil {
		return err
	}

	state.frame++
	if state.saved < state.maxSaves && state.frame%30 == 1 {
		if err := tg.saveFrame(target, state); err != nil {
			return err
		}
		state.saved++
		if state.saved == state.maxSaves {
			core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, tg, core.EventContext{})
		}
	}
	return nil
}

// drawHUD overlays the frame metrics in the target's top-left corner, in
// screen-space pixels with one text quad per glyph.
func (tg *TestGame) drawHUD(target *renderer.Framebuffer, state *gameState) error {
	if state.hudFont == nil {
		return nil
	}

	line := fmt.Sprintf("%.0f fps %.2f ms", core.MetricsFPS(), core.MetricsFrameTime())
	screen := shading.Uniforms{
		Matrix: math.NewMat4Orthographic(0, float32(target.Width), -float32(target.Height), 0, -1, 1),
	}
	call := renderer.NewTextDrawCall(screen, state.hudSampler, state.hudFont, line,
		math.NewVec3(0.5, 0.5, 0.5), math.NewVec2(4, -4))
	if err := target.Draw(call); err != nil && !errors.Is(err, core.ErrEmptyDrawCall) {
		return err
	}
	return nil
}

func (tg *TestGame) saveFrame(target *renderer.Framebuffer, state *gameState) error {
	name := filepath.Join(state.outDir, fmt.Sprintf("frame_%04d.png", state.frame))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, target.Resolve()); err != nil {
		return err
	}
	core.EventFire(core.EVENT_CODE_FRAME_CAPTURED, tg, core.EventContext{
		Path: name,
		U32:  [4]uint32{uint32(state.frame)},
	})
	core.LogDebug("wrote %s", name)
	return nil
}

func (tg *TestGame) Shutdown() error {
	state := tg.State.(*gameState)
	if state.hudSampler != nil {
		state.hudSampler.Texture.Destroy()
	}
	core.EventUnregister(core.EVENT_CODE_ASSET_CHANGED, tg)
	return nil
}
