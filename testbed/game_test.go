package testbed

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/eabellows/chickpea/engine"
	"github.com/eabellows/chickpea/engine/math"
)

// writeDemoTexture writes the demo texture with a red top half and a blue
// bottom half, so its orientation is visible after sampling.
func writeDemoTexture(t *testing.T, assetsDir string) {
	t.Helper()
	dir := filepath.Join(assetsDir, "textures")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		c := color.NRGBA{R: 255, A: 255}
		if y >= 8 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join(dir, "river-stone.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatal(err)
	}
}

func TestDemoTextureKeepsImageOrientation(t *testing.T) {
	tg := NewTestGame()
	tg.ApplicationConfig.AssetsDir = filepath.Join(t.TempDir(), "assets")
	tg.ApplicationConfig.RenderWidth = 8
	tg.ApplicationConfig.RenderHeight = 8
	tg.ApplicationConfig.MaxFrames = 1
	tg.ApplicationConfig.LimitFrames = false
	writeDemoTexture(t, tg.ApplicationConfig.AssetsDir)

	state := tg.State.(*gameState)
	state.outDir = t.TempDir()

	e, err := engine.New(tg.Game)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer e.Shutdown()

	if state.sampler.Texture.Name != "river-stone" {
		t.Fatalf("texture %q loaded; want the demo file, not the fallback", state.sampler.Texture.Name)
	}

	// v near 1 is the top of texture space, which must be the image's red
	// top half: the sampler's row flip is the only flip on this path.
	top := state.sampler.Sample(math.NewVec2(0.25, 0.9))
	if top.X < 0.6 || top.Z > 0.4 {
		t.Fatalf("top sample = %+v; want red", top)
	}
	bottom := state.sampler.Sample(math.NewVec2(0.25, 0.1))
	if bottom.Z < 0.6 || bottom.X > 0.4 {
		t.Fatalf("bottom sample = %+v; want blue", bottom)
	}
}
