package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/eabellows/chickpea/engine/core"
)

// ApplicationConfig configures a headless run: render target size, asset
// locations and how many frames to produce. There is no window; frames are
// resolved to images by the game's render callback.
type ApplicationConfig struct {
	// Render target width in pixels.
	RenderWidth uint32 `toml:"render_width"`
	// Render target height in pixels.
	RenderHeight uint32 `toml:"render_height"`
	// The application name used in logs.
	Name string `toml:"name"`
	// Minimum log level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// Directory watched and indexed by the asset manager.
	AssetsDir string `toml:"assets_dir"`
	// Number of frames to run before exiting. Zero runs until Shutdown.
	MaxFrames uint64 `toml:"max_frames"`
	// Hold each frame to the 60 Hz budget when it finishes early.
	LimitFrames bool `toml:"limit_frames"`
}

// DefaultApplicationConfig mirrors the original program's 1024x768-ish
// windowed defaults, sized down for a headless target.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		RenderWidth:  640,
		RenderHeight: 480,
		Name:         "chickpea",
		LogLevel:     "info",
		AssetsDir:    "assets",
		MaxFrames:    0,
		LimitFrames:  true,
	}
}

// LoadApplicationConfig reads a TOML config file over the defaults. A
// missing file is not an error; the defaults stand.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogDebug("no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
