package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadApplicationConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadApplicationConfig: %v", err)
	}

	def := DefaultApplicationConfig()
	if *cfg != *def {
		t.Fatalf("config = %+v; want defaults %+v", cfg, def)
	}
}

func TestLoadApplicationConfigOverridesDefaults(t *testing.T) {
	doc := `
render_width = 320
render_height = 200
name = "testbed"
max_frames = 12
limit_frames = false
`
	path := filepath.Join(t.TempDir(), "chickpea.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadApplicationConfig(path)
	if err != nil {
		t.Fatalf("LoadApplicationConfig: %v", err)
	}

	if cfg.RenderWidth != 320 || cfg.RenderHeight != 200 {
		t.Errorf("render size = %dx%d; want 320x200", cfg.RenderWidth, cfg.RenderHeight)
	}
	if cfg.Name != "testbed" {
		t.Errorf("name = %q; want testbed", cfg.Name)
	}
	if cfg.MaxFrames != 12 {
		t.Errorf("max frames = %d; want 12", cfg.MaxFrames)
	}
	if cfg.LimitFrames {
		t.Error("limit frames should be overridden to false")
	}
	// Fields absent from the file keep their defaults.
	if cfg.LogLevel != "info" || cfg.AssetsDir != "assets" {
		t.Errorf("untouched fields changed: %+v", cfg)
	}
}

func TestLoadApplicationConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("render_width = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadApplicationConfig(path); err == nil {
		t.Fatal("want parse error for broken config")
	}
}
