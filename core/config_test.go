package core_test

import (
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/ember3d/ember/core"
)

func TestFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := core.FromEnv()

		if cfg.Instance.DebugMode {
			t.Error("debug mode on by default")
		}
		if len(cfg.Instance.Layers) != 0 {
			t.Errorf("layers = %v, want none", cfg.Instance.Layers)
		}
		if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
			t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
		}
		if cfg.Time.FramesPerSecond != 60 {
			t.Errorf("fps = %d, want 60", cfg.Time.FramesPerSecond)
		}
	})
}

func TestFromEnvDebugEnablesValidation(t *testing.T) {
	envy.Temp(func() {
		envy.Set("EMBER_DEBUG", "true")
		envy.Set("EMBER_WIDTH", "1920")
		envy.Set("EMBER_HEIGHT", "1080")

		cfg := core.FromEnv()

		if !cfg.Instance.DebugMode {
			t.Error("debug mode not picked up from environment")
		}
		if !equalStrings(cfg.Instance.Layers, core.ValidationLayers) {
			t.Errorf("layers = %v, want %v", cfg.Instance.Layers, core.ValidationLayers)
		}
		if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
			t.Errorf("window = %dx%d, want 1920x1080", cfg.Window.Width, cfg.Window.Height)
		}
	})
}
