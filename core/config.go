package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global bootstrap configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Window   WindowConfiguration
	Instance InstanceConfiguration
	Device   DeviceConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out.
	// To unlimit, set to 0
	FramesPerSecond int
}

// WindowConfiguration is consumed by the windowing collaborator only,
// the bootstrap itself never reads it.
type WindowConfiguration struct {
	Title  string
	Width  uint32
	Height uint32
}

// InstanceConfiguration is used to configure instance creation
type InstanceConfiguration struct {
	DebugMode bool

	// Extensions are instance extensions requested on top of the
	// ones the windowing collaborator mandates
	Extensions []string
	Layers     []string
}

// DeviceConfiguration is used to configure logical device creation.
// Extensions is reserved for presentation and pipeline extensions and
// stays empty in the current scope.
type DeviceConfiguration struct {
	Extensions []string
}

// FromEnv assembles a Configuration from EMBER_* environment variables,
// falling back to defaults. A .env file next to the binary is honoured.
func FromEnv() Configuration {
	cfg := Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: envInt("EMBER_FPS", 60),
		},
		Window: WindowConfiguration{
			Title:  envy.Get("EMBER_TITLE", "Ember"),
			Width:  uint32(envInt("EMBER_WIDTH", 800)),
			Height: uint32(envInt("EMBER_HEIGHT", 600)),
		},
		Instance: InstanceConfiguration{
			DebugMode: envBool("EMBER_DEBUG", false),
		},
	}
	if cfg.Instance.DebugMode {
		cfg.Instance.Layers = append([]string{}, ValidationLayers...)
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(envy.Get(key, "")); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(envy.Get(key, "")); err == nil {
		return v
	}
	return fallback
}
