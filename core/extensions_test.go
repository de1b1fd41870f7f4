package core_test

import (
	"testing"

	"github.com/ember3d/ember/core"
)

func TestRequiredExtensionsBase(t *testing.T) {
	window := &fakeWindow{extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}}

	extensions := core.RequiredExtensions(window, false)
	if !equalStrings(extensions, window.extensions) {
		t.Errorf("expected window base extensions, got %v", extensions)
	}
}

func TestRequiredExtensionsDebugAppendsOne(t *testing.T) {
	window := &fakeWindow{extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}}

	base := core.RequiredExtensions(window, false)
	debug := core.RequiredExtensions(window, true)

	if len(debug) != len(base)+1 {
		t.Errorf("debug extension count = %d, want %d", len(debug), len(base)+1)
	}
	if debug[len(debug)-1] != core.DebugExtensionName {
		t.Errorf("last extension = %q, want %q", debug[len(debug)-1], core.DebugExtensionName)
	}
}

func TestRequiredExtensionsNilWindow(t *testing.T) {
	extensions := core.RequiredExtensions(nil, true)
	if !equalStrings(extensions, []string{core.DebugExtensionName}) {
		t.Errorf("expected debug extension only, got %v", extensions)
	}
}

func TestLayersSupported(t *testing.T) {
	driver := &fakeDriver{layers: []string{
		"VK_LAYER_LUNARG_standard_validation",
		"VK_LAYER_LUNARG_api_dump",
	}}

	cases := []struct {
		name      string
		requested []string
		want      bool
	}{
		{"empty request", nil, true},
		{"single present", []string{"VK_LAYER_LUNARG_api_dump"}, true},
		{"full subset", []string{"VK_LAYER_LUNARG_standard_validation", "VK_LAYER_LUNARG_api_dump"}, true},
		{"one missing", []string{"VK_LAYER_LUNARG_standard_validation", "VK_LAYER_GOOGLE_threading"}, false},
		{"case mismatch", []string{"vk_layer_lunarg_standard_validation"}, false},
	}

	for _, tc := range cases {
		supported, err := core.LayersSupported(driver, tc.requested)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if supported != tc.want {
			t.Errorf("%s: supported = %v, want %v", tc.name, supported, tc.want)
		}
	}
}
