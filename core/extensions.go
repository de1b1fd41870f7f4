package core

// ValidationLayers is the fixed layer list requested when debug
// instrumentation is enabled.
var ValidationLayers = []string{"VK_LAYER_LUNARG_standard_validation"}

// DebugExtensionName is the instance extension that carries diagnostic
// callbacks.
const DebugExtensionName = "VK_EXT_debug_report"

// RequiredExtensions computes the instance extensions the bootstrap
// needs: whatever the windowing collaborator mandates, plus the debug
// extension when instrumentation is on. A nil window contributes no
// base extensions.
func RequiredExtensions(window WindowSystem, debugMode bool) []string {
	var extensions []string
	if window != nil {
		extensions = append(extensions, window.InstanceExtensions()...)
	}
	if debugMode {
		extensions = append(extensions, DebugExtensionName)
	}
	return extensions
}

// LayersSupported reports whether every requested layer name has an
// exact match in the driver's enumeration. The empty request is
// vacuously supported.
func LayersSupported(driver Driver, requested []string) (bool, error) {
	available, err := driver.AvailableLayers()
	if err != nil {
		return false, err
	}
	for _, want := range requested {
		found := false
		for _, have := range available {
			if want == have {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}
