package core

import "errors"

// Bootstrap failure conditions. Every one of them is fatal to the
// sequence that raised it, nothing is retried.
var (
	// ErrValidationLayerUnavailable means a requested diagnostic layer
	// is not in the driver's enumeration.
	ErrValidationLayerUnavailable = errors.New("requested validation layer is not available")

	// ErrInstanceCreation means the driver rejected instance creation.
	ErrInstanceCreation = errors.New("instance creation failed")

	// ErrDebugMessengerSetup means the diagnostic callback could not be
	// installed, either because the debug extension is absent or because
	// the driver rejected the call.
	ErrDebugMessengerSetup = errors.New("debug messenger setup failed")

	// ErrSurfaceCreation means platform surface creation was rejected.
	ErrSurfaceCreation = errors.New("surface creation failed")

	// ErrNoCompatibleGPU means no physical device is visible, or none
	// satisfies the suitability predicate.
	ErrNoCompatibleGPU = errors.New("no compatible GPU found")

	// ErrDeviceCreation means the driver rejected logical device
	// creation for the computed queue plan.
	ErrDeviceCreation = errors.New("logical device creation failed")
)
