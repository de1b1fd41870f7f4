package core

// Driver is the entry point to the graphics API. It answers capability
// queries that are valid before any instance exists and creates instances.
type Driver interface {
	// AvailableLayers enumerates every layer the driver exposes
	AvailableLayers() ([]string, error)

	// CreateInstance creates an API instance with the negotiated
	// extensions and layers
	CreateInstance(InstanceConfiguration) (Instance, error)
}

// Instance describes a graphics API instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevices returns handles of the devices visible
	// to this instance, in driver enumeration order
	PhysicalDevices() ([]PhysicalDevice, error)

	// DebugHooks returns the diagnostic entry points resolved at
	// instance creation. Either hook may be nil when the debug
	// extension was not enabled on this instance.
	DebugHooks() DebugHooks

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// PhysicalDevice is a read-only handle to one concrete GPU.
type PhysicalDevice interface {
	// QueueFamilies lists the device's queue families, slice position
	// is the family index
	QueueFamilies() ([]QueueFamily, error)

	// SupportsPresent reports whether the given family can present
	// to the given surface
	SupportsPresent(family uint32, surface Surface) (bool, error)

	// CreateDevice creates a logical device from a queue plan
	CreateDevice(DevicePlan) (Device, error)

	// Info returns general properties of the device
	Info() PhysicalDeviceInfo
}

// Device is a logical device through which queues are obtained.
type Device interface {
	// Queue retrieves the queue handle at family and slot index.
	// Repeated calls with the same pair return the same queue.
	Queue(family, index uint32) Queue

	// Destroy destroys internal members
	Destroy()
}

// Queue is an opaque command queue handle.
type Queue interface{}

// Surface is a platform drawing target bound to a window.
type Surface interface {
	// Destroy destroys internal members
	Destroy()
}

// DebugMessenger is an opaque handle to an installed diagnostic callback.
type DebugMessenger interface{}

// DebugCallback receives one human-readable diagnostic message. It is
// called from a thread of the driver's choosing and must not block.
type DebugCallback func(severity, message string)

// DebugHooks is the pair of diagnostic entry points resolved when an
// instance is created. A nil Create means the extension is absent.
type DebugHooks struct {
	Create  func(DebugCallback) (DebugMessenger, error)
	Destroy func(DebugMessenger)
}

// QueueFamily describes the capability flags of one queue family.
type QueueFamily struct {
	Graphics bool
	Compute  bool
}

// QueueRequest asks for queue creation on one family, one slot per
// listed priority.
type QueueRequest struct {
	Family     uint32
	Priorities []float32
}

// DevicePlan is everything a logical device is created from.
type DevicePlan struct {
	QueueRequests []QueueRequest
	Extensions    []string
	Layers        []string
}

// WindowSystem is what the bootstrap consumes from the windowing
// collaborator. The window itself stays owned by the caller.
type WindowSystem interface {
	// InstanceExtensions returns the instance extensions the platform
	// requires for a presentable surface
	InstanceExtensions() []string

	// CreateSurface creates a platform surface on the given instance
	CreateSurface(Instance) (Surface, error)
}

// PhysicalDeviceInfo describes available physical properties of a device
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        uint
}
