package core

import "fmt"

// queuePriority is recorded for future multi-queue scheduling, only one
// queue per family is requested in the current scope.
const queuePriority float32 = 1.0

// ProvisionedDevice is the result of logical device provisioning. When
// graphics and present share a family the two queue handles alias the
// same underlying queue.
type ProvisionedDevice struct {
	Device        Device
	GraphicsQueue Queue
	PresentQueue  Queue
}

// ProvisionDevice builds the deduplicated queue plan for the resolved
// family indices and requests a logical device from the driver. One
// queue request with a single slot is emitted per distinct family. The
// instance layer list is forwarded for drivers that still read
// device-level layers.
func ProvisionDevice(physical PhysicalDevice, indices QueueFamilyIndices, cfg DeviceConfiguration, layers []string) (ProvisionedDevice, error) {
	var provisioned ProvisionedDevice
	if !indices.Complete() {
		return provisioned, fmt.Errorf("%w: queue family indices are incomplete", ErrDeviceCreation)
	}

	families := []uint32{*indices.Graphics}
	if *indices.Present != *indices.Graphics {
		families = append(families, *indices.Present)
	}

	requests := make([]QueueRequest, 0, len(families))
	for _, family := range families {
		requests = append(requests, QueueRequest{
			Family:     family,
			Priorities: []float32{queuePriority},
		})
	}

	device, err := physical.CreateDevice(DevicePlan{
		QueueRequests: requests,
		Extensions:    cfg.Extensions,
		Layers:        layers,
	})
	if err != nil {
		return provisioned, fmt.Errorf("%w: %s", ErrDeviceCreation, err)
	}

	provisioned.Device = device
	provisioned.GraphicsQueue = device.Queue(*indices.Graphics, 0)
	provisioned.PresentQueue = device.Queue(*indices.Present, 0)
	return provisioned, nil
}
