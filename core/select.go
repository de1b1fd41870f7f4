package core

import "fmt"

// SelectPhysicalDevice returns the first device in enumeration order
// that satisfies the suitability predicate. With a surface the device
// must offer both a graphics-capable and a present-capable family,
// without one a graphics-capable family alone is enough. Device
// properties such as type, memory or name are never inspected.
func SelectPhysicalDevice(instance Instance, surface Surface) (PhysicalDevice, error) {
	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no devices visible to the driver", ErrNoCompatibleGPU)
	}
	for _, device := range devices {
		suitable, err := deviceSuitable(device, surface)
		if err != nil {
			return nil, err
		}
		if suitable {
			return device, nil
		}
	}
	return nil, fmt.Errorf("%w: none of %d enumerated devices are suitable", ErrNoCompatibleGPU, len(devices))
}

func deviceSuitable(device PhysicalDevice, surface Surface) (bool, error) {
	indices, err := FindQueueFamilies(device, surface)
	if err != nil {
		return false, err
	}
	if surface == nil {
		return indices.Graphics != nil, nil
	}
	return indices.Complete(), nil
}
