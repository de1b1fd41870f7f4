package core

// QueueFamilyIndices holds the queue family picks for one physical
// device. Each field is independently unset until a family claims the
// role, the same index may serve both.
type QueueFamilyIndices struct {
	Graphics *uint32
	Present  *uint32
}

// Complete reports whether both roles have been assigned a family.
func (q QueueFamilyIndices) Complete() bool {
	return q.Graphics != nil && q.Present != nil
}

// FindQueueFamilies scans the device's queue families in driver order
// and records the first graphics-capable family and the first family
// able to present to the given surface. Both queries run for an index
// before the scan is allowed to stop, so a family found for graphics is
// never skipped for presentation. With a nil surface only the graphics
// role is resolved.
func FindQueueFamilies(device PhysicalDevice, surface Surface) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices
	families, err := device.QueueFamilies()
	if err != nil {
		return indices, err
	}
	for i := range families {
		index := uint32(i)
		if families[i].Graphics && indices.Graphics == nil {
			indices.Graphics = &index
		}
		if surface != nil && indices.Present == nil {
			supported, err := device.SupportsPresent(index, surface)
			if err != nil {
				return indices, err
			}
			if supported {
				indices.Present = &index
			}
		}
		if surface == nil {
			if indices.Graphics != nil {
				break
			}
		} else if indices.Complete() {
			break
		}
	}
	return indices, nil
}
