package core

import "fmt"

// NewGraphicsContext runs the full bootstrap sequence: instance, debug
// messenger when instrumentation is on, surface, physical device pick,
// logical device and its queues. On any failure the handles acquired so
// far are released in reverse order before the error is returned.
func NewGraphicsContext(driver Driver, window WindowSystem, cfg Configuration) (*GraphicsContext, error) {
	c := &GraphicsContext{
		driver:        driver,
		window:        window,
		configuration: cfg,
	}
	if err := c.bootstrap(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

// GraphicsContext exclusively owns every driver handle of one rendering
// session. A handle is valid only if all handles acquired before it are
// valid, teardown nulls them in exactly reverse order of acquisition.
type GraphicsContext struct {
	driver        Driver
	window        WindowSystem
	configuration Configuration

	instance       Instance
	messenger      DebugMessenger
	surface        Surface
	physicalDevice PhysicalDevice
	device         Device
	graphicsQueue  Queue
	presentQueue   Queue

	releases []func()
}

func (c *GraphicsContext) bootstrap() error {
	cfg := c.configuration.Instance

	layers := cfg.Layers
	if cfg.DebugMode {
		if len(layers) == 0 {
			layers = ValidationLayers
		}
		supported, err := LayersSupported(c.driver, layers)
		if err != nil {
			return err
		}
		if !supported {
			return fmt.Errorf("%w: %v", ErrValidationLayerUnavailable, layers)
		}
	} else {
		layers = nil
	}

	instance, err := c.driver.CreateInstance(InstanceConfiguration{
		DebugMode:  cfg.DebugMode,
		Extensions: append(RequiredExtensions(c.window, cfg.DebugMode), cfg.Extensions...),
		Layers:     layers,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInstanceCreation, err)
	}
	c.instance = instance
	c.deferRelease(func() {
		c.instance.Destroy()
		c.instance = nil
	})

	if cfg.DebugMode {
		messenger, err := InstallDebugMessenger(instance)
		if err != nil {
			return err
		}
		c.messenger = messenger
		c.deferRelease(func() {
			RemoveDebugMessenger(instance, c.messenger)
			c.messenger = nil
		})
	}

	surface, err := c.window.CreateSurface(instance)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSurfaceCreation, err)
	}
	c.surface = surface
	c.deferRelease(func() {
		c.surface.Destroy()
		c.surface = nil
	})

	physical, err := SelectPhysicalDevice(instance, surface)
	if err != nil {
		return err
	}
	c.physicalDevice = physical

	// Recomputed here rather than cached from the selection pass.
	indices, err := FindQueueFamilies(physical, surface)
	if err != nil {
		return err
	}

	provisioned, err := ProvisionDevice(physical, indices, c.configuration.Device, layers)
	if err != nil {
		return err
	}
	c.device = provisioned.Device
	c.graphicsQueue = provisioned.GraphicsQueue
	c.presentQueue = provisioned.PresentQueue
	c.deferRelease(func() {
		c.device.Destroy()
		c.device = nil
		c.graphicsQueue = nil
		c.presentQueue = nil
	})

	return nil
}

// deferRelease pushes one teardown step. Destroy pops the stack, so the
// overall teardown order falls out of acquisition order reversed.
func (c *GraphicsContext) deferRelease(release func()) {
	c.releases = append(c.releases, release)
}

// Instance returns the instance handle
func (c *GraphicsContext) Instance() Instance {
	return c.instance
}

// PhysicalDevice returns the selected physical device
func (c *GraphicsContext) PhysicalDevice() PhysicalDevice {
	return c.physicalDevice
}

// Device returns the provisioned logical device
func (c *GraphicsContext) Device() Device {
	return c.device
}

// GraphicsQueue returns the queue for graphics submission
func (c *GraphicsContext) GraphicsQueue() Queue {
	return c.graphicsQueue
}

// PresentQueue returns the queue for surface presentation. It may be
// the same underlying queue as the graphics one.
func (c *GraphicsContext) PresentQueue() Queue {
	return c.presentQueue
}

// Destroy implements interface
func (c *GraphicsContext) Destroy() {
	for i := len(c.releases) - 1; i >= 0; i-- {
		c.releases[i]()
	}
	c.releases = nil
	c.physicalDevice = nil
}
