package core_test

import (
	"errors"

	"github.com/ember3d/ember/core"
)

// callLog records driver calls in the order they happen so tests can
// assert on acquisition and teardown sequences.
type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

type fakeDriver struct {
	log          *callLog
	layers       []string
	layersErr    error
	instance     *fakeInstance
	failInstance bool
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	return d.layers, d.layersErr
}

func (d *fakeDriver) CreateInstance(cfg core.InstanceConfiguration) (core.Instance, error) {
	if d.failInstance {
		return nil, errors.New("driver rejected instance")
	}
	d.instance.cfg = cfg
	d.log.record("instance.Create")
	return d.instance, nil
}

type fakeInstance struct {
	log           *callLog
	cfg           core.InstanceConfiguration
	devices       []core.PhysicalDevice
	devicesErr    error
	debugAbsent   bool
	failMessenger bool

	// last callback handed to the create hook
	callback core.DebugCallback
}

func (i *fakeInstance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	return i.devices, i.devicesErr
}

func (i *fakeInstance) DebugHooks() core.DebugHooks {
	if i.debugAbsent {
		return core.DebugHooks{}
	}
	return core.DebugHooks{
		Create: func(callback core.DebugCallback) (core.DebugMessenger, error) {
			if i.failMessenger {
				return nil, errors.New("driver rejected messenger")
			}
			i.callback = callback
			i.log.record("messenger.Create")
			return &struct{}{}, nil
		},
		Destroy: func(core.DebugMessenger) {
			i.log.record("messenger.Destroy")
		},
	}
}

func (i *fakeInstance) Inner() interface{} { return nil }

func (i *fakeInstance) Destroy() {
	i.log.record("instance.Destroy")
}

type fakePhysicalDevice struct {
	log      *callLog
	name     string
	families []core.QueueFamily

	// present[i] answers the surface-support query for family i
	present        []bool
	presentQueried []uint32

	plan       *core.DevicePlan
	failCreate bool
}

func (p *fakePhysicalDevice) QueueFamilies() ([]core.QueueFamily, error) {
	return p.families, nil
}

func (p *fakePhysicalDevice) SupportsPresent(family uint32, surface core.Surface) (bool, error) {
	p.presentQueried = append(p.presentQueried, family)
	if int(family) < len(p.present) {
		return p.present[family], nil
	}
	return false, nil
}

func (p *fakePhysicalDevice) CreateDevice(plan core.DevicePlan) (core.Device, error) {
	p.plan = &plan
	if p.failCreate {
		return nil, errors.New("driver rejected device")
	}
	p.log.record("device.Create")
	return &fakeDevice{log: p.log, queues: map[[2]uint32]*fakeQueue{}}, nil
}

func (p *fakePhysicalDevice) Info() core.PhysicalDeviceInfo {
	return core.PhysicalDeviceInfo{Name: p.name}
}

type fakeDevice struct {
	log    *callLog
	queues map[[2]uint32]*fakeQueue
}

func (d *fakeDevice) Queue(family, index uint32) core.Queue {
	key := [2]uint32{family, index}
	if queue, ok := d.queues[key]; ok {
		return queue
	}
	queue := &fakeQueue{family: family, index: index}
	d.queues[key] = queue
	return queue
}

func (d *fakeDevice) Destroy() {
	d.log.record("device.Destroy")
}

type fakeQueue struct {
	family, index uint32
}

type fakeSurface struct {
	log *callLog
}

func (s *fakeSurface) Destroy() {
	s.log.record("surface.Destroy")
}

type fakeWindow struct {
	log        *callLog
	extensions []string
	failCreate bool
}

func (w *fakeWindow) InstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(core.Instance) (core.Surface, error) {
	if w.failCreate {
		return nil, errors.New("window rejected surface")
	}
	w.log.record("surface.Create")
	return &fakeSurface{log: w.log}, nil
}

// graphicsFamily and friends keep the device fixtures readable.
var (
	graphicsFamily        = core.QueueFamily{Graphics: true}
	computeFamily         = core.QueueFamily{Compute: true}
	graphicsComputeFamily = core.QueueFamily{Graphics: true, Compute: true}
)

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
