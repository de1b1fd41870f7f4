package core

import (
	"errors"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// DefaultVulkanApplicationInfo application info describes a Vulkan application
var DefaultVulkanApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "Ember\x00",
	PEngineName:        "Ember\x00",
}

// NewVulkanDriver initialises the Vulkan loader and returns the Driver
// backed by it. procAddr is the windowing library's GetInstanceProcAddr
// pointer, pass nil to use the system loader.
func NewVulkanDriver(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer) (Driver, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}
	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}
	return &VulkanDriver{appInfo: appInfo}, nil
}

// VulkanDriver implements Driver on the Vulkan API
type VulkanDriver struct {
	appInfo *vk.ApplicationInfo
}

// AvailableLayers implements interface
func (d *VulkanDriver) AvailableLayers() ([]string, error) {
	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	layers := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}

	names := make([]string, 0, layerCount)
	for _, layer := range layers {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (d *VulkanDriver) CreateInstance(cfg InstanceConfiguration) (Instance, error) {
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        d.appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	vk.InitInstance(instance)

	return &VulkanInstance{
		instance:     instance,
		debugEnabled: cfg.DebugMode,
	}, nil
}

// VulkanInstance implements Instance on the Vulkan API
type VulkanInstance struct {
	instance     vk.Instance
	debugEnabled bool
}

// PhysicalDevices implements interface
func (v *VulkanInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, nil)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}
	handles := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, handles)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}

	devices := make([]PhysicalDevice, len(handles))
	for idx, handle := range handles {
		devices[idx] = &VulkanPhysicalDevice{handle: handle}
	}
	return devices, nil
}

// DebugHooks implements interface. The hook pair is resolved only when
// the instance was created with the debug extension, otherwise both
// references stay nil and installation is a representable failure
// instead of a runtime name-lookup one.
func (v *VulkanInstance) DebugHooks() DebugHooks {
	if !v.debugEnabled {
		return DebugHooks{}
	}
	return DebugHooks{
		Create:  v.createDebugMessenger,
		Destroy: v.destroyDebugMessenger,
	}
}

func (v *VulkanInstance) createDebugMessenger(callback DebugCallback) (DebugMessenger, error) {
	createInfo := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint64, location uint, messageCode int32, layerPrefix string,
			message string, userData unsafe.Pointer) vk.Bool32 {
			callback(reportSeverity(flags), message)
			return vk.False
		},
	}

	var handle vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(v.instance, &createInfo, nil, &handle)); err != nil {
		return nil, errors.New("vk.CreateDebugReportCallback(): " + err.Error())
	}
	return handle, nil
}

func (v *VulkanInstance) destroyDebugMessenger(messenger DebugMessenger) {
	if handle, ok := messenger.(vk.DebugReportCallback); ok {
		vk.DestroyDebugReportCallback(v.instance, handle, nil)
	}
}

// Inner returns the internal vk.Instance
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	vk.DestroyInstance(v.instance, nil)
}

func reportSeverity(flags vk.DebugReportFlags) string {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return "error"
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		return "warning"
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return "performance"
	default:
		return "info"
	}
}

// NewVulkanSurface wraps a surface pointer produced by the windowing
// library into a Surface owned by the given instance.
func NewVulkanSurface(instance Instance, pSurface unsafe.Pointer) (Surface, error) {
	inner, ok := instance.(*VulkanInstance)
	if !ok {
		return nil, errors.New("surface requires a Vulkan instance")
	}
	return &VulkanSurface{
		instance: inner.instance,
		surface:  vk.SurfaceFromPointer(uintptr(pSurface)),
	}, nil
}

// VulkanSurface implements Surface on the Vulkan API
type VulkanSurface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Destroy implements interface
func (s *VulkanSurface) Destroy() {
	vk.DestroySurface(s.instance, s.surface, nil)
}

// VulkanPhysicalDevice implements PhysicalDevice on the Vulkan API
type VulkanPhysicalDevice struct {
	handle vk.PhysicalDevice
}

// QueueFamilies implements interface
func (p *VulkanPhysicalDevice) QueueFamilies() ([]QueueFamily, error) {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.handle, &familyCount, nil)
	properties := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.handle, &familyCount, properties)

	families := make([]QueueFamily, familyCount)
	for idx := range properties {
		properties[idx].Deref()
		flags := properties[idx].QueueFlags
		families[idx] = QueueFamily{
			Graphics: flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Compute:  flags&vk.QueueFlags(vk.QueueComputeBit) != 0,
		}
	}
	return families, nil
}

// SupportsPresent implements interface
func (p *VulkanPhysicalDevice) SupportsPresent(family uint32, surface Surface) (bool, error) {
	inner, ok := surface.(*VulkanSurface)
	if !ok {
		return false, errors.New("present query requires a Vulkan surface")
	}
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(p.handle, family, inner.surface, &supported)); err != nil {
		return false, errors.New("vk.GetPhysicalDeviceSurfaceSupport(): " + err.Error())
	}
	return supported.B(), nil
}

// CreateDevice implements interface
func (p *VulkanPhysicalDevice) CreateDevice(plan DevicePlan) (Device, error) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, 0, len(plan.QueueRequests))
	for _, request := range plan.QueueRequests {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: request.Family,
			QueueCount:       uint32(len(request.Priorities)),
			PQueuePriorities: request.Priorities,
		})
	}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(plan.Extensions)),
		PpEnabledExtensionNames: safeStrings(plan.Extensions),
		EnabledLayerCount:       uint32(len(plan.Layers)),
		PpEnabledLayerNames:     safeStrings(plan.Layers),
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(p.handle, &deviceInfo, nil, &device)); err != nil {
		return nil, errors.New("vk.CreateDevice(): " + err.Error())
	}
	return &VulkanDevice{device: device}, nil
}

// Info implements interface
func (p *VulkanPhysicalDevice) Info() PhysicalDeviceInfo {
	var info PhysicalDeviceInfo

	var numExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.handle, "", &numExtensions, nil)); err != nil {
		info.Invalid = true
	}
	extensions := make([]vk.ExtensionProperties, numExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(p.handle, "", &numExtensions, extensions)); err != nil {
		info.Invalid = true
	}
	for _, ext := range extensions {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	var numLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.handle, &numLayers, nil)); err != nil {
		info.Invalid = true
	}
	layers := make([]vk.LayerProperties, numLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(p.handle, &numLayers, layers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range layers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(p.handle, &memoryProperties)
	memoryProperties.Deref()
	for idx := uint32(0); idx < memoryProperties.MemoryHeapCount; idx++ {
		memoryProperties.MemoryHeaps[idx].Deref()
		info.Memory += uint(memoryProperties.MemoryHeaps[idx].Size)
	}

	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(p.handle, &properties)
	properties.Deref()
	info.ID = int(properties.DeviceID)
	info.VendorID = int(properties.VendorID)
	info.Name = vk.ToString(properties.DeviceName[:])
	info.DriverVersion = int(properties.DriverVersion)

	return info
}

// VulkanDevice implements Device on the Vulkan API
type VulkanDevice struct {
	device vk.Device
}

// Queue implements interface
func (d *VulkanDevice) Queue(family, index uint32) Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.device, family, index, &queue)
	return queue
}

// Destroy implements interface
func (d *VulkanDevice) Destroy() {
	vk.DeviceWaitIdle(d.device)
	vk.DestroyDevice(d.device, nil)
}
