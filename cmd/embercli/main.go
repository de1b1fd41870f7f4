package main

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ember3d/ember/core"
)

// Headless device inspector: creates a bare instance through the system
// loader, dumps every visible device as JSON and reports which one a
// graphics-only bootstrap would pick.
func main() {
	driver, err := core.NewVulkanDriver(core.DefaultVulkanApplicationInfo, nil)
	if err != nil {
		log.Fatal(err)
	}

	instance, err := driver.CreateInstance(core.InstanceConfiguration{})
	if err != nil {
		log.Fatal(err)
	}
	defer instance.Destroy()

	devices, err := instance.PhysicalDevices()
	if err != nil {
		log.Fatal(err)
	}

	infos := make([]core.PhysicalDeviceInfo, 0, len(devices))
	for _, device := range devices {
		infos = append(infos, device.Info())
	}

	bytes, err := json.Marshal(infos)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)

	selected, err := core.SelectPhysicalDevice(instance, nil)
	if errors.Is(err, core.ErrNoCompatibleGPU) {
		log.Warn(err)
		return
	} else if err != nil {
		log.Fatal(err)
	}
	log.WithField("device", selected.Info().Name).Info("would select")
}
