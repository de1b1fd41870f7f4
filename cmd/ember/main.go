package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/core"
)

func init() {
	runtime.LockOSThread()
}

// sdlWindowSystem adapts an SDL window to the bootstrap's windowing
// collaborator interface.
type sdlWindowSystem struct {
	window *sdl.Window
}

func (w *sdlWindowSystem) InstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *sdlWindowSystem) CreateSurface(instance core.Instance) (core.Surface, error) {
	pSurface, err := w.window.VulkanCreateSurface(instance.Inner())
	if err != nil {
		return nil, err
	}
	return core.NewVulkanSurface(instance, pSurface)
}

func newWindow(cfg core.WindowConfiguration) *sdl.Window {
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

func main() {
	configuration := core.FromEnv()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatal(err)
	}
	defer sdl.VulkanUnloadLibrary()

	window := newWindow(configuration.Window)
	defer window.Destroy()

	driver, err := core.NewVulkanDriver(core.DefaultVulkanApplicationInfo, sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		log.Fatal(err)
	}

	context, err := core.NewGraphicsContext(driver, &sdlWindowSystem{window: window}, configuration)
	if err != nil {
		log.Fatal(err)
	}
	defer context.Destroy()

	log.WithFields(log.Fields{
		"device": context.PhysicalDevice().Info().Name,
		"debug":  configuration.Instance.DebugMode,
	}).Info("graphics context ready")

	clock := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-clock.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}
}
