package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/camrig"
	"github.com/gekko3d/camrig/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Log every rig and scheme transition")
	loop := flag.Bool("loop", true, "Wrap around when cycling rigs and schemes")
	flag.Parse()

	logger := camrig.NewDefaultLogger("rigdemo", *debug)

	window, err := platform.NewWindow(platform.WindowConfig{Title: "camrig demo"})
	if err != nil {
		logger.Errorf("open window: %v", err)
		return
	}
	defer window.Destroy()

	sel := camrig.NewSelector(camrig.Config{
		Surface:     window,
		Logger:      logger,
		LoopRigs:    *loop,
		LoopSchemes: *loop,
	})

	for _, pos := range []mgl32.Vec3{{0, 4, 12}, {10, 2, 0}} {
		_, err := sel.Register(&camrig.RigSpec{
			Camera: camrig.NewPerspectiveCamera(pos),
			Schemes: []camrig.SchemeSpec{
				camrig.OrbitScheme(camrig.OrbitOptions{MinDistance: 1, MaxDistance: 100}),
				camrig.PointerCaptureScheme(camrig.PointerCaptureOptions{}),
			},
		})
		if err != nil {
			logger.Errorf("register rig: %v", err)
			return
		}
	}

	window.BindResize(sel)
	if err := sel.SetActiveRig(0, false); err != nil {
		logger.Errorf("activate rig: %v", err)
		return
	}

	window.OnKey(func(key glfw.Key, action glfw.Action) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyTab:
			if _, err := sel.SelectScheme(camrig.Next); err != nil {
				logger.Warnf("select scheme: %v", err)
			}
		case glfw.KeyC:
			if _, err := sel.SelectRig(camrig.Next); err != nil {
				logger.Warnf("select rig: %v", err)
			}
		case glfw.KeyEscape:
			window.Close()
		}
	})

	last := time.Now()
	for !window.ShouldClose() {
		window.Poll()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		walk(sel, window, dt)
	}
}

// walk moves the live pointer capture scheme with WASD, Space and Control.
func walk(sel *camrig.Selector, window *platform.Window, dt float32) {
	rig, err := sel.Rig(sel.ActiveRig())
	if err != nil {
		return
	}
	i := sel.ActiveScheme()
	if i == camrig.NoIndex {
		return
	}
	pc, ok := rig.Schemes()[i].Control().(*camrig.PointerCaptureControls)
	if !ok {
		return
	}

	var move mgl32.Vec3
	if window.KeyPressed(glfw.KeyW) {
		move[2] += 1
	}
	if window.KeyPressed(glfw.KeyS) {
		move[2] -= 1
	}
	if window.KeyPressed(glfw.KeyA) {
		move[0] -= 1
	}
	if window.KeyPressed(glfw.KeyD) {
		move[0] += 1
	}
	if window.KeyPressed(glfw.KeySpace) {
		move[1] += 1
	}
	if window.KeyPressed(glfw.KeyLeftControl) {
		move[1] -= 1
	}
	pc.Move(move, dt)
}
