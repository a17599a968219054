// Package platform adapts a GLFW window to the camrig input surface.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/camrig"
)

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Title == "" {
		c.Title = "camrig"
	}
	return c
}

// Resizer receives framebuffer size changes, typically a *camrig.Selector.
type Resizer interface {
	OnResize(width, height int)
}

// Window is a GLFW window that feeds pointer events to camrig controls and
// implements pointer capture with GLFW's disabled cursor mode.
type Window struct {
	camrig.ListenerSet

	win      *glfw.Window
	captured bool

	lastX, lastY float64
	havePos      bool
	buttons      camrig.PointerButton
}

var _ camrig.Surface = &Window{}

// NewWindow initialises GLFW and opens a window without a client API. It
// locks the calling goroutine to its OS thread, as GLFW requires.
func NewWindow(cfg WindowConfig) (*Window, error) {
	cfg = cfg.withDefaults()

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &Window{win: win}
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetScrollCallback(w.onScroll)
	return w, nil
}

// BindResize forwards size changes to r and reports the current size once.
func (w *Window) BindResize(r Resizer) {
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		r.OnResize(width, height)
	})
	r.OnResize(w.win.GetSize())
}

func (w *Window) CapturePointer() {
	w.captured = true
	w.havePos = false
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (w *Window) ReleasePointer() {
	w.captured = false
	w.havePos = false
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func (w *Window) PointerCaptured() bool { return w.captured }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// KeyPressed reports whether key is held.
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// OnKey installs fn as the key handler, replacing any previous one.
func (w *Window) OnKey(fn func(key glfw.Key, action glfw.Action)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

func (w *Window) Close() { w.win.SetShouldClose(true) }

// Poll processes pending window events, dispatching pointer events.
func (w *Window) Poll() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) onCursorPos(_ *glfw.Window, x, y float64) {
	var dx, dy float64
	if w.havePos {
		dx = x - w.lastX
		dy = y - w.lastY
	}
	w.lastX, w.lastY = x, y
	w.havePos = true

	w.Dispatch(camrig.PointerEvent{
		Type:    camrig.PointerMove,
		X:       x,
		Y:       y,
		DeltaX:  dx,
		DeltaY:  dy,
		Buttons: w.buttons,
	})
}

func (w *Window) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var b camrig.PointerButton
	switch button {
	case glfw.MouseButtonLeft:
		b = camrig.MouseButtonLeft
	case glfw.MouseButtonRight:
		b = camrig.MouseButtonRight
	case glfw.MouseButtonMiddle:
		b = camrig.MouseButtonMiddle
	default:
		return
	}

	ev := camrig.PointerEvent{X: w.lastX, Y: w.lastY, Button: b}
	switch action {
	case glfw.Press:
		w.buttons |= b
		ev.Type = camrig.PointerDown
	case glfw.Release:
		w.buttons &^= b
		ev.Type = camrig.PointerUp
	default:
		return
	}
	ev.Buttons = w.buttons
	w.Dispatch(ev)
}

func (w *Window) onScroll(_ *glfw.Window, _, yoff float64) {
	w.Dispatch(camrig.PointerEvent{
		Type:    camrig.PointerWheel,
		X:       w.lastX,
		Y:       w.lastY,
		Wheel:   yoff,
		Buttons: w.buttons,
	})
}
