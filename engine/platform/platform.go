package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/uchiha/engine/containers"
	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/math"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Pending events beyond this are dropped (with a warning) until the
// application drains the queue again.
const pendingEventCapacity = 256

// Platform owns the window, the GL context attached to it and the queue of
// pending input events. Input arrives through GLFW callbacks during
// PollEvent and is handed out one translated core.Event at a time.
type Platform struct {
	Window *glfw.Window

	width  uint32
	height uint32

	pending *containers.RingQueue[core.Event]

	// last observed cursor position, reported with click events
	cursorX uint16
	cursorY uint16
}

func New() *Platform {
	return &Platform{
		pending: containers.NewRingQueue[core.Event](pendingEventCapacity),
	}
}

// Startup creates the window with a 3.3 core profile context and makes that
// context current on the calling thread. Every GPU call of the engine
// requires this to have succeeded first.
func (p *Platform) Startup(applicationName string, width, height uint32, fullscreen bool) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, monitor, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	p.Window = window
	p.width = width
	p.height = height

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PollEvent pumps the OS message queue and reports at most one pending
// event. It never blocks: when nothing is pending it returns false
// immediately. Call in a loop until it returns false to drain the queue
// within a frame.
func (p *Platform) PollEvent() (core.Event, bool) {
	glfw.PollEvents()

	event, err := p.pending.Dequeue()
	if err != nil {
		return core.Event{}, false
	}
	return event, true
}

// SwapBuffers makes the rendered backbuffer visible.
func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// FramebufferSize returns the current framebuffer dimensions in pixels.
func (p *Platform) FramebufferSize() (uint32, uint32) {
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

// GetAbsoluteTime returns the seconds since GLFW initialization.
func GetAbsoluteTime() float64 {
	return glfw.GetTime()
}

func (p *Platform) push(event core.Event) {
	if err := p.pending.Enqueue(event); err != nil {
		core.LogWarn("input queue full, dropping %s event", event.Type)
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	event, ok := TranslateKeyEvent(key, action)
	if !ok {
		return
	}
	p.push(event)
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	// Click events fire on release, carrying the last known cursor position.
	if action != glfw.Release {
		return
	}
	p.push(core.Event{
		Type:   core.EVENT_MOUSE_CLICK,
		MouseX: p.cursorX,
		MouseY: p.cursorY,
	})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.cursorX = uint16(math.Clamp(xpos, 0, float64(p.width-1)))
	p.cursorY = uint16(math.Clamp(ypos, 0, float64(p.height-1)))
	p.push(core.Event{
		Type:   core.EVENT_MOUSE_MOTION,
		MouseX: p.cursorX,
		MouseY: p.cursorY,
	})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.push(core.Event{Type: core.EVENT_QUIT})
}
