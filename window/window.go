// Package window hosts the GL context in a GLFW window and converts GLFW
// callbacks into input.HostEvent values.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/config"
	"github.com/gorustyt/glgui/input"
	"go.uber.org/zap"
)

// GLFW event processing must happen on the main thread.
func init() {
	runtime.LockOSThread()
}

type Window struct {
	glw     *glfw.Window
	logger  *zap.Logger
	events  []input.HostEvent
	cursors map[input.Cursor]*glfw.Cursor
	hidden  bool
}

func setHints(cfg *config.WindowConfig) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)
}

// New initialises GLFW, opens a window and makes its context current on
// the calling thread, which must be the main thread.
func New(cfg *config.WindowConfig, logger *zap.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	setHints(cfg)

	glw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	glw.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		glw:     glw,
		logger:  common.OrNop(logger),
		cursors: map[input.Cursor]*glfw.Cursor{},
	}
	w.registerEvents()
	// No enter callback fires for a window opened under the pointer.
	if glw.GetAttrib(glfw.Hovered) == glfw.True {
		w.push(input.CursorEnterEvent{Entered: true})
	}
	fw, fh := glw.GetFramebufferSize()
	w.logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("framebuffer_width", fw),
		zap.Int("framebuffer_height", fh),
		zap.Float32("content_scale", w.ContentScale()))
	return w, nil
}

func (w *Window) push(e input.HostEvent) {
	w.events = append(w.events, e)
}

func (w *Window) registerEvents() {
	glw := w.glw
	glw.SetCloseCallback(func(_ *glfw.Window) {
		w.push(input.CloseEvent{})
	})
	glw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.push(input.FocusEvent{Focused: focused})
	})
	glw.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		w.push(input.IconifyEvent{Iconified: iconified})
	})
	glw.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		w.push(input.MaximizeEvent{Maximized: maximized})
	})
	glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(input.FramebufferSizeEvent{Width: width, Height: height})
	})
	glw.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		w.push(input.ContentScaleEvent{X: x, Y: y})
	})
	glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.push(input.MouseButtonEvent{
			Button: input.MouseButton(button),
			Action: input.Action(action),
			Mods:   input.ModifierKey(mods),
		})
	})
	glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(input.CursorPosEvent{X: x, Y: y})
	})
	glw.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		w.push(input.CursorEnterEvent{Entered: entered})
	})
	glw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.push(input.ScrollEvent{X: xoff, Y: yoff})
	})
	glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.push(input.KeyEvent{
			Key:      input.HostKey(key),
			Scancode: scancode,
			Action:   input.Action(action),
			Mods:     input.ModifierKey(mods),
		})
	})
	glw.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.push(input.CharEvent{Char: char})
	})
}

// PollEvents processes pending GLFW events and returns them in arrival
// order.
func (w *Window) PollEvents() []input.HostEvent {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

func (w *Window) FramebufferSize() (int, int) {
	return w.glw.GetFramebufferSize()
}

// ContentScale is the horizontal content scale, used as pixels per point.
func (w *Window) ContentScale() float32 {
	x, _ := w.glw.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

// Time is seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.glw.SetShouldClose(v)
}

func (w *Window) Clipboard() Clipboard {
	return Clipboard{}
}

// Close destroys the cursors, the window with its context and terminates
// GLFW.
func (w *Window) Close() {
	for c, cur := range w.cursors {
		cur.Destroy()
		delete(w.cursors, c)
	}
	w.glw.Destroy()
	glfw.Terminate()
}
