package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gorustyt/glgui/input"
)

// GLFW 3.3 only ships six standard shapes.
func standardShape(c input.Cursor) glfw.StandardCursor {
	switch c {
	case input.CursorIBeam:
		return glfw.IBeamCursor
	case input.CursorCrosshair:
		return glfw.CrosshairCursor
	case input.CursorHand:
		return glfw.HandCursor
	case input.CursorResizeEW:
		return glfw.HResizeCursor
	case input.CursorResizeNS:
		return glfw.VResizeCursor
	}
	return glfw.ArrowCursor
}

// SetCursor shows the cursor with the given shape. Shapes GLFW lacks use
// the native cursor where the platform supports it.
func (w *Window) SetCursor(c input.Cursor) {
	if w.hidden {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w.hidden = false
	}
	if setNativeCursor(c) {
		return
	}
	cur, ok := w.cursors[c]
	if !ok {
		cur = glfw.CreateStandardCursor(standardShape(c))
		w.cursors[c] = cur
	}
	w.glw.SetCursor(cur)
}

func (w *Window) HideCursor() {
	if !w.hidden {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		w.hidden = true
	}
}
