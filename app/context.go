package app

import (
	"github.com/gorustyt/glgui/gui"
	"github.com/gorustyt/glgui/input"
	"github.com/gorustyt/glgui/render"
)

// Context is shared by every UI component during a frame.
type Context struct {
	Renderer *render.Painter
	Toolkit  gui.Toolkit
	Input    *input.Translator
	Timer    *DeltaTimer
	// Quit ends Run after the current frame.
	Quit bool
}

// UiComponent is a piece of application UI. Init runs once before the
// first Update. Close is optional and runs on Backend.Close.
type UiComponent struct {
	Name   string
	Init   func(ctx *Context)
	Update func(ctx *Context)
	Close  func(ctx *Context) error
}

// Scene draws with GL directly, under the GUI.
type Scene interface {
	Draw(ctx *Context)
	Close() error
}
