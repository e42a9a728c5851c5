package gui

import (
	"github.com/gorustyt/glgui/common"
)

// RawInput collects everything the host observed since the previous frame.
type RawInput struct {
	// ScreenRect is in logical points. Nil until the host reports a size.
	ScreenRect *common.Rect
	// Time is seconds since the application started.
	Time   float64
	Events []Event
}

// Take returns the accumulated input and leaves r with an empty event list
// and the same screen rect.
func (r *RawInput) Take() RawInput {
	out := *r
	r.Events = nil
	return out
}

func (r *RawInput) Push(e Event) {
	r.Events = append(r.Events, e)
}

// Event is one of the input event types below.
type Event interface {
	isEvent()
}

type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// MacCmd is the Command key, only ever set on macOS.
	MacCmd bool
	// Command is Command on macOS and Ctrl elsewhere.
	Command bool
}

func (m Modifiers) IsNone() bool {
	return m == Modifiers{}
}

type PointerButton uint8

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
	PointerExtra1
	PointerExtra2
)

type Key uint8

const (
	KeyArrowDown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = [...]string{
	"ArrowDown", "ArrowLeft", "ArrowRight", "ArrowUp",
	"Escape", "Tab", "Backspace", "Enter", "Space",
	"Insert", "Delete", "Home", "End", "PageUp", "PageDown",
}

func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + k - KeyA))
	}
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

type PointerMovedEvent struct {
	Pos common.Vec2
}

type PointerButtonEvent struct {
	Pos       common.Vec2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

type PointerGoneEvent struct{}

const (
	// PointsPerScrollLine converts host scroll lines into points.
	PointsPerScrollLine = 50
	// ZoomDivisor scales a vertical scroll in points into the exponent of
	// a ZoomEvent factor.
	ZoomDivisor = 200
)

// ScrollEvent is a scroll delta in logical points.
type ScrollEvent struct {
	Delta common.Vec2
}

// ZoomEvent is a multiplicative zoom factor.
type ZoomEvent struct {
	Factor float32
}

type TextEvent struct {
	Text string
}

type KeyEvent struct {
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

type CutEvent struct{}

type CopyEvent struct{}

type PasteEvent struct {
	Text string
}

func (PointerMovedEvent) isEvent()  {}
func (PointerButtonEvent) isEvent() {}
func (PointerGoneEvent) isEvent()   {}
func (ScrollEvent) isEvent()        {}
func (ZoomEvent) isEvent()          {}
func (TextEvent) isEvent()          {}
func (KeyEvent) isEvent()           {}
func (CutEvent) isEvent()           {}
func (CopyEvent) isEvent()          {}
func (PasteEvent) isEvent()         {}
