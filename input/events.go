package input

// The host event types mirror GLFW's callbacks and reuse its numeric
// constants, so a GLFW value converts with a plain cast.

type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButton4      MouseButton = 3
	MouseButton5      MouseButton = 4
)

// HostKey is a GLFW key code.
type HostKey int

const (
	HostKeyUnknown   HostKey = -1
	HostKeySpace     HostKey = 32
	HostKeyA         HostKey = 65
	HostKeyC         HostKey = 67
	HostKeyV         HostKey = 86
	HostKeyX         HostKey = 88
	HostKeyZ         HostKey = 90
	HostKeyEscape    HostKey = 256
	HostKeyEnter     HostKey = 257
	HostKeyTab       HostKey = 258
	HostKeyBackspace HostKey = 259
	HostKeyInsert    HostKey = 260
	HostKeyDelete    HostKey = 261
	HostKeyRight     HostKey = 262
	HostKeyLeft      HostKey = 263
	HostKeyDown      HostKey = 264
	HostKeyUp        HostKey = 265
	HostKeyPageUp    HostKey = 266
	HostKeyPageDown  HostKey = 267
	HostKeyHome      HostKey = 268
	HostKeyEnd       HostKey = 269
	HostKeyF1        HostKey = 290
)

// HostEvent is one of the window events below.
type HostEvent interface {
	isHostEvent()
}

type FocusEvent struct {
	Focused bool
}

type IconifyEvent struct {
	Iconified bool
}

type MaximizeEvent struct {
	Maximized bool
}

// FramebufferSizeEvent is in physical pixels.
type FramebufferSizeEvent struct {
	Width, Height int
}

type ContentScaleEvent struct {
	X, Y float32
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorPosEvent is in physical pixels relative to the window's top left.
type CursorPosEvent struct {
	X, Y float64
}

type CursorEnterEvent struct {
	Entered bool
}

// ScrollEvent is in scroll lines.
type ScrollEvent struct {
	X, Y float64
}

type KeyEvent struct {
	Key      HostKey
	Scancode int
	Action   Action
	Mods     ModifierKey
}

type CharEvent struct {
	Char rune
}

type CloseEvent struct{}

func (FocusEvent) isHostEvent()           {}
func (IconifyEvent) isHostEvent()         {}
func (MaximizeEvent) isHostEvent()        {}
func (FramebufferSizeEvent) isHostEvent() {}
func (ContentScaleEvent) isHostEvent()    {}
func (MouseButtonEvent) isHostEvent()     {}
func (CursorPosEvent) isHostEvent()       {}
func (CursorEnterEvent) isHostEvent()     {}
func (ScrollEvent) isHostEvent()          {}
func (KeyEvent) isHostEvent()             {}
func (CharEvent) isHostEvent()            {}
func (CloseEvent) isHostEvent()           {}
