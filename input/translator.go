// Package input turns host window events into toolkit input and applies
// the toolkit's platform requests back to the host.
package input

import (
	"errors"
	"math"
	"strings"

	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
	"go.uber.org/zap"
)

var errNoClipboard = errors.New("clipboard unavailable")

type Option func(t *Translator)

// WithClipboard sets the OS clipboard. Without one, paste does nothing and
// copied text is dropped.
func WithClipboard(c Clipboard) Option {
	return func(t *Translator) {
		t.clipboard = c
	}
}

func WithCursorSetter(s CursorSetter) Option {
	return func(t *Translator) {
		t.cursor = s
	}
}

func WithURLOpener(o URLOpener) Option {
	return func(t *Translator) {
		t.opener = o
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(t *Translator) {
		t.logger = common.OrNop(l)
	}
}

func WithPlatform(p Platform) Option {
	return func(t *Translator) {
		t.platform = p
	}
}

// Translator owns the input record of the current frame and the host-side
// state needed to fill it.
type Translator struct {
	raw            gui.RawInput
	pixelsPerPoint float32

	modifiers      gui.Modifiers
	focused        bool
	minimized      bool
	maximized      bool
	cursorPos      common.Vec2
	cursorInWindow bool
	cursorIcon     gui.CursorIcon
	closeRequested bool

	platform  Platform
	clipboard Clipboard
	cursor    CursorSetter
	opener    URLOpener
	logger    *zap.Logger
	// reported holds capability failures already logged.
	reported map[string]bool
}

// NewTranslator starts with the framebuffer size in physical pixels.
func NewTranslator(pixelsPerPoint float32, width, height int, opts ...Option) *Translator {
	common.Assertf(pixelsPerPoint > 0, "pixels per point must be positive, got %v", pixelsPerPoint)
	t := &Translator{
		pixelsPerPoint: pixelsPerPoint,
		focused:        true,
		cursorIcon:     gui.CursorDefault,
		platform:       HostPlatform(),
		opener:         BrowserOpener{},
		logger:         zap.NewNop(),
		reported:       map[string]bool{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.setScreenSize(width, height)
	if t.clipboard == nil {
		t.reportOnce("clipboard", errNoClipboard)
	}
	return t
}

func (t *Translator) reportOnce(kind string, err error) {
	if t.reported[kind] {
		return
	}
	t.reported[kind] = true
	t.logger.Warn("host capability failed", zap.String("capability", kind), zap.Error(err))
}

func (t *Translator) setScreenSize(width, height int) {
	rect := common.RectFromMinSize(common.Vec2{}, common.Vec2{float32(width), float32(height)}.Mul(1/t.pixelsPerPoint))
	t.raw.ScreenRect = &rect
}

func (t *Translator) PixelsPerPoint() float32 { return t.pixelsPerPoint }
func (t *Translator) Modifiers() gui.Modifiers { return t.modifiers }
func (t *Translator) Focused() bool            { return t.focused }
func (t *Translator) Minimized() bool          { return t.minimized }
func (t *Translator) Maximized() bool          { return t.maximized }
func (t *Translator) CursorPos() common.Vec2   { return t.cursorPos }
func (t *Translator) CursorInWindow() bool     { return t.cursorInWindow }
func (t *Translator) CursorIcon() gui.CursorIcon {
	return t.cursorIcon
}

// CloseRequested reports whether the host asked the window to close.
func (t *Translator) CloseRequested() bool {
	return t.closeRequested
}

// SetTime records seconds since start in the pending input.
func (t *Translator) SetTime(seconds float64) {
	t.raw.Time = seconds
}

// SetPixelsPerPoint changes the scale used for later events. The screen
// rect is rescaled to keep its physical size.
func (t *Translator) SetPixelsPerPoint(ppp float32) {
	common.Assertf(ppp > 0, "pixels per point must be positive, got %v", ppp)
	if ppp == t.pixelsPerPoint {
		return
	}
	if r := t.raw.ScreenRect; r != nil {
		size := r.Size().Mul(t.pixelsPerPoint)
		t.pixelsPerPoint = ppp
		t.setScreenSize(int(math.Round(float64(size[0]))), int(math.Round(float64(size[1]))))
		return
	}
	t.pixelsPerPoint = ppp
}

// TakeInput moves the pending input out and starts a new record.
func (t *Translator) TakeInput() gui.RawInput {
	return t.raw.Take()
}

// Pending returns the events queued for the next frame.
func (t *Translator) Pending() []gui.Event {
	return t.raw.Events
}

func (t *Translator) push(e gui.Event) {
	t.raw.Push(e)
}

func (t *Translator) HandleEvents(events []HostEvent) {
	for _, e := range events {
		t.HandleEvent(e)
	}
}

func (t *Translator) HandleEvent(event HostEvent) {
	switch e := event.(type) {
	case CloseEvent:
		t.closeRequested = true
	case FocusEvent:
		t.focused = e.Focused
	case IconifyEvent:
		t.minimized = e.Iconified
	case MaximizeEvent:
		t.maximized = e.Maximized
	case FramebufferSizeEvent:
		t.setScreenSize(e.Width, e.Height)
	case ContentScaleEvent:
		t.SetPixelsPerPoint(e.X)
	case MouseButtonEvent:
		button, ok := TranslateMouseButton(e.Button)
		if !ok {
			return
		}
		t.push(gui.PointerButtonEvent{
			Pos:       t.cursorPos,
			Button:    button,
			Pressed:   e.Action == Press,
			Modifiers: t.modifiers,
		})
	case CursorPosEvent:
		t.cursorPos = common.Vec2{float32(e.X), float32(e.Y)}.Mul(1 / t.pixelsPerPoint)
		t.push(gui.PointerMovedEvent{Pos: t.cursorPos})
	case CursorEnterEvent:
		t.cursorInWindow = e.Entered
	case ScrollEvent:
		t.handleScroll(e)
	case KeyEvent:
		t.handleKey(e)
	case CharEvent:
		t.push(gui.TextEvent{Text: string(e.Char)})
	}
}

func (t *Translator) handleScroll(e ScrollEvent) {
	delta := common.Vec2{float32(e.X), float32(e.Y)}.Mul(gui.PointsPerScrollLine)
	// GLFW reports horizontal scroll with the opposite sign.
	delta[0] = -delta[0]

	switch {
	case t.modifiers.Ctrl || t.modifiers.Command:
		t.push(gui.ZoomEvent{Factor: float32(math.Exp(float64(delta[1]) / gui.ZoomDivisor))})
	case t.modifiers.Shift:
		t.push(gui.ScrollEvent{Delta: common.Vec2{delta[0] + delta[1], 0}})
	default:
		t.push(gui.ScrollEvent{Delta: delta})
	}
}

func (t *Translator) handleKey(e KeyEvent) {
	t.modifiers = TranslateModifiers(e.Mods, t.platform)

	if e.Action == Press {
		switch {
		case IsCutCommand(t.modifiers, e.Key, t.platform):
			t.push(gui.CutEvent{})
		case IsCopyCommand(t.modifiers, e.Key, t.platform):
			t.push(gui.CopyEvent{})
		case IsPasteCommand(t.modifiers, e.Key, t.platform):
			if text, ok := t.clipboardText(); ok {
				t.push(gui.PasteEvent{Text: text})
			}
		}
	}

	if key, ok := TranslateKey(e.Key); ok {
		t.push(gui.KeyEvent{
			Key:       key,
			Pressed:   e.Action == Press || e.Action == Repeat,
			Repeat:    e.Action == Repeat,
			Modifiers: t.modifiers,
		})
	}
}

func (t *Translator) clipboardText() (string, bool) {
	if t.clipboard == nil {
		return "", false
	}
	text, err := t.clipboard.Text()
	if err != nil {
		t.reportOnce("clipboard read", err)
		return "", false
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text, text != ""
}

// HandlePlatformOutput applies the toolkit's requests after EndFrame and
// adopts the toolkit's current pixels per point.
func (t *Translator) HandlePlatformOutput(out gui.PlatformOutput, pixelsPerPoint float32) {
	t.SetPixelsPerPoint(pixelsPerPoint)
	t.setCursorIcon(out.CursorIcon)

	if out.CopiedText != "" {
		if t.clipboard == nil {
			t.reportOnce("clipboard", errNoClipboard)
		} else if err := t.clipboard.SetText(out.CopiedText); err != nil {
			t.reportOnce("clipboard write", err)
		}
	}

	if out.OpenURL != nil && t.opener != nil {
		if err := t.opener.OpenURL(out.OpenURL.URL); err != nil {
			t.reportOnce("open url", err)
		}
	}
}

func (t *Translator) setCursorIcon(icon gui.CursorIcon) {
	t.cursorIcon = icon
	if icon == gui.CursorDefault || t.cursor == nil {
		return
	}
	c, visible := TranslateCursor(icon)
	if !visible {
		t.cursor.HideCursor()
		return
	}
	if t.cursorInWindow {
		t.cursor.SetCursor(c)
	}
}
