package input

import (
	"runtime"

	"github.com/gorustyt/glgui/gui"
)

// Platform selects the host-specific keyboard conventions.
type Platform struct {
	// Apple maps Command to the super key.
	Apple bool
	// Windows adds the Shift-Delete, Ctrl-Insert and Shift-Insert chords.
	Windows bool
}

func HostPlatform() Platform {
	return Platform{Apple: runtime.GOOS == "darwin", Windows: runtime.GOOS == "windows"}
}

func TranslateModifiers(mods ModifierKey, p Platform) gui.Modifiers {
	m := gui.Modifiers{
		Alt:   mods&ModAlt != 0,
		Ctrl:  mods&ModControl != 0,
		Shift: mods&ModShift != 0,
	}
	if p.Apple {
		m.MacCmd = mods&ModSuper != 0
		m.Command = m.MacCmd
	} else {
		m.Command = m.Ctrl
	}
	return m
}

func IsCutCommand(m gui.Modifiers, key HostKey, p Platform) bool {
	return (m.Command && key == HostKeyX) ||
		(p.Windows && m.Shift && key == HostKeyDelete)
}

func IsCopyCommand(m gui.Modifiers, key HostKey, p Platform) bool {
	return (m.Command && key == HostKeyC) ||
		(p.Windows && m.Ctrl && key == HostKeyInsert)
}

func IsPasteCommand(m gui.Modifiers, key HostKey, p Platform) bool {
	return (m.Command && key == HostKeyV) ||
		(p.Windows && m.Shift && key == HostKeyInsert)
}

var keyTable = map[HostKey]gui.Key{
	HostKeyLeft:  gui.KeyArrowLeft,
	HostKeyUp:    gui.KeyArrowUp,
	HostKeyRight: gui.KeyArrowRight,
	HostKeyDown:  gui.KeyArrowDown,

	HostKeyEscape:    gui.KeyEscape,
	HostKeyTab:       gui.KeyTab,
	HostKeyBackspace: gui.KeyBackspace,
	HostKeySpace:     gui.KeySpace,
	HostKeyEnter:     gui.KeyEnter,

	HostKeyInsert:   gui.KeyInsert,
	HostKeyHome:     gui.KeyHome,
	HostKeyDelete:   gui.KeyDelete,
	HostKeyEnd:      gui.KeyEnd,
	HostKeyPageDown: gui.KeyPageDown,
	HostKeyPageUp:   gui.KeyPageUp,
}

// TranslateKey maps a host key code. Keys outside the table are dropped.
func TranslateKey(key HostKey) (gui.Key, bool) {
	if key >= HostKeyA && key <= HostKeyZ {
		return gui.KeyA + gui.Key(key-HostKeyA), true
	}
	k, ok := keyTable[key]
	return k, ok
}

func TranslateMouseButton(b MouseButton) (gui.PointerButton, bool) {
	switch b {
	case MouseButtonLeft:
		return gui.PointerPrimary, true
	case MouseButtonRight:
		return gui.PointerSecondary, true
	case MouseButtonMiddle:
		return gui.PointerMiddle, true
	case MouseButton4:
		return gui.PointerExtra1, true
	case MouseButton5:
		return gui.PointerExtra2, true
	}
	return 0, false
}
