package input

import (
	"github.com/gorustyt/glgui/gui"
)

// Cursor is a host pointer shape. Hosts without a dedicated shape fall
// back to Arrow.
type Cursor uint8

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorResizeEW
	CursorResizeNS
	CursorResizeNESW
	CursorResizeNWSE
	CursorResizeAll
	CursorNotAllowed
	CursorWait
	CursorProgress
	CursorHelp
)

// TranslateCursor returns false when the cursor should be hidden.
func TranslateCursor(icon gui.CursorIcon) (Cursor, bool) {
	switch icon {
	case gui.CursorNone:
		return 0, false
	case gui.CursorArrow:
		return CursorArrow, true
	case gui.CursorText, gui.CursorVerticalText:
		return CursorIBeam, true
	case gui.CursorCrosshair:
		return CursorCrosshair, true
	case gui.CursorPointingHand:
		return CursorHand, true
	case gui.CursorNotAllowed, gui.CursorNoDrop:
		return CursorNotAllowed, true
	case gui.CursorMove, gui.CursorGrab, gui.CursorGrabbing, gui.CursorAllScroll:
		return CursorResizeAll, true
	case gui.CursorResizeHorizontal, gui.CursorResizeColumn, gui.CursorResizeEast, gui.CursorResizeWest:
		return CursorResizeEW, true
	case gui.CursorResizeVertical, gui.CursorResizeRow, gui.CursorResizeNorth, gui.CursorResizeSouth:
		return CursorResizeNS, true
	case gui.CursorResizeNeSw, gui.CursorResizeNorthEast, gui.CursorResizeSouthWest:
		return CursorResizeNESW, true
	case gui.CursorResizeNwSe, gui.CursorResizeNorthWest, gui.CursorResizeSouthEast:
		return CursorResizeNWSE, true
	case gui.CursorWait:
		return CursorWait, true
	case gui.CursorProgress:
		return CursorProgress, true
	case gui.CursorHelp:
		return CursorHelp, true
	}
	return CursorArrow, true
}
