//go:build windows

package window

import (
	"github.com/gorustyt/glgui/input"
	"golang.org/x/sys/windows"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procLoadCursorW = user32.NewProc("LoadCursorW")
	procSetCursor   = user32.NewProc("SetCursor")
)

// IDC_* resource ids from winuser.h.
const (
	idcArrow       = 32512
	idcIBeam       = 32513
	idcWait        = 32514
	idcCross       = 32515
	idcSizeNWSE    = 32642
	idcSizeNESW    = 32643
	idcSizeWE      = 32644
	idcSizeNS      = 32645
	idcSizeAll     = 32646
	idcNo          = 32648
	idcHand        = 32649
	idcAppStarting = 32650
	idcHelp        = 32651
)

var nativeCursorIds = map[input.Cursor]uintptr{
	input.CursorArrow:      idcArrow,
	input.CursorIBeam:      idcIBeam,
	input.CursorCrosshair:  idcCross,
	input.CursorHand:       idcHand,
	input.CursorResizeEW:   idcSizeWE,
	input.CursorResizeNS:   idcSizeNS,
	input.CursorResizeNESW: idcSizeNESW,
	input.CursorResizeNWSE: idcSizeNWSE,
	input.CursorResizeAll:  idcSizeAll,
	input.CursorNotAllowed: idcNo,
	input.CursorWait:       idcWait,
	input.CursorProgress:   idcAppStarting,
	input.CursorHelp:       idcHelp,
}

func setNativeCursor(c input.Cursor) bool {
	id, ok := nativeCursorIds[c]
	if !ok {
		id = idcArrow
	}
	if procLoadCursorW.Find() != nil || procSetCursor.Find() != nil {
		return false
	}
	handle, _, _ := procLoadCursorW.Call(0, id)
	if handle == 0 {
		return false
	}
	procSetCursor.Call(handle)
	return true
}
