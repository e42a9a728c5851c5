//go:build !windows

package window

import (
	"github.com/gorustyt/glgui/input"
)

func setNativeCursor(input.Cursor) bool {
	return false
}
