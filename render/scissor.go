package render

import (
	"github.com/gorustyt/glgui/common"
)

// ClipToScissor converts a clip rect in logical points to a glScissor box
// for a width by height framebuffer. GL measures y from the bottom.
func ClipToScissor(clip common.Rect, pixelsPerPoint float32, width, height int) (x, y, w, h int32) {
	fw, fh := float32(width), float32(height)
	px := clip.Mul(pixelsPerPoint)

	minX := common.Clamp(px.Min[0], 0, fw)
	minY := common.Clamp(px.Min[1], 0, fh)
	maxX := common.Clamp(px.Max[0], minX, fw)
	maxY := common.Clamp(px.Max[1], minY, fh)

	x0, y0 := common.RoundToInt(minX), common.RoundToInt(minY)
	x1, y1 := common.RoundToInt(maxX), common.RoundToInt(maxY)
	return x0, int32(height) - y1, x1 - x0, y1 - y0
}
