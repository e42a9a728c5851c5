package imguikit

import (
	"math"

	"github.com/AllenDang/imgui-go"
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/common/rw"
	"github.com/gorustyt/glgui/gui"
)

// TextureID packs a gui.TextureId into an imgui texture id. The low bit is
// the kind.
func TextureID(id gui.TextureId) imgui.TextureID {
	return imgui.TextureID(id.Index<<1 | uint64(id.Kind))
}

func FromTextureID(id imgui.TextureID) gui.TextureId {
	return gui.TextureId{Kind: gui.TextureKind(id & 1), Index: uint64(id) >> 1}
}

// ImGuiMouseCursor values.
const (
	mouseCursorNone       = -1
	mouseCursorArrow      = 0
	mouseCursorTextInput  = 1
	mouseCursorResizeAll  = 2
	mouseCursorResizeNS   = 3
	mouseCursorResizeEW   = 4
	mouseCursorResizeNESW = 5
	mouseCursorResizeNWSE = 6
	mouseCursorHand       = 7
	mouseCursorNotAllowed = 8
)

func cursorIcon(c int) gui.CursorIcon {
	switch c {
	case mouseCursorNone:
		return gui.CursorNone
	case mouseCursorTextInput:
		return gui.CursorText
	case mouseCursorResizeAll:
		return gui.CursorMove
	case mouseCursorResizeNS:
		return gui.CursorResizeVertical
	case mouseCursorResizeEW:
		return gui.CursorResizeHorizontal
	case mouseCursorResizeNESW:
		return gui.CursorResizeNeSw
	case mouseCursorResizeNWSE:
		return gui.CursorResizeNwSe
	case mouseCursorHand:
		return gui.CursorPointingHand
	case mouseCursorNotAllowed:
		return gui.CursorNotAllowed
	}
	return gui.CursorArrow
}

// vertexLayout describes ImDrawVert: position, uv and a packed RGBA colour.
type vertexLayout struct {
	size, pos, uv, col int
}

func decodeVertices(data []byte, layout vertexLayout) []gui.Vertex {
	common.Assertf(layout.pos+8 <= layout.uv && layout.uv+8 <= layout.col && layout.col+4 <= layout.size,
		"unexpected vertex layout %+v", layout)
	n := len(data) / layout.size
	out := make([]gui.Vertex, n)
	r := rw.NewReader(data)
	for i := range out {
		v := &out[i]
		r.Skip(layout.pos)
		v.Pos = common.Vec2{r.ReadFloat32(), r.ReadFloat32()}
		r.Skip(layout.uv - layout.pos - 8)
		v.UV = common.Vec2{r.ReadFloat32(), r.ReadFloat32()}
		r.Skip(layout.col - layout.uv - 8)
		r.ReadUInt8s(v.Color[:])
		v.Color = gui.RGBAUnmultiplied(v.Color[0], v.Color[1], v.Color[2], v.Color[3])
		r.Skip(layout.size - layout.col - 4)
	}
	return out
}

func decodeIndices(data []byte, indexSize int) []uint32 {
	common.Assertf(indexSize == 2 || indexSize == 4, "unexpected index size %d", indexSize)
	n := len(data) / indexSize
	out := make([]uint32, n)
	r := rw.NewReader(data)
	for i := range out {
		if indexSize == 2 {
			out[i] = uint32(r.ReadUInt16())
		} else {
			out[i] = r.ReadUInt32()
		}
	}
	return out
}

// fontImage converts the RGBA32 font atlas into premultiplied colours.
func fontImage(width, height int, pixels []byte) *gui.ColorImage {
	common.Assertf(len(pixels) == 4*width*height, "font atlas %dx%d has %d bytes", width, height, len(pixels))
	img := &gui.ColorImage{Width: width, Height: height, Pixels: make([]gui.Color32, width*height)}
	for i := range img.Pixels {
		p := pixels[4*i : 4*i+4]
		img.Pixels[i] = gui.RGBAUnmultiplied(p[0], p[1], p[2], p[3])
	}
	return img
}

// wheelFromScroll turns a scroll delta in points back into wheel lines.
// Positive horizontal lines scroll left, like GLFW.
func wheelFromScroll(delta common.Vec2) (horizontal, vertical float32) {
	return -delta[0] / gui.PointsPerScrollLine, delta[1] / gui.PointsPerScrollLine
}

// wheelFromZoom turns a zoom factor back into vertical wheel lines.
func wheelFromZoom(factor float32) float32 {
	return float32(math.Log(float64(factor))) * gui.ZoomDivisor / gui.PointsPerScrollLine
}

const mouseButtons = 5

// buttonLatch keeps a button that was pressed and released within one
// frame down for that frame, so the click is not lost.
type buttonLatch struct {
	down        [mouseButtons]bool
	justPressed [mouseButtons]bool
}

func (b *buttonLatch) set(button int, pressed bool) {
	if button < 0 || button >= mouseButtons {
		return
	}
	b.down[button] = pressed
	if pressed {
		b.justPressed[button] = true
	}
}

// frame returns the state to report for this frame and clears the latch.
func (b *buttonLatch) frame() [mouseButtons]bool {
	var out [mouseButtons]bool
	for i := range out {
		out[i] = b.down[i] || b.justPressed[i]
		b.justPressed[i] = false
	}
	return out
}
