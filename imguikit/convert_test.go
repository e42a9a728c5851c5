package imguikit

import (
	"math"
	"testing"

	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/common/rw"
	"github.com/gorustyt/glgui/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureIDRoundTrip(t *testing.T) {
	for _, id := range []gui.TextureId{gui.ManagedId(0), gui.ManagedId(7), gui.UserId(0), gui.UserId(12345)} {
		assert.Equal(t, id, FromTextureID(TextureID(id)), id.String())
	}
	assert.NotEqual(t, TextureID(gui.ManagedId(1)), TextureID(gui.UserId(1)))
}

func TestCursorIcon(t *testing.T) {
	cases := map[int]gui.CursorIcon{
		mouseCursorNone:       gui.CursorNone,
		mouseCursorArrow:      gui.CursorArrow,
		mouseCursorTextInput:  gui.CursorText,
		mouseCursorResizeAll:  gui.CursorMove,
		mouseCursorResizeNS:   gui.CursorResizeVertical,
		mouseCursorResizeEW:   gui.CursorResizeHorizontal,
		mouseCursorResizeNESW: gui.CursorResizeNeSw,
		mouseCursorResizeNWSE: gui.CursorResizeNwSe,
		mouseCursorHand:       gui.CursorPointingHand,
		mouseCursorNotAllowed: gui.CursorNotAllowed,
		42:                    gui.CursorArrow,
	}
	for in, want := range cases {
		assert.Equal(t, want, cursorIcon(in), "imgui cursor %d", in)
	}
}

func TestDecodeVertices(t *testing.T) {
	w := rw.NewWriter()
	w.WriteFloat32s([]float32{1, 2, 0.25, 0.75})
	w.WriteUInt8s([]uint8{255, 0, 0, 255})
	w.WriteFloat32s([]float32{3, 4, 0.5, 0.5})
	w.WriteUInt8s([]uint8{255, 255, 255, 0x80})

	vertices := decodeVertices(w.Bytes(), vertexLayout{size: 20, pos: 0, uv: 8, col: 16})

	require.Len(t, vertices, 2)
	assert.Equal(t, gui.Vertex{Pos: common.Vec2{1, 2}, UV: common.Vec2{0.25, 0.75}, Color: gui.Red}, vertices[0])
	assert.Equal(t, common.Vec2{3, 4}, vertices[1].Pos)
	assert.Equal(t, gui.Color32{0x80, 0x80, 0x80, 0x80}, vertices[1].Color)
}

func TestDecodeVerticesPadded(t *testing.T) {
	w := rw.NewWriter()
	w.PadZero(4)
	w.WriteFloat32s([]float32{5, 6})
	w.PadZero(4)
	w.WriteFloat32s([]float32{1, 0})
	w.WriteUInt8s([]uint8{0, 0, 255, 255})
	w.PadZero(4)

	vertices := decodeVertices(w.Bytes(), vertexLayout{size: 36, pos: 4, uv: 16, col: 24})

	require.Len(t, vertices, 1)
	assert.Equal(t, gui.Vertex{Pos: common.Vec2{5, 6}, UV: common.Vec2{1, 0}, Color: gui.Blue}, vertices[0])
}

func TestDecodeVerticesBadLayout(t *testing.T) {
	assert.Panics(t, func() {
		decodeVertices(make([]byte, 20), vertexLayout{size: 20, pos: 0, uv: 4, col: 16})
	})
}

func TestDecodeIndices(t *testing.T) {
	w := rw.NewWriter()
	w.WriteUInt16s([]uint16{0, 1, 2, 0xFFFF})
	assert.Equal(t, []uint32{0, 1, 2, 0xFFFF}, decodeIndices(w.Bytes(), 2))

	w.Reset()
	w.WriteUInt32(70000)
	w.WriteUInt32(3)
	assert.Equal(t, []uint32{70000, 3}, decodeIndices(w.Bytes(), 4))

	assert.Panics(t, func() { decodeIndices(make([]byte, 3), 3) })
}

func TestFontImagePremultiplies(t *testing.T) {
	pixels := []byte{
		255, 255, 255, 255,
		255, 255, 255, 0,
	}
	img := fontImage(2, 1, pixels)

	assert.Equal(t, [2]int{2, 1}, img.Size())
	assert.Equal(t, []gui.Color32{gui.White, gui.Transparent}, img.Pixels)
	assert.Panics(t, func() { fontImage(2, 2, pixels) })
}

func TestWheelConversions(t *testing.T) {
	h, v := wheelFromScroll(common.Vec2{-50, 150})
	assert.InDelta(t, 1, h, 1e-6)
	assert.InDelta(t, 3, v, 1e-6)

	// A ctrl-scroll of three lines becomes Zoom(exp(150/200)).
	assert.InDelta(t, 3, wheelFromZoom(float32(math.Exp(150.0/200.0))), 1e-5)
	assert.InDelta(t, 0, wheelFromZoom(1), 1e-6)
}

func TestButtonLatch(t *testing.T) {
	var b buttonLatch

	b.set(0, true)
	b.set(0, false)
	state := b.frame()
	assert.True(t, state[0], "click inside one frame is reported")
	assert.False(t, b.frame()[0])

	b.set(1, true)
	assert.True(t, b.frame()[1])
	assert.True(t, b.frame()[1], "held button stays down")
	b.set(1, false)
	assert.False(t, b.frame()[1])

	b.set(7, true)
	assert.Equal(t, [mouseButtons]bool{}, b.frame())
}

func TestClipboard(t *testing.T) {
	c := &clipboard{}
	c.pasted = "from host"
	text, err := c.Text()
	require.NoError(t, err)
	assert.Equal(t, "from host", text)

	c.SetText("to host")
	assert.Equal(t, "to host", c.takeCopied())
	assert.Empty(t, c.takeCopied())
}
