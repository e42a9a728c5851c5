// Package imguikit drives Dear ImGui through imgui-go as a gui.Toolkit.
package imguikit

import (
	"math"
	"unsafe"

	"github.com/AllenDang/imgui-go"
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
	"go.uber.org/zap"
)

// FontTexture is where the font atlas lives in the painter.
var FontTexture = gui.ManagedId(0)

// Key slots imgui reads modifier state from. Real keys use their gui.Key
// value, which stays far below these.
const (
	slotCtrl = 500 + iota
	slotShift
	slotAlt
	slotSuper
)

var keyMap = map[int]gui.Key{
	imgui.KeyTab:        gui.KeyTab,
	imgui.KeyLeftArrow:  gui.KeyArrowLeft,
	imgui.KeyRightArrow: gui.KeyArrowRight,
	imgui.KeyUpArrow:    gui.KeyArrowUp,
	imgui.KeyDownArrow:  gui.KeyArrowDown,
	imgui.KeyPageUp:     gui.KeyPageUp,
	imgui.KeyPageDown:   gui.KeyPageDown,
	imgui.KeyHome:       gui.KeyHome,
	imgui.KeyEnd:        gui.KeyEnd,
	imgui.KeyInsert:     gui.KeyInsert,
	imgui.KeyDelete:     gui.KeyDelete,
	imgui.KeyBackspace:  gui.KeyBackspace,
	imgui.KeySpace:      gui.KeySpace,
	imgui.KeyEnter:      gui.KeyEnter,
	imgui.KeyEscape:     gui.KeyEscape,
	imgui.KeyA:          gui.KeyA,
	imgui.KeyC:          gui.KeyC,
	imgui.KeyV:          gui.KeyV,
	imgui.KeyX:          gui.KeyX,
	imgui.KeyY:          gui.KeyY,
	imgui.KeyZ:          gui.KeyZ,
}

// Kit owns an imgui context. Widgets are declared with the imgui package
// between BeginFrame and EndFrame.
type Kit struct {
	context        *imgui.Context
	io             imgui.IO
	logger         *zap.Logger
	pixelsPerPoint float32

	clipboard *clipboard
	buttons   buttonLatch
	lastTime  float64
	fontSent  bool
	layout    vertexLayout
	indexSize int
}

var _ gui.Toolkit = (*Kit)(nil)

func New(pixelsPerPoint float32, logger *zap.Logger) *Kit {
	common.Assertf(pixelsPerPoint > 0, "pixels per point must be positive, got %v", pixelsPerPoint)
	k := &Kit{
		context:        imgui.CreateContext(nil),
		io:             imgui.CurrentIO(),
		logger:         common.OrNop(logger),
		pixelsPerPoint: pixelsPerPoint,
		clipboard:      &clipboard{},
		lastTime:       -1,
	}
	k.io.SetIniFilename("")
	k.io.SetClipboard(k.clipboard)
	for imguiKey, key := range keyMap {
		k.io.KeyMap(imguiKey, int(key))
	}
	k.layout.size, k.layout.pos, k.layout.uv, k.layout.col = imgui.VertexBufferLayout()
	k.indexSize = imgui.IndexBufferLayout()
	k.io.Fonts().SetTextureID(TextureID(FontTexture))
	return k
}

func (k *Kit) PixelsPerPoint() float32 {
	return k.pixelsPerPoint
}

func (k *Kit) SetPixelsPerPoint(ppp float32) {
	common.Assertf(ppp > 0, "pixels per point must be positive, got %v", ppp)
	k.pixelsPerPoint = ppp
}

func (k *Kit) BeginFrame(input gui.RawInput) {
	io := k.io
	if r := input.ScreenRect; r != nil {
		io.SetDisplaySize(imgui.Vec2{X: r.Width(), Y: r.Height()})
	}
	dt := float32(1.0 / 60)
	if k.lastTime >= 0 && input.Time > k.lastTime {
		dt = float32(input.Time - k.lastTime)
	}
	k.lastTime = input.Time
	io.SetDeltaTime(dt)

	for _, event := range input.Events {
		k.handleEvent(event)
	}
	for i, down := range k.buttons.frame() {
		io.SetMouseButtonDown(i, down)
	}
	imgui.NewFrame()
}

func (k *Kit) setModifiers(m gui.Modifiers) {
	press := func(slot int, down bool) {
		if down {
			k.io.KeyPress(slot)
		} else {
			k.io.KeyRelease(slot)
		}
	}
	press(slotCtrl, m.Ctrl)
	press(slotShift, m.Shift)
	press(slotAlt, m.Alt)
	press(slotSuper, m.MacCmd)
	k.io.KeyCtrl(slotCtrl, slotCtrl)
	k.io.KeyShift(slotShift, slotShift)
	k.io.KeyAlt(slotAlt, slotAlt)
	k.io.KeySuper(slotSuper, slotSuper)
}

func (k *Kit) handleEvent(event gui.Event) {
	io := k.io
	switch e := event.(type) {
	case gui.PointerMovedEvent:
		io.SetMousePosition(imgui.Vec2{X: e.Pos[0], Y: e.Pos[1]})
	case gui.PointerGoneEvent:
		io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	case gui.PointerButtonEvent:
		k.setModifiers(e.Modifiers)
		k.buttons.set(int(e.Button), e.Pressed)
	case gui.ScrollEvent:
		io.AddMouseWheelDelta(wheelFromScroll(e.Delta))
	case gui.ZoomEvent:
		io.AddMouseWheelDelta(0, wheelFromZoom(e.Factor))
	case gui.TextEvent:
		io.AddInputCharacters(e.Text)
	case gui.KeyEvent:
		k.setModifiers(e.Modifiers)
		if e.Pressed {
			io.KeyPress(int(e.Key))
		} else {
			io.KeyRelease(int(e.Key))
		}
	case gui.PasteEvent:
		k.clipboard.pasted = e.Text
	}
}

func (k *Kit) EndFrame() gui.FullOutput {
	imgui.Render()
	out := gui.FullOutput{
		Shapes: imgui.RenderedDrawData(),
		PlatformOutput: gui.PlatformOutput{
			CursorIcon: cursorIcon(imgui.MouseCursor()),
			CopiedText: k.clipboard.takeCopied(),
		},
	}
	if !k.fontSent {
		out.TexturesDelta.Set = append(out.TexturesDelta.Set, gui.TextureSet{
			Id:    FontTexture,
			Delta: gui.FullDelta(k.fontAtlas(), gui.LinearOptions),
		})
		k.fontSent = true
	}
	return out
}

func (k *Kit) fontAtlas() *gui.ColorImage {
	image := k.io.Fonts().TextureDataRGBA32()
	pixels := unsafe.Slice((*byte)(image.Pixels), 4*image.Width*image.Height)
	k.logger.Debug("font atlas built", zap.Int("width", image.Width), zap.Int("height", image.Height))
	return fontImage(image.Width, image.Height, pixels)
}

// Tessellate converts the draw data from EndFrame. imgui already emits
// triangles, so this only re-encodes its buffers.
func (k *Kit) Tessellate(shapes any, pixelsPerPoint float32) []gui.ClippedPrimitive {
	data, ok := shapes.(imgui.DrawData)
	if !ok || !data.Valid() {
		return nil
	}
	var out []gui.ClippedPrimitive
	for _, list := range data.CommandLists() {
		vtx, vtxSize := list.VertexBuffer()
		idx, idxSize := list.IndexBuffer()
		vertices := decodeVertices(unsafe.Slice((*byte)(vtx), vtxSize), k.layout)
		indices := decodeIndices(unsafe.Slice((*byte)(idx), idxSize), k.indexSize)

		offset := 0
		for _, cmd := range list.Commands() {
			count := cmd.ElementCount()
			r := cmd.ClipRect()
			clip := common.RectFromMinMax(r.X, r.Y, r.Z, r.W)
			if cmd.HasUserCallback() {
				list, cmd := list, cmd
				out = append(out, gui.ClippedPrimitive{
					ClipRect:  clip,
					Primitive: &gui.Callback{Rect: clip, Func: func() { cmd.CallUserCallback(list) }},
				})
			} else {
				out = append(out, gui.ClippedPrimitive{
					ClipRect: clip,
					Primitive: &gui.Mesh{
						TextureId: FromTextureID(cmd.TextureID()),
						Vertices:  vertices,
						Indices:   indices[offset : offset+count],
					},
				})
			}
			offset += count
		}
	}
	return out
}

func (k *Kit) Close() {
	k.context.Destroy()
}
