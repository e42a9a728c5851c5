package app_test

import (
	"errors"
	"testing"

	"github.com/gorustyt/glgui/app"
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
	"github.com/gorustyt/glgui/input"
	"github.com/gorustyt/glgui/render"
	"github.com/gorustyt/glgui/render/gltrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type journal struct {
	steps []string
}

func (j *journal) add(step string) {
	j.steps = append(j.steps, step)
}

type fakeHost struct {
	log           *journal
	width, height int
	scale         float32
	now           float64
	pending       [][]input.HostEvent
	swaps         int
}

func (h *fakeHost) FramebufferSize() (int, int) {
	h.log.add("size")
	return h.width, h.height
}

func (h *fakeHost) ContentScale() float32 { return h.scale }

func (h *fakeHost) PollEvents() []input.HostEvent {
	h.log.add("poll")
	if len(h.pending) == 0 {
		return nil
	}
	events := h.pending[0]
	h.pending = h.pending[1:]
	return events
}

func (h *fakeHost) SwapBuffers() {
	h.log.add("swap")
	h.swaps++
}

func (h *fakeHost) Time() float64 {
	h.now += 0.5
	return h.now
}

type fakeToolkit struct {
	log        *journal
	inputs     []gui.RawInput
	outputs    []gui.FullOutput
	primitives []gui.ClippedPrimitive
	ppp        []float32
	scale      float32
	scaleSets  []float32
	// endScale, when set, is adopted during EndFrame as a toolkit zoom would.
	endScale float32
}

func (k *fakeToolkit) BeginFrame(in gui.RawInput) {
	k.log.add("begin")
	k.inputs = append(k.inputs, in)
}

func (k *fakeToolkit) EndFrame() gui.FullOutput {
	k.log.add("end")
	if k.endScale != 0 {
		k.scale = k.endScale
	}
	if len(k.outputs) == 0 {
		return gui.FullOutput{}
	}
	out := k.outputs[0]
	k.outputs = k.outputs[1:]
	return out
}

func (k *fakeToolkit) Tessellate(shapes any, pixelsPerPoint float32) []gui.ClippedPrimitive {
	k.log.add("tessellate")
	k.ppp = append(k.ppp, pixelsPerPoint)
	return k.primitives
}

func (k *fakeToolkit) PixelsPerPoint() float32 { return k.scale }

func (k *fakeToolkit) SetPixelsPerPoint(ppp float32) {
	k.scale = ppp
	k.scaleSets = append(k.scaleSets, ppp)
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) Text() (string, error) { return c.text, nil }
func (c *fakeClipboard) SetText(s string) error {
	c.text = s
	return nil
}

type markScene struct {
	rec    *gltrace.Recorder
	log    *journal
	err    error
	closed bool
}

func (s *markScene) Draw(ctx *app.Context) {
	s.log.add("scene")
	s.rec.Mark("scene")
}

func (s *markScene) Close() error {
	s.closed = true
	return s.err
}

type fixture struct {
	log     *journal
	host    *fakeHost
	toolkit *fakeToolkit
	rec     *gltrace.Recorder
	clip    *fakeClipboard
	backend *app.Backend
}

func newFixture(t *testing.T, opts ...app.Option) *fixture {
	t.Helper()
	f := &fixture{log: &journal{}, rec: gltrace.New(), clip: &fakeClipboard{}}
	f.host = &fakeHost{log: f.log, width: 800, height: 600, scale: 2}
	f.toolkit = &fakeToolkit{log: f.log, scale: 1}
	opts = append(opts, app.WithInputOptions(input.WithClipboard(f.clip)))
	b, err := app.New(f.host, f.rec, f.toolkit, opts...)
	require.NoError(t, err)
	f.backend = b
	f.log.steps = nil
	f.rec.Reset()
	return f
}

func indexOf(rec *gltrace.Recorder, name string) int {
	for i, c := range rec.Calls() {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func TestFrameOrder(t *testing.T) {
	f := newFixture(t)
	f.backend.AddScene(&markScene{rec: f.rec, log: f.log})
	f.backend.RegisterUiComponent(app.UiComponent{
		Name:   "probe",
		Init:   func(*app.Context) { f.log.add("init") },
		Update: func(*app.Context) { f.log.add("update") },
	})

	f.backend.Frame()

	assert.Equal(t, []string{"init", "size", "begin", "poll", "update", "end", "tessellate", "scene", "swap"}, f.log.steps)
	assert.Less(t, indexOf(f.rec, "Clear"), indexOf(f.rec, "scene"))
	assert.Less(t, indexOf(f.rec, "scene"), indexOf(f.rec, "UseProgram"))
	assert.Equal(t, []float32{2}, f.toolkit.ppp)
	assert.EqualValues(t, 1, f.backend.Frames())
}

func TestToolkitScaleFollowsHost(t *testing.T) {
	f := newFixture(t)

	f.backend.Frame()
	f.backend.Frame()
	assert.Equal(t, []float32{2}, f.toolkit.scaleSets)

	f.host.scale = 1.5
	f.backend.Frame()
	assert.Equal(t, []float32{2, 1.5}, f.toolkit.scaleSets)
	assert.Equal(t, []float32{2, 2, 1.5}, f.toolkit.ppp)
	assert.Equal(t, float32(1.5), f.backend.Context().Input.PixelsPerPoint())
}

func TestToolkitScaleUsedForOutput(t *testing.T) {
	f := newFixture(t)
	f.toolkit.endScale = 3

	f.backend.Frame()

	assert.Equal(t, []float32{3}, f.toolkit.ppp)
	assert.Equal(t, float32(3), f.backend.Context().Input.PixelsPerPoint())
}

func TestInitRunsOnce(t *testing.T) {
	f := newFixture(t)
	inits := map[string]int{}
	component := func(name string) app.UiComponent {
		return app.UiComponent{Name: name, Init: func(*app.Context) { inits[name]++ }}
	}
	f.backend.RegisterUiComponent(component("a"))
	f.backend.Frame()
	f.backend.RegisterUiComponent(component("b"))
	f.backend.Frame()
	f.backend.Frame()

	assert.Equal(t, map[string]int{"a": 1, "b": 1}, inits)
}

func TestEventsReachNextFrame(t *testing.T) {
	f := newFixture(t)
	f.host.pending = [][]input.HostEvent{{input.CursorPosEvent{X: 100, Y: 50}}}

	f.backend.Frame()
	f.backend.Frame()

	require.Len(t, f.toolkit.inputs, 2)
	assert.Empty(t, f.toolkit.inputs[0].Events)
	assert.Equal(t, []gui.Event{gui.PointerMovedEvent{Pos: common.Vec2{50, 25}}}, f.toolkit.inputs[1].Events)
	require.NotNil(t, f.toolkit.inputs[1].ScreenRect)
	assert.Equal(t, common.Vec2{400, 300}, f.toolkit.inputs[1].ScreenRect.Size())
}

func TestElapsedTime(t *testing.T) {
	f := newFixture(t)
	f.backend.Frame()
	f.backend.Frame()

	assert.InDelta(t, 0.5, f.toolkit.inputs[0].Time, 1e-9)
	assert.InDelta(t, 1.0, f.toolkit.inputs[1].Time, 1e-9)
	assert.InDelta(t, 0.5, f.backend.Context().Timer.Dt(), 1e-9)
}

func TestPlatformOutputApplied(t *testing.T) {
	f := newFixture(t)
	f.toolkit.outputs = []gui.FullOutput{{PlatformOutput: gui.PlatformOutput{CopiedText: "copied"}}}

	f.backend.Frame()

	assert.Equal(t, "copied", f.clip.text)
}

func TestTexturesDeltaPainted(t *testing.T) {
	f := newFixture(t)
	font := gui.NewColorImage(4, 4, gui.White)
	f.toolkit.outputs = []gui.FullOutput{{
		TexturesDelta: gui.TexturesDelta{Set: []gui.TextureSet{{Id: gui.ManagedId(0), Delta: gui.FullDelta(font, gui.LinearOptions)}}},
	}}
	mesh := &gui.Mesh{TextureId: gui.ManagedId(0)}
	mesh.AddRectWithUV(common.RectFromMinMax(0, 0, 10, 10), common.RectFromMinMax(0, 0, 1, 1), gui.White)
	f.toolkit.primitives = []gui.ClippedPrimitive{{ClipRect: common.RectFromMinMax(0, 0, 400, 300), Primitive: mesh}}

	f.backend.Frame()

	tex, ok := f.backend.Context().Renderer.Textures().Get(gui.ManagedId(0))
	require.True(t, ok)
	assert.True(t, tex.Realised())
	assert.Equal(t, 1, f.rec.Count("DrawElements"))
	assert.Less(t, indexOf(f.rec, "TexImage2D"), indexOf(f.rec, "DrawElements"))
}

func TestRunStopsOnQuit(t *testing.T) {
	f := newFixture(t)
	updates := 0
	f.backend.RegisterUiComponent(app.UiComponent{Update: func(ctx *app.Context) {
		updates++
		if updates == 3 {
			ctx.Quit = true
		}
	}})

	f.backend.Run()

	assert.Equal(t, 3, updates)
	assert.Equal(t, 3, f.host.swaps)
}

func TestRunStopsOnClose(t *testing.T) {
	f := newFixture(t)
	f.host.pending = [][]input.HostEvent{nil, {input.CloseEvent{}}}

	f.backend.Run()

	assert.EqualValues(t, 2, f.backend.Frames())
}

func TestSRGBSceneOption(t *testing.T) {
	f := newFixture(t, app.WithSRGBScene(true), app.WithMultisample(true))
	assert.True(t, f.rec.IsEnabled(render.FRAMEBUFFER_SRGB))
	assert.True(t, f.rec.IsEnabled(render.MULTISAMPLE))

	f.backend.Frame()
	assert.True(t, f.rec.IsEnabled(render.FRAMEBUFFER_SRGB))

	plain := newFixture(t)
	plain.backend.Frame()
	assert.False(t, plain.rec.IsEnabled(render.FRAMEBUFFER_SRGB))
}

func TestClearColor(t *testing.T) {
	f := newFixture(t, app.WithClearColor([4]float32{0.1, 0.2, 0.3, 1}))
	f.backend.Frame()

	calls := f.rec.Named("ClearColor")
	require.Len(t, calls, 1)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 1}, calls[0].Floats)
}

func TestCloseAggregatesErrors(t *testing.T) {
	f := newFixture(t)
	a := &markScene{rec: f.rec, log: f.log, err: errors.New("scene a")}
	b := &markScene{rec: f.rec, log: f.log}
	f.backend.AddScene(a)
	f.backend.AddScene(b)
	f.backend.RegisterUiComponent(app.UiComponent{
		Name:  "editor",
		Close: func(*app.Context) error { return errors.New("unsaved") },
	})
	f.backend.Frame()

	err := f.backend.Close()

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorContains(t, err, "close editor: unsaved")
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Zero(t, f.rec.LiveTextures())
}

func TestDeltaTimer(t *testing.T) {
	now := 10.0
	timer := app.NewDeltaTimer(func() float64 { return now })

	now = 10.25
	timer.Update()
	assert.InDelta(t, 0.25, timer.Dt(), 1e-9)
	assert.InDelta(t, 0.25, timer.Elapsed(), 1e-9)

	now = 11
	timer.Update()
	assert.InDelta(t, 0.75, timer.Dt(), 1e-9)
	assert.InDelta(t, 1, timer.Elapsed(), 1e-9)
}
