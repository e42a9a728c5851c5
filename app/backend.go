// Package app runs the per-frame loop that ties a host window, the input
// translator, a toolkit and the OpenGL painter together.
package app

import (
	"fmt"

	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
	"github.com/gorustyt/glgui/input"
	"github.com/gorustyt/glgui/render"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Host is the window and GL context the backend draws into.
type Host interface {
	// FramebufferSize is in physical pixels.
	FramebufferSize() (int, int)
	// ContentScale is the pixels per point of the window's monitor.
	ContentScale() float32
	// PollEvents returns the events received since the previous call.
	PollEvents() []input.HostEvent
	SwapBuffers()
	// Time is in seconds.
	Time() float64
}

type Option func(o *options)

type options struct {
	logger      *zap.Logger
	clearColor  [4]float32
	srgbScene   bool
	multisample bool
	inputOpts   []input.Option
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithClearColor(c [4]float32) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithSRGBScene keeps GL_FRAMEBUFFER_SRGB enabled for the whole frame, so
// scenes draw through the sRGB framebuffer too.
func WithSRGBScene(enabled bool) Option {
	return func(o *options) {
		o.srgbScene = enabled
	}
}

func WithMultisample(enabled bool) Option {
	return func(o *options) {
		o.multisample = enabled
	}
}

// WithInputOptions configures the translator, e.g. its clipboard.
func WithInputOptions(opts ...input.Option) Option {
	return func(o *options) {
		o.inputOpts = append(o.inputOpts, opts...)
	}
}

type Backend struct {
	host       Host
	gl         render.GL
	logger     *zap.Logger
	clearColor [4]float32

	ctx         *Context
	components  []UiComponent
	initialised int
	scenes      []Scene
	frames      uint64
}

func New(host Host, gl render.GL, toolkit gui.Toolkit, opts ...Option) (*Backend, error) {
	o := options{clearColor: [4]float32{0, 0, 0, 1}}
	for _, opt := range opts {
		opt(&o)
	}
	logger := common.OrNop(o.logger)

	width, height := host.FramebufferSize()
	painter, err := render.NewPainter(gl, width, height, logger.Named("painter"), render.WithSRGBScene(o.srgbScene))
	if err != nil {
		return nil, fmt.Errorf("new painter: %w", err)
	}
	if o.srgbScene {
		gl.Enable(render.FRAMEBUFFER_SRGB)
	}
	if o.multisample {
		gl.Enable(render.MULTISAMPLE)
	}

	inputOpts := append([]input.Option{input.WithLogger(logger.Named("input"))}, o.inputOpts...)
	b := &Backend{
		host:       host,
		gl:         gl,
		logger:     logger,
		clearColor: o.clearColor,
		ctx: &Context{
			Renderer: painter,
			Toolkit:  toolkit,
			Input:    input.NewTranslator(host.ContentScale(), width, height, inputOpts...),
			Timer:    NewDeltaTimer(host.Time),
		},
	}
	return b, nil
}

func (b *Backend) Context() *Context {
	return b.ctx
}

// Frames is the number of completed frames.
func (b *Backend) Frames() uint64 {
	return b.frames
}

func (b *Backend) RegisterUiComponent(c UiComponent) {
	b.components = append(b.components, c)
}

// AddScene registers a scene drawn after the clear and before the GUI, in
// registration order.
func (b *Backend) AddScene(s Scene) {
	b.scenes = append(b.scenes, s)
}

func (b *Backend) initComponents() {
	for ; b.initialised < len(b.components); b.initialised++ {
		if c := b.components[b.initialised]; c.Init != nil {
			c.Init(b.ctx)
		}
	}
}

// Frame runs one iteration of the loop.
func (b *Backend) Frame() {
	ctx := b.ctx
	b.initComponents()

	width, height := b.host.FramebufferSize()
	if scale := b.host.ContentScale(); scale != ctx.Toolkit.PixelsPerPoint() {
		ctx.Toolkit.SetPixelsPerPoint(scale)
	}
	ctx.Renderer.SetSize(width, height)
	ctx.Timer.Update()
	ctx.Input.SetTime(ctx.Timer.Elapsed())

	ctx.Toolkit.BeginFrame(ctx.Input.TakeInput())
	ctx.Input.HandleEvents(b.host.PollEvents())

	for _, c := range b.components {
		if c.Update != nil {
			c.Update(ctx)
		}
	}

	output := ctx.Toolkit.EndFrame()
	pixelsPerPoint := ctx.Toolkit.PixelsPerPoint()
	ctx.Input.HandlePlatformOutput(output.PlatformOutput, pixelsPerPoint)
	primitives := ctx.Toolkit.Tessellate(output.Shapes, pixelsPerPoint)

	c := b.clearColor
	b.gl.ClearColor(c[0], c[1], c[2], c[3])
	b.gl.Clear(render.COLOR_BUFFER_BIT)
	for _, s := range b.scenes {
		s.Draw(ctx)
	}
	ctx.Renderer.PaintAndUpdateTextures(pixelsPerPoint, primitives, &output.TexturesDelta)

	b.host.SwapBuffers()
	b.frames++
}

// ShouldStop reports a host close request or an application quit.
func (b *Backend) ShouldStop() bool {
	return b.ctx.Quit || b.ctx.Input.CloseRequested()
}

func (b *Backend) Run() {
	b.logger.Info("frame loop started", zap.Int("components", len(b.components)), zap.Int("scenes", len(b.scenes)))
	for !b.ShouldStop() {
		b.Frame()
	}
	b.logger.Info("frame loop stopped", zap.Uint64("frames", b.frames), zap.Bool("quit", b.ctx.Quit))
}

// Close releases scenes, components and the painter's GL objects. The
// host is left to its owner.
func (b *Backend) Close() error {
	var err error
	for _, s := range b.scenes {
		err = multierr.Append(err, s.Close())
	}
	for _, c := range b.components {
		if c.Close != nil {
			if cerr := c.Close(b.ctx); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("close %s: %w", c.Name, cerr))
			}
		}
	}
	b.ctx.Renderer.Close()
	b.scenes, b.components = nil, nil
	return err
}
