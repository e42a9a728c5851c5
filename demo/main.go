package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/gorustyt/glgui/app"
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/config"
	"github.com/gorustyt/glgui/demo/lib/canvas"
	"github.com/gorustyt/glgui/demo/ui"
	"github.com/gorustyt/glgui/imguikit"
	"github.com/gorustyt/glgui/input"
	"github.com/gorustyt/glgui/render"
	"github.com/gorustyt/glgui/render/gltrace"
	"github.com/gorustyt/glgui/render/opengl"
	"github.com/gorustyt/glgui/window"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type flags struct {
	configPath  string
	tracePath   string
	traceFrames int
	logLevel    string
}

func parseFlags() flags {
	var f flags
	pflag.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	pflag.StringVar(&f.tracePath, "trace", "", "write the GL calls of the first frames to this file")
	pflag.IntVar(&f.traceFrames, "trace-frames", 0, "number of frames to trace (default from config)")
	pflag.StringVar(&f.logLevel, "log-level", "", "log level override: debug, info, warn or error")
	pflag.Parse()
	return f
}

func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.tracePath != "" {
		cfg.Trace.File = f.tracePath
	}
	if f.traceFrames > 0 {
		cfg.Trace.Frames = f.traceFrames
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// syncErr drops the error zap reports when syncing a terminal.
func syncErr(err error) error {
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, fs.ErrInvalid) {
		return nil
	}
	return err
}

func run(cfg *config.Config) (err error) {
	logger, err := common.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, syncErr(logger.Sync()))
	}()

	win, err := window.New(cfg.Window, logger.Named("window"))
	if err != nil {
		return err
	}
	defer win.Close()

	functions, err := opengl.New()
	if err != nil {
		return err
	}
	logger.Info("opengl ready", zap.String("version", opengl.Version()))

	var gl render.GL = functions
	var tracer *gltrace.Recorder
	if cfg.Trace.File != "" {
		tracer = gltrace.Wrap(functions)
		gl = tracer
	}

	kit := imguikit.New(win.ContentScale(), logger.Named("imgui"))
	defer kit.Close()

	backend, err := app.New(win, gl, kit,
		app.WithLogger(logger),
		app.WithClearColor(cfg.Window.ClearColor),
		app.WithSRGBScene(cfg.Window.SRGBScene),
		app.WithMultisample(cfg.Window.Samples > 0),
		app.WithInputOptions(
			input.WithClipboard(win.Clipboard()),
			input.WithCursorSetter(win),
		),
	)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, backend.Close())
	}()

	triangle, err := canvas.NewTriangle(gl)
	if err != nil {
		return err
	}
	backend.AddScene(triangle)

	banner, err := ui.NewBanner("glgui: OpenGL 3.3 + GLFW", 28)
	if err != nil {
		return err
	}
	backend.RegisterUiComponent(ui.NewSinePlot(320, 240).Component())
	backend.RegisterUiComponent(banner.Component())
	if tracer != nil {
		backend.RegisterUiComponent(traceComponent(tracer, cfg.Trace, logger))
	}

	backend.Run()
	return nil
}

// traceComponent stops recording after the configured number of frames and
// writes the trace file, or writes it on close if the loop ended first.
func traceComponent(tracer *gltrace.Recorder, cfg *config.TraceConfig, logger *zap.Logger) app.UiComponent {
	frames := 0
	var writeErr error
	return app.UiComponent{
		Name: "gl trace",
		Update: func(ctx *app.Context) {
			if !tracer.Recording() {
				return
			}
			frames++
			if frames <= cfg.Frames {
				tracer.Mark(fmt.Sprintf("frame %d", frames))
				return
			}
			tracer.SetRecording(false)
			writeErr = writeTrace(tracer, cfg.File)
			logger.Info("gl trace written", zap.String("file", cfg.File), zap.Int("calls", len(tracer.Calls())), zap.Error(writeErr))
		},
		Close: func(*app.Context) error {
			if tracer.Recording() {
				tracer.SetRecording(false)
				return writeTrace(tracer, cfg.File)
			}
			return writeErr
		},
	}
}

func writeTrace(tracer *gltrace.Recorder, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	_, err = tracer.WriteTo(f)
	return err
}
