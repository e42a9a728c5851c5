package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window *WindowConfig `yaml:"window"`
	Log    *LogConfig    `yaml:"log"`
	Trace  *TraceConfig  `yaml:"trace"`
}

func (cfg *Config) Reset() {
	cfg.Window.Reset()
	cfg.Log.Reset()
	cfg.Trace.Reset()
}

func NewConfig() *Config {
	c := &Config{
		Window: &WindowConfig{},
		Log:    &LogConfig{},
		Trace:  &TraceConfig{},
	}
	c.Reset()
	return c
}

// Load reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Samples < 0 {
		return fmt.Errorf("negative msaa samples %d", cfg.Window.Samples)
	}
	if cfg.Trace.Frames < 0 {
		return fmt.Errorf("negative trace frame count %d", cfg.Trace.Frames)
	}
	return nil
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	// Samples is the MSAA sample count of the default framebuffer.
	Samples int `yaml:"samples"`
	// SRGBScene leaves GL_FRAMEBUFFER_SRGB enabled for the whole frame.
	// Only set it when the application's own draw calls output linear colour.
	SRGBScene  bool       `yaml:"srgb_scene"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

func (c *WindowConfig) Reset() {
	c.Width = 1280
	c.Height = 720
	c.Title = "glgui demo"
	c.Resizable = true
	c.VSync = true
	c.Samples = 4
	c.SRGBScene = false
	c.ClearColor = [4]float32{0, 0, 0, 1}
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
	// File enables a rotating log file when non-empty.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func (c *LogConfig) Reset() {
	c.Level = "info"
	c.Console = true
	c.File = ""
	c.MaxSizeMB = 10
	c.MaxBackups = 3
	c.MaxAgeDays = 7
	c.Compress = false
}

// TraceConfig controls GL call tracing of the first frames.
type TraceConfig struct {
	File   string `yaml:"file"`
	Frames int    `yaml:"frames"`
}

func (c *TraceConfig) Reset() {
	c.File = ""
	c.Frames = 2
}
