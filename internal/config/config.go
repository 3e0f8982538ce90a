package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 60
	DefaultScale  = 3
	DefaultTheme  = "night"
	DefaultWidth  = 640
	DefaultHeight = 360
	DefaultFrames = 300
	DefaultOutput = "fireworks.gif"
	DefaultFormat = "gif"
	DefaultLevel  = "info"
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds host settings. The show's physics are fixed and not
// configurable here.
type Config struct {
	FPS    int          `yaml:"fps"`
	Seed   int64        `yaml:"seed"`
	Scale  int          `yaml:"scale"`
	Theme  string       `yaml:"theme"`
	Panel  bool         `yaml:"panel"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type RenderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
	Warmup int    `yaml:"warmup"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:   DefaultFPS,
		Scale: DefaultScale,
		Theme: DefaultTheme,
		Panel: true,
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Frames: DefaultFrames,
			Output: DefaultOutput,
			Format: DefaultFormat,
		},
		Log: LogConfig{
			Level: DefaultLevel,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalid, c.FPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalid, c.Scale)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size must be positive, got %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	}
	if c.Render.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalid, c.Render.Frames)
	}
	if c.Render.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrInvalid, c.Render.Warmup)
	}
	switch c.Render.Format {
	case "gif", "svg":
	default:
		return fmt.Errorf("%w: format must be gif or svg, got %q", ErrInvalid, c.Render.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
