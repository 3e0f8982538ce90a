package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]*Config{
	"preview": {
		FPS: 30, Scale: 2, Theme: "night", Panel: true,
		Render: RenderConfig{Width: 320, Height: 180, Frames: 180, Warmup: 60, Output: "preview.gif", Format: "gif"},
		Log:    LogConfig{Level: "info"},
	},
	"hd": {
		FPS: 60, Scale: 4, Theme: "night", Panel: true,
		Render: RenderConfig{Width: 1280, Height: 720, Frames: 600, Warmup: 120, Output: "fireworks-hd.gif", Format: "gif"},
		Log:    LogConfig{Level: "info"},
	},
	"poster": {
		FPS: 60, Scale: 3, Theme: "ember", Panel: false,
		Render: RenderConfig{Width: 800, Height: 600, Frames: 1, Warmup: 400, Output: "poster.svg", Format: "svg"},
		Log:    LogConfig{Level: "info"},
	},
	"calm": {
		FPS: 24, Scale: 3, Theme: "frost", Panel: false,
		Render: RenderConfig{Width: 480, Height: 270, Frames: 240, Warmup: 0, Output: "calm.gif", Format: "gif"},
		Log:    LogConfig{Level: "warn"},
	},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
