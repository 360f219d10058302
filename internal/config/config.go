package config

import "runtime"

// Defaults applied when a script or flag leaves a value unset
const (
	DefaultFPS    = 30
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTrack  = "main"
)

type Config struct {
	ScriptPath      string
	OutputDir       string
	FPS             int
	Width           int
	Height          int
	Preset          string
	Workers         int
	DefaultTrack    string
	MaxNestingDepth int
	Verbose         bool
}

// Default returns a config with the standard defaults filled in
func Default() *Config {
	return &Config{
		OutputDir:    "output",
		FPS:          DefaultFPS,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Workers:      runtime.NumCPU(),
		DefaultTrack: DefaultTrack,
	}
}

// PresetDimensions maps a format preset to canvas dimensions:
// 16:9 (default landscape), 9:16 (Shorts/TikTok), 4:5 (Instagram)
func PresetDimensions(preset string) (width, height int, ok bool) {
	switch preset {
	case "16:9":
		return 1280, 720, true
	case "9:16":
		return 720, 1280, true
	case "4:5":
		return 1080, 1350, true
	}
	return 0, 0, false
}

// ApplyPreset overrides width/height when the preset is recognized
func (c *Config) ApplyPreset() {
	if w, h, ok := PresetDimensions(c.Preset); ok {
		c.Width, c.Height = w, h
	}
}
