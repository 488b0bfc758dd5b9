// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all program settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Animation AnimationConfig `yaml:"animation"`
	Capture   CaptureConfig   `yaml:"capture"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AnimationConfig controls the frame loop.
type AnimationConfig struct {
	MaxFrames  uint64 `yaml:"max_frames"`   // 0 runs until the window closes
	LogEveryMs int    `yaml:"log_every_ms"` // fps log interval
}

// CaptureConfig selects a frame to save to disk.
type CaptureConfig struct {
	Frame uint64 `yaml:"frame"` // 0 disables capture
	Path  string `yaml:"path"`  // .png or .bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Animation: AnimationConfig{
			MaxFrames:  0,
			LogEveryMs: 1000,
		},
		Capture: CaptureConfig{
			Frame: 0,
			Path:  "frame.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the program cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Animation.LogEveryMs < 0 {
		return fmt.Errorf("animation: negative log_every_ms %d", c.Animation.LogEveryMs)
	}
	if c.Capture.Frame > 0 {
		switch strings.ToLower(filepath.Ext(c.Capture.Path)) {
		case ".png", ".bmp":
		default:
			return fmt.Errorf("capture: unsupported file type %q", c.Capture.Path)
		}
	}
	return nil
}
