package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagFrames       = flag.Uint64("frames", 0, "Stop after this many frames")
	flagCaptureFrame = flag.Uint64("capture-frame", 0, "Save this frame to the capture path")
	flagCapturePath  = flag.String("capture-path", "", "Capture file (.png or .bmp)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFrames > 0 {
		cfg.Animation.MaxFrames = *flagFrames
	}
	if *flagCaptureFrame > 0 {
		cfg.Capture.Frame = *flagCaptureFrame
	}
	if *flagCapturePath != "" {
		cfg.Capture.Path = *flagCapturePath
	}
}
