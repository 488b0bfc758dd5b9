// Package main is the entry point for the windowed logo animation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/anim"
	"github.com/Faultbox/logoanim/internal/app"
	"github.com/Faultbox/logoanim/internal/config"
	"github.com/Faultbox/logoanim/internal/engine/device"
	"github.com/Faultbox/logoanim/internal/engine/renderer"
	"github.com/Faultbox/logoanim/internal/engine/window"
	"github.com/Faultbox/logoanim/internal/logger"
	"github.com/Faultbox/logoanim/internal/mesh"
)

const windowTitle = "Logo Animation"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== logoanim ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("animation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	buf, err := mesh.Logo()
	if err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Device must be created after the GL context.
	width, height := win.Size()
	dev, err := device.New(device.Config{Width: width, Height: height}, buf)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	defer dev.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := app.New(
		app.Config{
			MaxFrames:    cfg.Animation.MaxFrames,
			CaptureFrame: cfg.Capture.Frame,
			LogEvery:     time.Duration(cfg.Animation.LogEveryMs) * time.Millisecond,
		},
		&sdlHost{window: win, device: dev, capturePath: cfg.Capture.Path},
		renderer.New(dev, buf),
		anim.NewMonotonicSource(),
	)

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
