// Package app runs the frame loop: one renderer pump per host frame until
// the host quits, the context is cancelled or the frame limit is reached.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/anim"
	"github.com/Faultbox/logoanim/internal/engine/renderer"
	"github.com/Faultbox/logoanim/internal/logger"
)

// Host is the windowing side of the loop.
type Host interface {
	// Poll processes pending events and reports whether to stop.
	Poll() (quit bool)
	// Capture saves the frame just drawn, before it is presented.
	Capture(frame uint64) error
	// Present shows the drawn frame.
	Present()
}

// Config holds loop settings.
type Config struct {
	MaxFrames    uint64        // 0 means no limit
	CaptureFrame uint64        // 0 disables capture
	LogEvery     time.Duration // 0 disables fps logging
}

// Loop pumps a renderer once per host frame.
type Loop struct {
	config   Config
	host     Host
	renderer *renderer.Renderer
	source   anim.Source
	log      *zap.Logger
}

// New creates a loop.
func New(cfg Config, host Host, r *renderer.Renderer, src anim.Source) *Loop {
	return &Loop{
		config:   cfg,
		host:     host,
		renderer: r,
		source:   src,
		log:      logger.Named("loop"),
	}
}

// Run pumps frames until the host quits, ctx is done or MaxFrames frames
// have been drawn. A cancelled context is returned as its error.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("starting frame loop",
		zap.Uint64("max_frames", l.config.MaxFrames),
		zap.Uint64("capture_frame", l.config.CaptureFrame),
	)

	fpsTimer := time.Now()
	fpsFrames := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.host.Poll() {
			l.log.Info("host requested quit", zap.Uint64("frames", l.renderer.Frames()))
			return nil
		}

		f, err := l.renderer.Pump(l.source.Now())
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if l.config.CaptureFrame > 0 && f.Index == l.config.CaptureFrame {
			if err := l.host.Capture(f.Index); err != nil {
				return fmt.Errorf("capture frame %d: %w", f.Index, err)
			}
		}

		l.host.Present()

		fpsFrames++
		if l.config.LogEvery > 0 && time.Since(fpsTimer) >= l.config.LogEvery {
			st := l.renderer.State()
			l.log.Debug("fps",
				zap.Float64("fps", float64(fpsFrames)/time.Since(fpsTimer).Seconds()),
				zap.Int("angle", st.Angle),
				zap.Stringer("active", st.Active),
			)
			fpsFrames = 0
			fpsTimer = time.Now()
		}

		if l.config.MaxFrames > 0 && l.renderer.Frames() >= l.config.MaxFrames {
			l.log.Info("frame limit reached", zap.Uint64("frames", l.renderer.Frames()))
			return nil
		}
	}
}
