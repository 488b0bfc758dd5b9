package app

import (
	"context"
	"errors"
	"testing"

	"github.com/Faultbox/logoanim/internal/anim"
	"github.com/Faultbox/logoanim/internal/engine/renderer"
	"github.com/Faultbox/logoanim/internal/mesh"
)

type fakeHost struct {
	polls      int
	quitAfter  int // quit on this poll; 0 never quits
	presents   int
	captured   []uint64
	captureErr error
	onPresent  func()
}

func (h *fakeHost) Poll() bool {
	h.polls++
	return h.quitAfter > 0 && h.polls >= h.quitAfter
}

func (h *fakeHost) Capture(frame uint64) error {
	if h.captureErr != nil {
		return h.captureErr
	}
	h.captured = append(h.captured, frame)
	return nil
}

func (h *fakeHost) Present() {
	h.presents++
	if h.onPresent != nil {
		h.onPresent()
	}
}

func newRenderer(t *testing.T) (*renderer.Renderer, *renderer.Recorder) {
	t.Helper()
	buf, err := mesh.Logo()
	if err != nil {
		t.Fatalf("mesh.Logo() error: %v", err)
	}
	rec := &renderer.Recorder{}
	return renderer.New(rec, buf), rec
}

func TestRunMaxFrames(t *testing.T) {
	r, rec := newRenderer(t)
	host := &fakeHost{}

	l := New(Config{MaxFrames: 200}, host, r, anim.NewStepSource(0, 16))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if r.Frames() != 200 {
		t.Errorf("expected 200 frames, got %d", r.Frames())
	}
	if host.presents != 200 {
		t.Errorf("expected 200 presents, got %d", host.presents)
	}
	if len(rec.Draws()) != 200 {
		t.Errorf("expected 200 draws, got %d", len(rec.Draws()))
	}
	if r.State().Active != mesh.Secondary {
		t.Errorf("after 200 frames the secondary segment should be active, got %v", r.State().Active)
	}
}

func TestRunHostQuit(t *testing.T) {
	r, _ := newRenderer(t)
	host := &fakeHost{quitAfter: 4}

	l := New(Config{}, host, r, anim.NewStepSource(0, 16))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.Frames() != 3 {
		t.Errorf("expected 3 frames before quit, got %d", r.Frames())
	}
}

func TestRunContextCancel(t *testing.T) {
	r, _ := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	host := &fakeHost{}
	host.onPresent = func() {
		if host.presents == 5 {
			cancel()
		}
	}

	l := New(Config{}, host, r, anim.NewStepSource(0, 16))
	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", r.Frames())
	}
}

func TestRunCapture(t *testing.T) {
	r, _ := newRenderer(t)
	host := &fakeHost{}

	l := New(Config{MaxFrames: 10, CaptureFrame: 7}, host, r, anim.NewStepSource(0, 16))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(host.captured) != 1 || host.captured[0] != 7 {
		t.Errorf("expected one capture of frame 7, got %v", host.captured)
	}
}

func TestRunCaptureError(t *testing.T) {
	r, _ := newRenderer(t)
	errDisk := errors.New("disk full")
	host := &fakeHost{captureErr: errDisk}

	l := New(Config{MaxFrames: 10, CaptureFrame: 2}, host, r, anim.NewStepSource(0, 16))
	if err := l.Run(context.Background()); !errors.Is(err, errDisk) {
		t.Fatalf("expected capture error, got %v", err)
	}
}

func TestRunRenderError(t *testing.T) {
	r, rec := newRenderer(t)
	errDraw := errors.New("draw failed")
	rec.DrawErr = errDraw

	l := New(Config{MaxFrames: 10}, &fakeHost{}, r, anim.NewStepSource(0, 16))
	if err := l.Run(context.Background()); !errors.Is(err, errDraw) {
		t.Fatalf("expected draw error, got %v", err)
	}
	if r.Frames() != 0 {
		t.Errorf("no frame should count as drawn, got %d", r.Frames())
	}
}
