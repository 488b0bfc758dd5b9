package main

import (
	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/capture"
	"github.com/Faultbox/logoanim/internal/engine/device"
	"github.com/Faultbox/logoanim/internal/engine/window"
	"github.com/Faultbox/logoanim/internal/logger"
)

// sdlHost connects the frame loop to the SDL window and GL device.
type sdlHost struct {
	window      *window.Window
	device      *device.Device
	capturePath string
}

func (h *sdlHost) Poll() bool {
	ev := h.window.Poll()
	if ev.Resized {
		w, hgt := h.window.Size()
		h.device.Resize(w, hgt)
		logger.Debug("viewport resized", zap.Int("width", w), zap.Int("height", hgt))
	}
	return ev.Quit
}

func (h *sdlHost) Capture(frame uint64) error {
	pixels, w, hgt := h.device.ReadPixels()
	if err := capture.Save(h.capturePath, pixels, w, hgt); err != nil {
		return err
	}
	logger.Info("frame captured", zap.Uint64("frame", frame), zap.String("path", h.capturePath))
	return nil
}

func (h *sdlHost) Present() {
	h.window.SwapBuffers()
}
