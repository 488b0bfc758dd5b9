// Package renderer drives one draw of the animated mesh per frame.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/anim"
	"github.com/Faultbox/logoanim/internal/logger"
	"github.com/Faultbox/logoanim/internal/mesh"
	"github.com/Faultbox/logoanim/pkg/math"
)

// Graphics is the graphics API the renderer draws through. The position and
// color buffers are uploaded by the implementation before the first frame.
type Graphics interface {
	// ClearFrame clears the color and depth buffers.
	ClearFrame()
	// UploadModelMatrix sets the per-draw transform uniform.
	UploadModelMatrix(m math.Mat4) error
	// BindVertexAttributes binds the full position and color buffers.
	BindVertexAttributes() error
	// DrawTriangles draws count vertices starting at start as triangles.
	DrawTriangles(start, count int) error
}

// Frame describes what one Pump drew.
type Frame struct {
	Index    uint64
	TimeMs   int64         // milliseconds since the first frame
	State    anim.Snapshot // state used for the draw, before advancing
	Segment  mesh.Segment
	Matrix   math.Mat4
	Advanced bool
	Toggled  bool
}

// Renderer owns the animation state and draws it through Graphics.
type Renderer struct {
	gfx       Graphics
	mesh      *mesh.Buffer
	automaton *anim.Automaton
	clock     anim.Clock
	frames    uint64
	log       *zap.Logger
}

// New creates a renderer in the initial animation state.
func New(gfx Graphics, buf *mesh.Buffer) *Renderer {
	return &Renderer{
		gfx:       gfx,
		mesh:      buf,
		automaton: anim.NewAutomaton(),
		log:       logger.Named("renderer"),
	}
}

// Pump renders one frame at nowMs and then advances the animation for the
// next one. The first frame only records the clock baseline and does not
// advance. A graphics error aborts the frame without advancing.
func (r *Renderer) Pump(nowMs int64) (Frame, error) {
	_, ok := r.clock.Tick(nowMs)

	r.gfx.ClearFrame()

	st := r.automaton.Current()
	f := Frame{
		Index:   r.frames,
		TimeMs:  r.clock.Running(),
		State:   st,
		Segment: r.mesh.Segment(st.Active),
	}
	f.Matrix = anim.Compute(float64(f.TimeMs), st.Angle, st.TransformEnabled)

	if err := r.gfx.UploadModelMatrix(f.Matrix); err != nil {
		return f, fmt.Errorf("frame %d: upload model matrix: %w", f.Index, err)
	}
	if err := r.gfx.BindVertexAttributes(); err != nil {
		return f, fmt.Errorf("frame %d: bind vertex attributes: %w", f.Index, err)
	}
	if err := r.gfx.DrawTriangles(f.Segment.Start, f.Segment.Count); err != nil {
		return f, fmt.Errorf("frame %d: draw %s segment: %w", f.Index, st.Active, err)
	}
	r.frames++

	if ok {
		f.Advanced = true
		f.Toggled = r.automaton.Advance()
		if f.Toggled {
			next := r.automaton.Current()
			r.log.Debug("segment toggled",
				zap.Uint64("frame", f.Index),
				zap.Int("angle", next.Angle),
				zap.Stringer("active", next.Active),
				zap.Int("period", next.TogglePeriod),
			)
		}
	}

	return f, nil
}

// Frames returns the number of frames drawn successfully.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// State returns the animation state the next frame will draw with.
func (r *Renderer) State() anim.Snapshot {
	return r.automaton.Current()
}
