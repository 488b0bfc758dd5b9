package renderer

import "github.com/Faultbox/logoanim/pkg/math"

// Op names a recorded Graphics call.
type Op string

const (
	OpClear  Op = "clear"
	OpUpload Op = "upload"
	OpBind   Op = "bind"
	OpDraw   Op = "draw"
)

// Call is one recorded Graphics call.
type Call struct {
	Op     Op
	Matrix math.Mat4 // OpUpload only
	Start  int       // OpDraw only
	Count  int       // OpDraw only
}

// Recorder is a Graphics that records calls instead of drawing. Setting one
// of the Err fields makes the matching call fail.
type Recorder struct {
	Calls []Call

	UploadErr error
	BindErr   error
	DrawErr   error
}

// ClearFrame implements Graphics.
func (r *Recorder) ClearFrame() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

// UploadModelMatrix implements Graphics.
func (r *Recorder) UploadModelMatrix(m math.Mat4) error {
	if r.UploadErr != nil {
		return r.UploadErr
	}
	r.Calls = append(r.Calls, Call{Op: OpUpload, Matrix: m})
	return nil
}

// BindVertexAttributes implements Graphics.
func (r *Recorder) BindVertexAttributes() error {
	if r.BindErr != nil {
		return r.BindErr
	}
	r.Calls = append(r.Calls, Call{Op: OpBind})
	return nil
}

// DrawTriangles implements Graphics.
func (r *Recorder) DrawTriangles(start, count int) error {
	if r.DrawErr != nil {
		return r.DrawErr
	}
	r.Calls = append(r.Calls, Call{Op: OpDraw, Start: start, Count: count})
	return nil
}

// Draws returns only the draw calls.
func (r *Recorder) Draws() []Call {
	var draws []Call
	for _, c := range r.Calls {
		if c.Op == OpDraw {
			draws = append(draws, c)
		}
	}
	return draws
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
