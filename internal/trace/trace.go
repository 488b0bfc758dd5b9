// Package trace replays the animation headlessly on a synthetic clock and
// reports what each frame draws.
package trace

import (
	"fmt"
	"io"
	gomath "math"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/logoanim/internal/anim"
	"github.com/Faultbox/logoanim/internal/engine/renderer"
	"github.com/Faultbox/logoanim/internal/mesh"
)

// Record is one replayed frame.
type Record struct {
	Frame       uint64  `yaml:"frame"`
	TimeMs      int64   `yaml:"time_ms"`
	Angle       int     `yaml:"angle"`
	Segment     string  `yaml:"segment"`
	Start       int     `yaml:"start"`
	Count       int     `yaml:"count"`
	Transform   bool    `yaml:"transform"`
	Scale       float32 `yaml:"scale,omitempty"`
	RotationDeg float64 `yaml:"rotation_deg,omitempty"`
	Translate   Offset  `yaml:"translate,flow,omitempty"`
	Toggled     bool    `yaml:"toggled,omitempty"`
}

// Offset is the in-plane translation of a frame.
type Offset struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Options configures a replay.
type Options struct {
	Frames  int
	StartMs int64
	StepMs  int64
	// OnlyToggles keeps just the frames that switched segments.
	OnlyToggles bool
}

// Run replays opts.Frames frames with a Recorder in place of a GPU.
func Run(buf *mesh.Buffer, opts Options) ([]Record, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("trace: negative frame count %d", opts.Frames)
	}
	if opts.StepMs < 0 {
		return nil, fmt.Errorf("trace: negative step %dms", opts.StepMs)
	}

	rec := &renderer.Recorder{}
	r := renderer.New(rec, buf)
	src := anim.NewStepSource(opts.StartMs, opts.StepMs)

	var records []Record
	for i := 0; i < opts.Frames; i++ {
		f, err := r.Pump(src.Now())
		if err != nil {
			return records, err
		}
		rec.Reset()
		if opts.OnlyToggles && !f.Toggled {
			continue
		}
		records = append(records, recordOf(f))
	}
	return records, nil
}

func recordOf(f renderer.Frame) Record {
	rec := Record{
		Frame:     f.Index,
		TimeMs:    f.TimeMs,
		Angle:     f.State.Angle,
		Segment:   f.State.Active.String(),
		Start:     f.Segment.Start,
		Count:     f.Segment.Count,
		Transform: f.State.TransformEnabled,
		Toggled:   f.Toggled,
	}
	if f.State.TransformEnabled {
		p := anim.ParamsAt(float64(f.TimeMs), f.State.Angle)
		rec.Scale = p.Scale
		rec.RotationDeg = gomath.Mod(float64(p.Radians)*180/gomath.Pi, anim.FullTurn)
		rec.Translate = Offset{X: p.Translate.X, Y: p.Translate.Y}
	}
	return rec
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("trace: encoding yaml: %w", err)
	}
	return enc.Close()
}

// ReadYAML parses records written by WriteYAML.
func ReadYAML(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("trace: decoding yaml: %w", err)
	}
	return records, nil
}

// Diff returns the index of the first record that differs between a and b,
// or -1 if they are identical.
func Diff(a, b []Record) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
