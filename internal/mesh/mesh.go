// Package mesh holds the immutable vertex data and the two named ranges
// drawn from it.
package mesh

import "fmt"

// Components per vertex attribute.
const (
	PositionSize = 3
	ColorSize    = 4
)

// Segment is a contiguous range of vertices drawn as one batch.
type Segment struct {
	Start int
	Count int
}

// End returns the index one past the last vertex of the segment.
func (s Segment) End() int {
	return s.Start + s.Count
}

// SegmentName identifies one of the two fixed segments.
type SegmentName int

const (
	Primary SegmentName = iota
	Secondary
)

// String returns the segment name.
func (n SegmentName) String() string {
	switch n {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("segment(%d)", int(n))
	}
}

// Other returns the segment that is not n.
func (n SegmentName) Other() SegmentName {
	if n == Primary {
		return Secondary
	}
	return Primary
}

// Fixed segment layout of the shared buffer.
var (
	PrimarySegment   = Segment{Start: 0, Count: 66}
	SecondarySegment = Segment{Start: 66, Count: 18}
)

// Lookup returns the range for a segment name.
func Lookup(n SegmentName) Segment {
	if n == Secondary {
		return SecondarySegment
	}
	return PrimarySegment
}

// DataShapeError reports vertex data that does not match the declared layout.
type DataShapeError struct {
	Attribute string // "positions", "colors" or the segment name
	Want      int
	Got       int
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("mesh: %s: want %d, got %d", e.Attribute, e.Want, e.Got)
}

// Buffer is the validated vertex data shared by both segments.
type Buffer struct {
	positions   []float32
	colors      []float32
	vertexCount int
}

// Build validates and copies the vertex data. Every vertex needs PositionSize
// position floats and ColorSize color floats, and both fixed segments must
// fit inside vertexCount.
func Build(positions, colors []float32, vertexCount int) (*Buffer, error) {
	if vertexCount <= 0 {
		return nil, &DataShapeError{Attribute: "vertex count", Want: PrimarySegment.Count + SecondarySegment.Count, Got: vertexCount}
	}
	if len(positions) != vertexCount*PositionSize {
		return nil, &DataShapeError{Attribute: "positions", Want: vertexCount * PositionSize, Got: len(positions)}
	}
	if len(colors) != vertexCount*ColorSize {
		return nil, &DataShapeError{Attribute: "colors", Want: vertexCount * ColorSize, Got: len(colors)}
	}
	for _, n := range []SegmentName{Primary, Secondary} {
		if end := Lookup(n).End(); end > vertexCount {
			return nil, &DataShapeError{Attribute: n.String() + " segment end", Want: vertexCount, Got: end}
		}
	}

	return &Buffer{
		positions:   append([]float32(nil), positions...),
		colors:      append([]float32(nil), colors...),
		vertexCount: vertexCount,
	}, nil
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return b.vertexCount
}

// Segment returns the range for a segment name.
func (b *Buffer) Segment(n SegmentName) Segment {
	return Lookup(n)
}

// Positions returns a copy of the position data.
func (b *Buffer) Positions() []float32 {
	return append([]float32(nil), b.positions...)
}

// Colors returns a copy of the color data.
func (b *Buffer) Colors() []float32 {
	return append([]float32(nil), b.colors...)
}

// Vertex returns the position and color of vertex i.
func (b *Buffer) Vertex(i int) (pos [PositionSize]float32, color [ColorSize]float32) {
	copy(pos[:], b.positions[i*PositionSize:])
	copy(color[:], b.colors[i*ColorSize:])
	return pos, color
}
