package anim

import "time"

// Clock tracks the timestamp of the previous frame. The zero value has no
// baseline yet; the first Tick only records one.
type Clock struct {
	baseline int64
	last     int64
	started  bool
}

// Tick records nowMs as the latest frame time. On the first call it returns
// ok=false, meaning no time has elapsed yet and the animation must not step.
func (c *Clock) Tick(nowMs int64) (elapsedMs int64, ok bool) {
	if !c.started {
		c.baseline = nowMs
		c.last = nowMs
		c.started = true
		return 0, false
	}
	elapsedMs = nowMs - c.last
	c.last = nowMs
	return elapsedMs, true
}

// Started reports whether a baseline has been recorded.
func (c *Clock) Started() bool {
	return c.started
}

// Running returns the milliseconds between the first and the latest tick.
func (c *Clock) Running() int64 {
	return c.last - c.baseline
}

// Source supplies monotonic timestamps in milliseconds.
type Source interface {
	Now() int64
}

// MonotonicSource reads the process monotonic clock.
type MonotonicSource struct {
	start time.Time
}

// NewMonotonicSource returns a source counting from now.
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{start: time.Now()}
}

// Now returns milliseconds since the source was created.
func (s *MonotonicSource) Now() int64 {
	return time.Since(s.start).Milliseconds()
}

// StepSource is a synthetic clock advancing by a fixed step on every read.
type StepSource struct {
	next int64
	step int64
}

// NewStepSource returns a source whose first reading is start.
func NewStepSource(start, step int64) *StepSource {
	return &StepSource{next: start, step: step}
}

// Now returns the current synthetic time and advances it.
func (s *StepSource) Now() int64 {
	now := s.next
	s.next += s.step
	return now
}
