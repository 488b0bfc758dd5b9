package anim

import "testing"

func TestClockFirstTick(t *testing.T) {
	var c Clock
	if c.Started() {
		t.Error("zero clock should not be started")
	}

	elapsed, ok := c.Tick(1000)
	if ok {
		t.Error("first tick should report no elapsed time")
	}
	if elapsed != 0 {
		t.Errorf("first tick elapsed: got %d, want 0", elapsed)
	}
	if !c.Started() {
		t.Error("clock should be started after first tick")
	}
	if c.Running() != 0 {
		t.Errorf("running after first tick: got %d, want 0", c.Running())
	}
}

func TestClockSubsequentTicks(t *testing.T) {
	var c Clock
	c.Tick(1000)

	tests := []struct {
		now     int64
		elapsed int64
		running int64
	}{
		{1016, 16, 16},
		{1033, 17, 33},
		{1033, 0, 33},
		{2033, 1000, 1033},
	}
	for _, tt := range tests {
		elapsed, ok := c.Tick(tt.now)
		if !ok {
			t.Fatalf("tick at %d should report elapsed time", tt.now)
		}
		if elapsed != tt.elapsed {
			t.Errorf("tick at %d: elapsed %d, want %d", tt.now, elapsed, tt.elapsed)
		}
		if c.Running() != tt.running {
			t.Errorf("tick at %d: running %d, want %d", tt.now, c.Running(), tt.running)
		}
	}
}

func TestStepSource(t *testing.T) {
	s := NewStepSource(100, 16)
	for _, want := range []int64{100, 116, 132} {
		if got := s.Now(); got != want {
			t.Errorf("Now() = %d, want %d", got, want)
		}
	}
}

func TestMonotonicSource(t *testing.T) {
	s := NewMonotonicSource()
	a := s.Now()
	b := s.Now()
	if a < 0 || b < a {
		t.Errorf("monotonic source went backwards: %d then %d", a, b)
	}
}
