package anim

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/logoanim/pkg/math"
)

func TestComputeDisabledIsIdentity(t *testing.T) {
	times := []float64{0, 1, 4000 * gomath.Pi / 2, 1e12}
	angles := []int{0, 1, 179, 359}
	for _, tm := range times {
		for _, angle := range angles {
			if m := Compute(tm, angle, false); !m.IsIdentity() {
				t.Errorf("Compute(%v, %d, false) = %v, want identity", tm, angle, m)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	for _, tt := range []struct {
		t     float64
		angle int
	}{
		{0, 0},
		{1234.5, 17},
		{98765, 359},
		{3.6e9, 200},
	} {
		a := Compute(tt.t, tt.angle, true)
		b := Compute(tt.t, tt.angle, true)
		if a != b {
			t.Errorf("Compute(%v, %d) not deterministic: %v vs %v", tt.t, tt.angle, a, b)
		}
	}
}

func TestComputeQuarterPeriod(t *testing.T) {
	// cos(pi/2) = 0 gives the minimum scale; sin(pi/2) = 1 zeroes the
	// translation, and angle 0 means no rotation.
	m := Compute(4000*gomath.Pi/2, 0, true)
	want := math.Scale(0.1, 0.1, 0.1)
	if !m.ApproxEqual(want, 1e-6) {
		t.Errorf("got %v, want %v", m, want)
	}

	p := ParamsAt(4000*gomath.Pi/2, 0)
	if gomath.Abs(float64(p.Scale)-0.1) > 1e-6 {
		t.Errorf("scale: got %f, want 0.1", p.Scale)
	}
	if p.Radians != 0 {
		t.Errorf("radians: got %f, want 0", p.Radians)
	}
}

func TestComputeAtZero(t *testing.T) {
	// t=0: scale 0.6, translation (-1, 1, 0), no rotation at angle 0.
	m := Compute(0, 0, true)
	want := math.Scale(0.6, 0.6, 0.6).Mul(math.Translate(-1, 1, 0))
	if !m.ApproxEqual(want, 1e-6) {
		t.Errorf("got %v, want %v", m, want)
	}

	// The origin is translated first, then scaled.
	origin := m.TransformPoint([3]float32{0, 0, 0})
	if gomath.Abs(float64(origin[0])+0.6) > 1e-6 || gomath.Abs(float64(origin[1])-0.6) > 1e-6 {
		t.Errorf("origin maps to %v, want (-0.6, 0.6, 0)", origin)
	}
}

func TestComputeRotation(t *testing.T) {
	tests := []struct {
		angle   int
		degrees float64
	}{
		{1, 8},
		{45, 360},
		{90, 720},
		{180, 1440},
	}
	for _, tt := range tests {
		p := ParamsAt(0, tt.angle)
		want := float32(tt.degrees * gomath.Pi / 180)
		if p.Radians != want {
			t.Errorf("angle %d: radians %f, want %f", tt.angle, p.Radians, want)
		}
	}

	// Eight degrees per tick: 45 ticks is a full turn.
	full := Compute(0, 45, true)
	none := Compute(0, 0, true)
	if !full.ApproxEqual(none, 1e-5) {
		t.Errorf("45 ticks should be a full turn: %v vs %v", full, none)
	}
}

func TestParamsRange(t *testing.T) {
	for ms := 0.0; ms < 100000; ms += 137 {
		p := ParamsAt(ms, 0)
		if p.Scale < 0.1-1e-6 || p.Scale > 0.6+1e-6 {
			t.Fatalf("scale at %v out of range: %f", ms, p.Scale)
		}
		if p.Translate.X+p.Translate.Y > 1e-5 || p.Translate.X+p.Translate.Y < -1e-5 {
			t.Fatalf("translation at %v should satisfy x = -y: %+v", ms, p.Translate)
		}
		if p.Translate.Z != 0 {
			t.Fatalf("translation z at %v should be 0", ms)
		}
	}
}
