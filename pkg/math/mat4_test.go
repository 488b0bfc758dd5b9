package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() {
		t.Error("IsIdentity() = false for Identity()")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if TranslateVec(Vec3{5, 10, 15}) != m {
		t.Error("TranslateVec should match Translate")
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
	if ScaleUniform(2) != Scale(2, 2, 2) {
		t.Error("ScaleUniform(2) should equal Scale(2, 2, 2)")
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	// (1,0,0) rotated a quarter turn counter-clockwise lands on (0,1,0)
	if abs(result[0]) > 0.001 || abs(result[1]-1) > 0.001 || abs(result[2]) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestRotateZZero(t *testing.T) {
	if !RotateZ(0).IsIdentity() {
		t.Errorf("RotateZ(0) = %v, want identity", RotateZ(0))
	}
}

func TestMulOrder(t *testing.T) {
	// S * T applies T first: (1,0,0) -> (2,0,0) -> (4,0,0)
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.TransformPoint([3]float32{1, 0, 0})
	if got != [3]float32{4, 0, 0} {
		t.Errorf("S*T: got %v, want (4, 0, 0)", got)
	}

	// T * S applies S first: (1,0,0) -> (2,0,0) -> (3,0,0)
	m = Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	got = m.TransformPoint([3]float32{1, 0, 0})
	if got != [3]float32{3, 0, 0} {
		t.Errorf("T*S: got %v, want (3, 0, 0)", got)
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{180, math.Pi},
		{90, math.Pi / 2},
		{-360, -2 * math.Pi},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	a := Identity()
	b := Identity()
	b[12] = 0.0005
	if !a.ApproxEqual(b, 0.001) {
		t.Error("expected matrices within 0.001 to be approx equal")
	}
	if a.ApproxEqual(b, 0.0001) {
		t.Error("expected matrices 0.0005 apart not to be equal at 0.0001")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
