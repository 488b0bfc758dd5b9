package anim

import (
	gomath "math"

	"github.com/Faultbox/logoanim/pkg/math"
)

const (
	// periodMs divides elapsed time before it reaches sin/cos.
	periodMs = 4000.0

	minScale   = 0.1
	scaleRange = 0.5

	// degreesPerTick is the rotation applied per angle tick.
	degreesPerTick = 8
)

// Params are the three components of the continuous transform.
type Params struct {
	Scale     float32
	Radians   float32
	Translate math.Vec3
}

// ParamsAt evaluates scale, rotation and translation for one frame. The time
// argument is sampled once so all three components stay in phase.
func ParamsAt(elapsedMs float64, angle int) Params {
	phase := elapsedMs / periodMs
	sin := gomath.Sin(phase)

	return Params{
		Scale:   float32(minScale + scaleRange*gomath.Abs(gomath.Cos(phase))),
		Radians: float32(math.DegToRad(float64(degreesPerTick * angle))),
		Translate: math.Vec3{
			X: float32(-1 + sin),
			Y: float32(1 - sin),
			Z: 0,
		},
	}
}

// Matrix composes the parameters as scale, then rotate, then translate, each
// right-multiplied onto the identity.
func (p Params) Matrix() math.Mat4 {
	m := math.Identity()
	m = m.Mul(math.ScaleUniform(p.Scale))
	m = m.Mul(math.RotateZ(p.Radians))
	m = m.Mul(math.TranslateVec(p.Translate))
	return m
}

// Compute returns the model matrix for a frame. With transforms disabled it
// is the identity regardless of time and angle. The result depends only on
// the arguments.
func Compute(elapsedMs float64, angle int, transformEnabled bool) math.Mat4 {
	if !transformEnabled {
		return math.Identity()
	}
	return ParamsAt(elapsedMs, angle).Matrix()
}
