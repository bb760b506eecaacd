package projectile

import (
	"fmt"
	"strings"

	"github.com/san-kum/projsim/internal/vec"
)

// accelFunc evaluates the acceleration at velocity v.
type accelFunc func(v vec.Vector3) vec.Vector3

type Stepper int

const (
	// StepEuler is explicit Euler: x += v·dt, then v += a(v)·dt.
	StepEuler Stepper = iota
	// StepRK4 is classic fourth-order Runge-Kutta on (position, velocity).
	// It is exact for constant acceleration.
	StepRK4
)

func (s Stepper) String() string {
	switch s {
	case StepEuler:
		return "euler"
	case StepRK4:
		return "rk4"
	default:
		return fmt.Sprintf("Stepper(%d)", int(s))
	}
}

func ParseStepper(s string) (Stepper, error) {
	switch strings.ToLower(s) {
	case "", "euler":
		return StepEuler, nil
	case "rk4":
		return StepRK4, nil
	default:
		return 0, fmt.Errorf("unknown stepper: %s", s)
	}
}

func (s Stepper) step(x, v vec.Vector3, accel accelFunc, dt float64) (vec.Vector3, vec.Vector3) {
	switch s {
	case StepRK4:
		return rk4(x, v, accel, dt)
	default:
		return x.Add(v.Scale(dt)), v.Add(accel(v).Scale(dt))
	}
}

func rk4(x, v vec.Vector3, accel accelFunc, dt float64) (vec.Vector3, vec.Vector3) {
	k1x, k1v := v, accel(v)

	k2x := v.Add(k1v.Scale(dt * 0.5))
	k2v := accel(k2x)

	k3x := v.Add(k2v.Scale(dt * 0.5))
	k3v := accel(k3x)

	k4x := v.Add(k3v.Scale(dt))
	k4v := accel(k4x)

	dt6 := dt / 6.0
	nx := x.Add(k1x.Add(k2x.Scale(2)).Add(k3x.Scale(2)).Add(k4x).Scale(dt6))
	nv := v.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt6))
	return nx, nv
}
