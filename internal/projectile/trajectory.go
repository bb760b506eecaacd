package projectile

import (
	"fmt"
	"strings"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/vec"
)

// TimeStep is the fixed integration step in seconds.
const TimeStep = 0.1

// timeEpsilon absorbs the rounding in step*TimeStep so that a maxTime that is
// a multiple of TimeStep yields exactly maxTime/TimeStep steps.
const timeEpsilon = 1e-9

// maxPrealloc bounds the capacity reserved up front for the output slice.
const maxPrealloc = 1 << 16

type Termination int

const (
	// TerminateCompat keeps stepping while
	// (height > endHeight && falling) || elapsed < maxTime.
	// The run always lasts at least maxTime and, once past it, keeps going
	// until a falling sample is at or below endHeight.
	TerminateCompat Termination = iota
	// TerminateAtEndHeight stops at the first falling sample at or below
	// endHeight, or when maxTime is reached, whichever comes first.
	TerminateAtEndHeight
)

func (t Termination) String() string {
	switch t {
	case TerminateCompat:
		return "compat"
	case TerminateAtEndHeight:
		return "end-height"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

func ParseTermination(s string) (Termination, error) {
	switch strings.ToLower(s) {
	case "", "compat":
		return TerminateCompat, nil
	case "end-height", "end_height", "endheight":
		return TerminateAtEndHeight, nil
	default:
		return 0, fmt.Errorf("unknown termination: %s", s)
	}
}

func (t Termination) next(height, endHeight float64, falling bool, elapsed, maxTime float64) bool {
	inTime := elapsed+timeEpsilon < maxTime
	switch t {
	case TerminateAtEndHeight:
		return inTime && !(falling && height <= endHeight)
	default:
		return (height > endHeight && falling) || inTime
	}
}

// Observer is notified once per output sample, starting with the initial
// position at step 0.
type Observer interface {
	OnStep(step int, t float64, p *Projectile)
}

type ObserverFunc func(step int, t float64, p *Projectile)

func (f ObserverFunc) OnStep(step int, t float64, p *Projectile) { f(step, t, p) }

type trajectoryConfig struct {
	termination Termination
	stepper     Stepper
	observers   []Observer
	maxSteps    int
}

type TrajectoryOption func(*trajectoryConfig)

func WithTermination(t Termination) TrajectoryOption {
	return func(c *trajectoryConfig) { c.termination = t }
}

func WithObserver(o Observer) TrajectoryOption {
	return func(c *trajectoryConfig) { c.observers = append(c.observers, o) }
}

// WithStepper selects the integration scheme. The default is StepEuler.
func WithStepper(s Stepper) TrajectoryOption {
	return func(c *trajectoryConfig) { c.stepper = s }
}

// WithMaxSteps caps the number of steps regardless of the termination rule.
// Zero or negative means no cap.
func WithMaxSteps(n int) TrajectoryOption {
	return func(c *trajectoryConfig) { c.maxSteps = n }
}

// Trajectory integrates the flight through atm with fixed steps of TimeStep
// and returns every sampled position, the starting one included.
//
// With the default StepEuler each step moves the position with the current
// velocity, then updates the velocity with the acceleration evaluated at the
// new position. The
// projectile is advanced in place, so a second call continues from where the
// first stopped.
//
// When time is the limit the loop keeps stepping while elapsed < maxTime, so
// it produces ceil(maxTime/TimeStep)+1 samples: 4 for 0.25 s, 11 for 1 s.
func (p *Projectile) Trajectory(atm atmosphere.Atmosphere, endHeight, maxTime float64, opts ...TrajectoryOption) []vec.Vector3 {
	return p.integrate(endHeight, maxTime, func(v vec.Vector3) vec.Vector3 { return p.accelerationAt(atm, v) }, opts)
}

func (p *Projectile) integrate(endHeight, maxTime float64, accel accelFunc, opts []TrajectoryOption) []vec.Vector3 {
	cfg := trajectoryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	traj := make([]vec.Vector3, 0, preallocSize(maxTime))
	traj = append(traj, p.Position)
	cfg.notify(0, 0, p)

	falling := false
	for step := 0; cfg.termination.next(p.Position.Z, endHeight, falling, elapsed(step), maxTime); step++ {
		if cfg.maxSteps > 0 && step >= cfg.maxSteps {
			break
		}

		next, v := cfg.stepper.step(p.Position, p.velocity, accel, TimeStep)
		falling = p.Position.Z > next.Z
		p.Position = next
		p.setVelocity(v)

		traj = append(traj, p.Position)
		cfg.notify(step+1, elapsed(step+1), p)
	}

	return traj
}

func (c *trajectoryConfig) notify(step int, t float64, p *Projectile) {
	for _, o := range c.observers {
		o.OnStep(step, t, p)
	}
}

func elapsed(step int) float64 {
	return float64(step) * TimeStep
}

func preallocSize(maxTime float64) int {
	if !(maxTime > 0) {
		return 1
	}
	n := maxTime/TimeStep + 2
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
