package tui

import (
	"math"

	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/vec"
)

// Frame is one recorded sample of a flight.
type Frame struct {
	Step     int
	T        float64
	Position vec.Vector3
	Velocity vec.Vector3
	Speed    float64
	// Distance is the horizontal distance from the first recorded sample.
	Distance float64
}

// Recorder is a projectile.Observer that keeps every sample for replay.
type Recorder struct {
	frames []Frame
	origin vec.Vector3
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnStep(step int, t float64, p *projectile.Projectile) {
	if len(r.frames) == 0 {
		r.origin = p.Position
	}
	d := p.Position.Sub(r.origin)
	r.frames = append(r.frames, Frame{
		Step:     step,
		T:        t,
		Position: p.Position,
		Velocity: p.Velocity(),
		Speed:    p.Speed(),
		Distance: math.Hypot(d.X, d.Y),
	})
}

func (r *Recorder) Frames() []Frame {
	return r.frames
}

func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}
