package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/vec"
)

// Apex is the highest z seen.
type Apex struct {
	name    string
	max     float64
	samples int
}

func NewApex() *Apex {
	return &Apex{name: "apex"}
}

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(step int, t float64, p *projectile.Projectile) {
	if a.samples == 0 || p.Position.Z > a.max {
		a.max = p.Position.Z
	}
	a.samples++
}

func (a *Apex) Value() float64 {
	if a.samples == 0 {
		return math.NaN()
	}
	return a.max
}

func (a *Apex) Reset() {
	a.max = 0
	a.samples = 0
}

// Range is the horizontal distance between the first and the latest sample.
type Range struct {
	name    string
	origin  vec.Vector3
	last    vec.Vector3
	samples int
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (r *Range) Name() string { return r.name }

func (r *Range) Observe(step int, t float64, p *projectile.Projectile) {
	if r.samples == 0 {
		r.origin = p.Position
	}
	r.last = p.Position
	r.samples++
}

func (r *Range) Value() float64 {
	d := r.last.Sub(r.origin)
	return math.Hypot(d.X, d.Y)
}

func (r *Range) Reset() {
	r.origin = vec.Zero
	r.last = vec.Zero
	r.samples = 0
}

// FlightTime is the elapsed time of the latest sample.
type FlightTime struct {
	name string
	t    float64
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (f *FlightTime) Name() string { return f.name }

func (f *FlightTime) Observe(step int, t float64, p *projectile.Projectile) {
	f.t = t
}

func (f *FlightTime) Value() float64 { return f.t }
func (f *FlightTime) Reset()         { f.t = 0 }

type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(step int, t float64, p *projectile.Projectile) {
	m.max = math.Max(m.max, p.Speed())
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
