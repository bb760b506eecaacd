package projectile

import (
	"fmt"
	"math"

	"github.com/san-kum/projsim/internal/vec"
)

// Projectile is the mutable state of one flight. The zero value is a valid,
// motionless projectile with zero mass; set Mass before asking for forces or
// energies.
//
// Velocity is only reachable through the setters so that Speed, Theta and
// Phi always describe the current velocity.
type Projectile struct {
	Mass              float64 // kg
	Radius            float64 // m
	DragCoefficient   float64
	MagnusCoefficient float64
	DragModel         DragModel

	Position vec.Vector3
	Spin     vec.Vector3 // angular velocity, rad/s

	velocity vec.Vector3
	speed    float64
	theta    float64
	phi      float64
}

func New() *Projectile {
	return &Projectile{}
}

// SetSpeedTheta launches in the x-z plane at elevation angle theta with
// azimuth 0. Theta and Phi are then read back from the resulting velocity, so
// for |theta| > π/2 (a launch toward -x) they report phi = π and the
// equivalent elevation π - theta rather than the arguments given.
func (p *Projectile) SetSpeedTheta(speed, theta float64) {
	p.SetSpeedThetaPhi(speed, theta, 0)
}

// SetSpeedThetaPhi launches with elevation angle theta above the horizontal
// and azimuth phi measured from the x axis toward y.
func (p *Projectile) SetSpeedThetaPhi(speed, theta, phi float64) {
	forward := speed * math.Cos(theta)
	p.setVelocity(vec.New(
		forward*math.Cos(phi),
		forward*math.Sin(phi),
		speed*math.Sin(theta),
	))
}

func (p *Projectile) SetVelocityComponents(vx, vy, vz float64) {
	p.setVelocity(vec.New(vx, vy, vz))
}

func (p *Projectile) SetVelocity(v vec.Vector3) {
	p.setVelocity(v)
}

// setVelocity is the only place velocity changes. Derived angles come from
// v itself: theta = atan(vz/xy), phi = acos(vx/xy). With no horizontal
// component phi is 0 and theta is ±π/2 (0 when v is zero).
func (p *Projectile) setVelocity(v vec.Vector3) {
	p.velocity = v
	p.speed = v.Mag()

	xy := math.Hypot(v.X, v.Y)
	if xy == 0 {
		p.phi = 0
		switch {
		case v.Z > 0:
			p.theta = math.Pi / 2
		case v.Z < 0:
			p.theta = -math.Pi / 2
		default:
			p.theta = 0
		}
		return
	}

	p.theta = math.Atan(v.Z / xy)
	// vx/xy can land a rounding error outside [-1, 1].
	p.phi = math.Acos(math.Max(-1, math.Min(1, v.X/xy)))
}

func (p *Projectile) Velocity() vec.Vector3 { return p.velocity }
func (p *Projectile) Speed() float64        { return p.speed }
func (p *Projectile) Theta() float64        { return p.theta }
func (p *Projectile) Phi() float64          { return p.phi }

func (p *Projectile) Momentum() vec.Vector3 {
	return p.velocity.Scale(p.Mass)
}

func (p *Projectile) KineticEnergy() float64 {
	return p.Momentum().Mag2() / (2 * p.Mass)
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":   p.Mass,
		"radius": p.Radius,
		"drag":   p.DragCoefficient,
		"magnus": p.MagnusCoefficient,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "radius":
		p.Radius = value
	case "drag":
		p.DragCoefficient = value
	case "magnus":
		p.MagnusCoefficient = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (p *Projectile) String() string {
	return fmt.Sprintf("pos=%s vel=%s speed=%.3f theta=%.4f phi=%.4f",
		p.Position, p.velocity, p.speed, p.theta, p.phi)
}
