package projectile

import (
	"math"

	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

// Closed-form kinematics with gravity as the only force. These ignore Mass,
// the coefficients and Spin.

// ApexVacuumTime is the time until the vertical velocity reaches zero. It is
// negative when the projectile is already descending.
func (p *Projectile) ApexVacuumTime() float64 {
	g := -units.G
	return -p.velocity.Z / g
}

func (p *Projectile) ApexVacuum() float64 {
	g := -units.G
	t := p.ApexVacuumTime()
	return p.Position.Z + p.velocity.Z*t + g*t*t/2
}

// RangeVacuumTime is the time at which the descending branch of the vacuum
// parabola crosses endHeight. A height above the apex is unreachable and
// gives NaN.
func (p *Projectile) RangeVacuumTime(endHeight float64) float64 {
	g := -units.G
	vz := p.velocity.Z
	dz := endHeight - p.Position.Z

	// dz = vz*t + g*t^2/2
	discriminant := vz*vz + 2*g*dz
	return (-vz - math.Sqrt(discriminant)) / g
}

// RangeVacuum is the horizontal distance covered by RangeVacuumTime. NaN when
// endHeight is unreachable.
func (p *Projectile) RangeVacuum(endHeight float64) float64 {
	t := p.RangeVacuumTime(endHeight)
	return math.Hypot(p.velocity.X, p.velocity.Y) * t
}

// TrajectoryVacuum steps the projectile exactly like Trajectory but with a
// constant (0, 0, -g) acceleration.
func (p *Projectile) TrajectoryVacuum(endHeight, maxTime float64, opts ...TrajectoryOption) []vec.Vector3 {
	gravity := vec.New(0, 0, -units.G)
	return p.integrate(endHeight, maxTime, func(vec.Vector3) vec.Vector3 { return gravity }, opts)
}
