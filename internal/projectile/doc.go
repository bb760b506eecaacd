// Package projectile provides the flight state of a spinning sphere and the
// engines that advance it:
//
//   - closed-form vacuum kinematics ([Projectile.ApexVacuum],
//     [Projectile.RangeVacuum])
//   - a drag + Magnus + gravity force law evaluated against an
//     [atmosphere.Atmosphere]
//   - a fixed-step explicit Euler integrator ([Projectile.Trajectory])
//
// # Example
//
//	atm := atmosphere.New(293.15, 0.4, 0, vec.Zero)
//	p := projectile.New()
//	p.Mass, p.Radius, p.DragCoefficient = 0.145, 0.037, 0.3
//	p.SetSpeedTheta(40, 35*units.Degrees)
//	path := p.Trajectory(atm, 0, 10, projectile.WithTermination(projectile.TerminateAtEndHeight))
//
// # Failure signal
//
// Nothing here returns an error. Invalid physical input (zero mass, an
// unreachable target height, a degenerate atmosphere) surfaces as NaN or Inf
// in the result.
//
// A Projectile is not safe for concurrent use.
package projectile
