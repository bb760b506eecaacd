package projectile

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

// DragModel selects how drag is composed from the relative velocity.
type DragModel int

const (
	// DragPerAxis evaluates the drag magnitude separately for each axis from
	// that axis' relative speed and always subtracts it. The sign of the
	// motion is not taken into account.
	DragPerAxis DragModel = iota
	// DragVector applies a single drag force opposing the relative-velocity
	// vector.
	DragVector
)

func (d DragModel) String() string {
	switch d {
	case DragPerAxis:
		return "per-axis"
	case DragVector:
		return "vector"
	default:
		return fmt.Sprintf("DragModel(%d)", int(d))
	}
}

func ParseDragModel(s string) (DragModel, error) {
	switch strings.ToLower(s) {
	case "", "per-axis", "per_axis", "axis":
		return DragPerAxis, nil
	case "vector":
		return DragVector, nil
	default:
		return 0, fmt.Errorf("unknown drag model: %s", s)
	}
}

// CrossSection is the area the drag law uses: the full sphere surface, 4πr².
func (p *Projectile) CrossSection() float64 {
	return 4 * math.Pi * p.Radius * p.Radius
}

// AirResistance is the drag magnitude Cd·ρ·A·v²/2 at the given relative
// speed.
func (p *Projectile) AirResistance(atm atmosphere.Atmosphere, speed float64) float64 {
	return p.DragCoefficient * atm.AirDensity() * p.CrossSection() * speed * speed / 2
}

// Magnus is magnus_coefficient * (spin × velocity).
func (p *Projectile) Magnus() vec.Vector3 {
	return p.magnusAt(p.velocity)
}

func (p *Projectile) Drag(atm atmosphere.Atmosphere) vec.Vector3 {
	return p.dragAt(atm, p.velocity)
}

// Force is Magnus minus drag minus weight. Gravity enters as the weight
// m·g on z, not as g subtracted from the force, so the vacuum acceleration is
// exactly -g for any mass.
func (p *Projectile) Force(atm atmosphere.Atmosphere) vec.Vector3 {
	return p.forceAt(atm, p.velocity)
}

func (p *Projectile) Acceleration(atm atmosphere.Atmosphere) vec.Vector3 {
	return p.accelerationAt(atm, p.velocity)
}

// The force law depends on velocity only; position does not enter it. The
// *At variants evaluate it at an arbitrary velocity for multi-stage steppers.

func (p *Projectile) magnusAt(v vec.Vector3) vec.Vector3 {
	return p.Spin.Cross(v).Scale(p.MagnusCoefficient)
}

func (p *Projectile) dragAt(atm atmosphere.Atmosphere, v vec.Vector3) vec.Vector3 {
	relative := v.Add(atm.Wind())

	switch p.DragModel {
	case DragVector:
		speed := relative.Mag()
		if speed == 0 {
			return vec.Zero
		}
		return relative.Scale(p.AirResistance(atm, speed) / speed)
	default:
		return vec.New(
			p.AirResistance(atm, relative.X),
			p.AirResistance(atm, relative.Y),
			p.AirResistance(atm, relative.Z),
		)
	}
}

func (p *Projectile) forceAt(atm atmosphere.Atmosphere, v vec.Vector3) vec.Vector3 {
	weight := vec.New(0, 0, p.Mass*units.G)
	return p.magnusAt(v).Sub(p.dragAt(atm, v)).Sub(weight)
}

func (p *Projectile) accelerationAt(atm atmosphere.Atmosphere, v vec.Vector3) vec.Vector3 {
	return p.forceAt(atm, v).Div(p.Mass)
}
