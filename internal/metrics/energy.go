package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/projectile"
)

// EnergyLoss is the fraction of the initial kinetic energy lost by the
// latest sample. Gravity trades kinetic for potential energy, so a vacuum
// flight still reports a loss on the way up.
type EnergyLoss struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss() *EnergyLoss {
	return &EnergyLoss{name: "energy_loss"}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(step int, t float64, p *projectile.Projectile) {
	energy := p.KineticEnergy()
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return (e.initialEnergy - e.currentEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}

// MechanicalEnergyDrift is the largest relative change in kinetic plus
// potential energy. It stays near zero for a vacuum flight up to the Euler
// error and grows with drag.
type MechanicalEnergyDrift struct {
	name     string
	gravity  float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewMechanicalEnergyDrift(gravity float64) *MechanicalEnergyDrift {
	return &MechanicalEnergyDrift{name: "energy_drift", gravity: gravity}
}

func (e *MechanicalEnergyDrift) Name() string { return e.name }

func (e *MechanicalEnergyDrift) Observe(step int, t float64, p *projectile.Projectile) {
	energy := p.KineticEnergy() + p.Mass*e.gravity*p.Position.Z

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *MechanicalEnergyDrift) Value() float64 { return e.maxDrift }

func (e *MechanicalEnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
