// Package vec provides the three-component value type used for positions,
// velocities, spins and forces throughout the simulator.
//
// All operations take and return copies; a Vector3 is never aliased.
package vec

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X, Y, Z float64
}

var Zero = Vector3{}

func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale multiplies every component by factor.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{v.X * factor, v.Y * factor, v.Z * factor}
}

// ScaleBy is Scale with the scalar on the left, factor * v.
func ScaleBy(factor float64, v Vector3) Vector3 {
	return v.Scale(factor)
}

// Div divides every component by divisor. Division by zero follows IEEE rules.
func (v Vector3) Div(divisor float64) Vector3 {
	return Vector3{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// DivInto returns the component-wise quotient numerator / v.
func DivInto(numerator float64, v Vector3) Vector3 {
	return Vector3{numerator / v.X, numerator / v.Y, numerator / v.Z}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) Mag2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Mag() float64 {
	return math.Sqrt(v.Mag2())
}

// Normalize returns the unit vector along v. The zero vector yields NaN
// components.
func (v Vector3) Normalize() Vector3 {
	return v.Div(v.Mag())
}

func (v Vector3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
