// Package atmosphere models the air a projectile flies through: saturation
// and vapor pressure, barometric pressure, and dry and moist air density as
// functions of temperature, relative humidity and elevation.
//
// An [Atmosphere] is an immutable value. Every query is a pure read, so a
// single value can be shared by any number of projectiles.
//
// Inputs are not validated. A temperature at or below 0 K produces NaN or
// Inf rather than an error; only humidity is clamped, at construction.
package atmosphere

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/projsim/internal/logging"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

const (
	// Tetens base coefficient (kPa).
	tetensBase = 0.61078

	// Standard atmosphere at sea level.
	StandardTemperature = 288.15
	StandardHumidity    = 0.0
)

// tetensCoefficients is one branch of the Tetens equation:
// p = base * exp(a*T / (T + b)), T in Celsius.
type tetensCoefficients struct {
	a, b float64
}

// Tetens selects the coefficient pair used on each side of 0 °C.
type Tetens int

const (
	// TetensCompat uses 17.27 / +265.5 below 0 °C and 21.87 / +237.3 at or
	// above it.
	TetensCompat Tetens = iota
	// TetensStandard uses the usual pairing: ice (21.875 / +265.5) below
	// 0 °C and water (17.27 / +237.3) at or above it.
	TetensStandard
)

var tetensTable = map[Tetens][2]tetensCoefficients{
	// {below 0 °C, at or above 0 °C}
	TetensCompat:   {{a: 17.27, b: 265.5}, {a: 21.87, b: 237.3}},
	TetensStandard: {{a: 21.875, b: 265.5}, {a: 17.27, b: 237.3}},
}

func (t Tetens) String() string {
	switch t {
	case TetensCompat:
		return "compat"
	case TetensStandard:
		return "standard"
	default:
		return fmt.Sprintf("Tetens(%d)", int(t))
	}
}

func ParseTetens(s string) (Tetens, error) {
	switch strings.ToLower(s) {
	case "", "compat":
		return TetensCompat, nil
	case "standard", "water-ice":
		return TetensStandard, nil
	default:
		return 0, fmt.Errorf("unknown tetens coefficients: %s", s)
	}
}

type Atmosphere struct {
	temperature float64
	humidity    float64
	elevation   float64
	wind        vec.Vector3
	tetens      Tetens
	clamped     bool
}

type options struct {
	logger logging.Logger
	tetens Tetens
}

type Option func(*options)

// WithLogger routes the humidity clamp warning to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTetens selects the saturation pressure coefficients. The default is
// TetensCompat.
func WithTetens(t Tetens) Option {
	return func(o *options) { o.tetens = t }
}

// New builds an atmosphere. temperature is in Kelvin, humidity is relative
// (0..1), elevation is metres above sea level and wind is a velocity in m/s.
// Humidity outside [0, 1] is clamped to the nearest bound and a warning is
// logged. A NaN humidity is kept as NaN, so every humidity-dependent query
// returns NaN; it is logged but not reported as clamped.
func New(temperature, humidity, elevation float64, wind vec.Vector3, opts ...Option) Atmosphere {
	o := options{logger: logging.Noop()}
	for _, opt := range opts {
		opt(&o)
	}

	a := Atmosphere{
		temperature: temperature,
		humidity:    humidity,
		elevation:   elevation,
		wind:        wind,
		tetens:      o.tetens,
	}

	if math.IsNaN(humidity) {
		o.logger.Warn(context.Background(), "humidity is not a number",
			logging.Bool("clamped", false))
		return a
	}

	if clampedHumidity := math.Max(0, math.Min(1, humidity)); clampedHumidity != humidity {
		a.humidity = clampedHumidity
		a.clamped = true
		o.logger.Warn(context.Background(), "humidity out of range, clamping",
			logging.Float("humidity", humidity),
			logging.Float("clamped", clampedHumidity))
	}

	return a
}

// Standard returns a calm, dry atmosphere at 15 °C and sea level.
func Standard() Atmosphere {
	return New(StandardTemperature, StandardHumidity, 0, vec.Zero)
}

func (a Atmosphere) Temperature() float64 { return a.temperature }
func (a Atmosphere) Humidity() float64    { return a.humidity }
func (a Atmosphere) Elevation() float64   { return a.elevation }
func (a Atmosphere) Wind() vec.Vector3    { return a.wind }

// HumidityClamped reports whether the humidity passed to New was outside
// [0, 1].
func (a Atmosphere) HumidityClamped() bool { return a.clamped }

func (a Atmosphere) Tetens() Tetens { return a.tetens }

// SaturationPressure estimates the saturation vapor pressure with the Tetens
// equation, picking the coefficient pair by the sign of the Celsius
// temperature. The result is in Pa.
func (a Atmosphere) SaturationPressure() float64 {
	celsius := units.KelvinToCelsius(a.temperature)
	pair, ok := tetensTable[a.tetens]
	if !ok {
		pair = tetensTable[TetensCompat]
	}
	c := pair[1]
	if celsius < 0 {
		c = pair[0]
	}
	kpa := tetensBase * math.Exp(c.a*celsius/(celsius+c.b))
	return kpa * units.KPa / units.Pa
}

func (a Atmosphere) VaporPressure() float64 {
	return a.humidity * a.SaturationPressure()
}

// Pressure is the barometric formula for an isothermal column (Pa).
func (a Atmosphere) Pressure() float64 {
	exponent := -units.G * units.AirMolMass * a.elevation / (units.R * a.temperature)
	return units.PressureSeaLevel * math.Exp(exponent)
}

// DryAirDensity is the density of the air if it carried no water vapor
// (kg/m^3).
func (a Atmosphere) DryAirDensity() float64 {
	return a.Pressure() * units.AirMolecMass / (units.KB * a.temperature)
}

// AirDensity is the density of moist air: the dry partial pressure weighted
// by the molar mass of air plus the vapor partial pressure weighted by the
// molar mass of water (kg/m^3).
func (a Atmosphere) AirDensity() float64 {
	vapor := a.VaporPressure()
	dry := a.Pressure() - vapor
	return (dry*units.AirMolMass + vapor*units.WaterVaporMolMass) / (units.R * a.temperature)
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("T=%.2fK RH=%.1f%% h=%.1fm wind=%s",
		a.temperature, a.humidity*100, a.elevation, a.wind)
}
