// Package units holds the SI scale factors, physical constants and small
// conversion helpers shared by the atmosphere and projectile models.
//
// SI is the default: a quantity expressed as 3*KM is 3000 metres.
package units

import "math"

// Length
const (
	M     = 1.0
	KM    = 1e3 * M
	CM    = 1e-2 * M
	MM    = 1e-3 * M
	UM    = 1e-6 * M
	NM    = 1e-9 * M
	Miles = 1609.344 * M
)

// Time
const (
	S   = 1.0
	MS  = 1e-3 * S
	US  = 1e-6 * S
	NS  = 1e-9 * S
	H   = 3600 * S
	Min = 60 * S
)

// Mass
const (
	KG   = 1.0
	Gram = 1e-3 * KG
	MG   = 1e-6 * KG
	LBS  = 0.4535924 * KG
)

// Energy
const J = KG * M * M / (S * S)

// Angles
const (
	Rad     = 1.0
	Degrees = 2 * math.Pi * Rad / 360
	ArcMin  = Degrees / 60
	ArcSec  = Degrees / 3600
)

// Pressure
const (
	Pa  = 1.0
	KPa = 1e3 * Pa
)

// Temperature
const (
	K    = 1.0
	KToC = 273.15
)

// Amount
const Mol = 1.0

// Physical constants.
const (
	// Standard gravity (m/s^2).
	G = 9.80665
	// Boltzmann constant (J/K).
	KB = 1.380649e-23
	// Molar gas constant (J/(mol*K)).
	R = 8.31446261815324
	// Specific gas constant for dry air (J/(kg*K)).
	RSpecDryAir = 287.0500676
	// Molar mass of dry air (kg/mol).
	AirMolMass = 0.0289644
	// Mean molecular mass of dry air (kg).
	AirMolecMass = 4.81e-26
	// Molar mass of water vapor (kg/mol).
	WaterVaporMolMass = 0.018015268
	// Standard sea-level pressure (Pa).
	PressureSeaLevel = 101325 * Pa
)

func MilesToKM(miles float64) float64 { return miles * Miles / KM }
func MilesToM(miles float64) float64  { return miles * Miles / M }
func LbsToKG(lbs float64) float64     { return lbs * LBS / KG }
func MPHToMPS(mph float64) float64    { return mph * Miles / H }

func RadToDegrees(rad float64) float64     { return rad / Degrees }
func DegreesToRad(degrees float64) float64 { return degrees * Degrees }

func KelvinToCelsius(kelvin float64) float64         { return kelvin - KToC }
func CelsiusToKelvin(celsius float64) float64        { return celsius + KToC }
func CelsiusToFahrenheit(celsius float64) float64    { return celsius*9/5 + 32 }
func FahrenheitToCelsius(fahrenheit float64) float64 { return (fahrenheit - 32) * 5 / 9 }
