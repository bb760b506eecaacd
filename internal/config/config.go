package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/logging"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

const (
	DefaultTemperatureC = 15.0
	DefaultHumidity     = 0.5
	DefaultMass         = 0.145
	DefaultRadius       = 0.037
	DefaultDrag         = 0.3
	DefaultSpeed        = 40.0
	DefaultThetaDeg     = 35.0
	DefaultMaxTime      = 10.0
)

var (
	ErrUnknownPreset      = errors.New("config: unknown preset")
	ErrParameterBounds    = errors.New("config: parameter out of valid bounds")
	ErrUnknownDragModel   = errors.New("config: unknown drag model")
	ErrUnknownTermination = errors.New("config: unknown termination")
	ErrUnknownStepper     = errors.New("config: unknown stepper")
	ErrUnknownTetens      = errors.New("config: unknown tetens coefficients")
)

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Vector() vec.Vector3 { return vec.New(v.X, v.Y, v.Z) }

type Config struct {
	Name       string           `yaml:"name,omitempty"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Run        RunConfig        `yaml:"run"`
}

type AtmosphereConfig struct {
	TemperatureC float64 `yaml:"temperature_c"`
	Humidity     float64 `yaml:"humidity"`
	Elevation    float64 `yaml:"elevation"`
	Wind         Vec3    `yaml:"wind"`
	// Tetens is "compat" (default) or "standard".
	Tetens       string  `yaml:"tetens,omitempty"`
}

// ProjectileConfig describes the launch either as speed and angles or, when
// Velocity is set, as explicit components.
type ProjectileConfig struct {
	Mass              float64 `yaml:"mass"`
	Radius            float64 `yaml:"radius"`
	DragCoefficient   float64 `yaml:"drag_coefficient"`
	MagnusCoefficient float64 `yaml:"magnus_coefficient"`
	Position          Vec3    `yaml:"position"`
	Spin              Vec3    `yaml:"spin"`
	Speed             float64 `yaml:"speed"`
	ThetaDeg          float64 `yaml:"theta_deg"`
	PhiDeg            float64 `yaml:"phi_deg"`
	Velocity          *Vec3   `yaml:"velocity,omitempty"`
}

type RunConfig struct {
	EndHeight   float64 `yaml:"end_height"`
	MaxTime     float64 `yaml:"max_time"`
	DragModel   string  `yaml:"drag_model"`
	Termination string  `yaml:"termination"`
	Stepper     string  `yaml:"stepper,omitempty"`
	MaxSteps    int     `yaml:"max_steps,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Atmosphere: AtmosphereConfig{
			TemperatureC: DefaultTemperatureC,
			Humidity:     DefaultHumidity,
		},
		Projectile: ProjectileConfig{
			Mass:            DefaultMass,
			Radius:          DefaultRadius,
			DragCoefficient: DefaultDrag,
			Speed:           DefaultSpeed,
			ThetaDeg:        DefaultThetaDeg,
		},
		Run: RunConfig{
			MaxTime:     DefaultMaxTime,
			DragModel:   projectile.DragPerAxis.String(),
			Termination: projectile.TerminateCompat.String(),
		},
	}
}

// Load reads a YAML scenario on top of DefaultConfig and validates it.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML scenario on top of base and validates the result.
// Keys absent from the file keep base's values. base is modified in place and
// returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects scenarios the physics core would silently turn into NaN.
func (c *Config) Validate() error {
	if c.Projectile.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", ErrParameterBounds, c.Projectile.Mass)
	}
	if c.Projectile.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative, got %g", ErrParameterBounds, c.Projectile.Radius)
	}
	if units.CelsiusToKelvin(c.Atmosphere.TemperatureC) <= 0 {
		return fmt.Errorf("%w: temperature must be above absolute zero, got %g °C", ErrParameterBounds, c.Atmosphere.TemperatureC)
	}
	if c.Run.MaxTime < 0 {
		return fmt.Errorf("%w: max_time must not be negative, got %g", ErrParameterBounds, c.Run.MaxTime)
	}
	if c.Run.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must not be negative, got %d", ErrParameterBounds, c.Run.MaxSteps)
	}
	if _, err := projectile.ParseDragModel(c.Run.DragModel); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDragModel, c.Run.DragModel)
	}
	if _, err := projectile.ParseTermination(c.Run.Termination); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTermination, c.Run.Termination)
	}
	if _, err := projectile.ParseStepper(c.Run.Stepper); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownStepper, c.Run.Stepper)
	}
	if _, err := atmosphere.ParseTetens(c.Atmosphere.Tetens); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTetens, c.Atmosphere.Tetens)
	}
	return nil
}

// BuildAtmosphere converts the scenario atmosphere to SI and constructs it.
// Out-of-range humidity is clamped and reported through logger. An
// unrecognised tetens name falls back to the compat coefficients; Validate
// rejects it.
func (c *Config) BuildAtmosphere(logger logging.Logger) atmosphere.Atmosphere {
	a := c.Atmosphere
	tetens, _ := atmosphere.ParseTetens(a.Tetens)
	return atmosphere.New(
		units.CelsiusToKelvin(a.TemperatureC),
		a.Humidity,
		a.Elevation,
		a.Wind.Vector(),
		atmosphere.WithLogger(logger),
		atmosphere.WithTetens(tetens),
	)
}

func (c *Config) BuildProjectile() (*projectile.Projectile, error) {
	model, err := projectile.ParseDragModel(c.Run.DragModel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDragModel, c.Run.DragModel)
	}

	pc := c.Projectile
	p := projectile.New()
	p.Mass = pc.Mass
	p.Radius = pc.Radius
	p.DragCoefficient = pc.DragCoefficient
	p.MagnusCoefficient = pc.MagnusCoefficient
	p.DragModel = model
	p.Position = pc.Position.Vector()
	p.Spin = pc.Spin.Vector()

	if pc.Velocity != nil {
		p.SetVelocity(pc.Velocity.Vector())
	} else {
		p.SetSpeedThetaPhi(pc.Speed, pc.ThetaDeg*units.Degrees, pc.PhiDeg*units.Degrees)
	}
	return p, nil
}

func (c *Config) TrajectoryOptions() ([]projectile.TrajectoryOption, error) {
	term, err := projectile.ParseTermination(c.Run.Termination)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTermination, c.Run.Termination)
	}
	stepper, err := projectile.ParseStepper(c.Run.Stepper)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStepper, c.Run.Stepper)
	}
	opts := []projectile.TrajectoryOption{
		projectile.WithTermination(term),
		projectile.WithStepper(stepper),
	}
	if c.Run.MaxSteps > 0 {
		opts = append(opts, projectile.WithMaxSteps(c.Run.MaxSteps))
	}
	return opts, nil
}
