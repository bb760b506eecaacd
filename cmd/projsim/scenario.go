package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/logging"
	"github.com/san-kum/projsim/internal/projectile"
)

// flight is everything needed to integrate one scenario.
type flight struct {
	cfg  *config.Config
	atm  atmosphere.Atmosphere
	proj *projectile.Projectile
	opts []projectile.TrajectoryOption
}

func (f *flight) title() string {
	if f.cfg.Name != "" {
		return f.cfg.Name
	}
	return "custom"
}

// fresh rebuilds the projectile at its launch state, since integration
// advances it in place.
func (f *flight) fresh() (*projectile.Projectile, error) {
	p, err := f.cfg.BuildProjectile()
	if err != nil {
		return nil, err
	}
	if err := applyParams(p, params); err != nil {
		return nil, err
	}
	return p, nil
}

// resolveScenario layers defaults, then the preset, then the config file, then
// any flags the user set explicitly.
func resolveScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Projectile.Speed = speed
		cfg.Projectile.Velocity = nil
	}
	if flags.Changed("theta") {
		cfg.Projectile.ThetaDeg = theta
		cfg.Projectile.Velocity = nil
	}
	if flags.Changed("phi") {
		cfg.Projectile.PhiDeg = phi
		cfg.Projectile.Velocity = nil
	}
	if flags.Changed("temp") {
		cfg.Atmosphere.TemperatureC = temperature
	}
	if flags.Changed("humidity") {
		cfg.Atmosphere.Humidity = humidity
	}
	if flags.Changed("elevation") {
		cfg.Atmosphere.Elevation = elevation
	}
	if flags.Changed("tetens") {
		cfg.Atmosphere.Tetens = tetens
	}
	if flags.Changed("end-height") {
		cfg.Run.EndHeight = endHeight
	}
	if flags.Changed("max-time") {
		cfg.Run.MaxTime = maxTime
	}
	if flags.Changed("max-steps") {
		cfg.Run.MaxSteps = maxSteps
	}
	if flags.Changed("drag-model") {
		cfg.Run.DragModel = dragModel
	}
	if flags.Changed("termination") {
		cfg.Run.Termination = termination
	}
	if flags.Changed("stepper") {
		cfg.Run.Stepper = stepper
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildFlight(cmd *cobra.Command, logger logging.Logger) (*flight, error) {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return nil, err
	}

	f := &flight{cfg: cfg, atm: cfg.BuildAtmosphere(logger)}
	if f.proj, err = f.fresh(); err != nil {
		return nil, err
	}
	if f.opts, err = cfg.TrajectoryOptions(); err != nil {
		return nil, err
	}
	return f, nil
}

// applyParams sets --set overrides in sorted order so that errors are
// reported deterministically.
func applyParams(p *projectile.Projectile, overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, err := strconv.ParseFloat(overrides[k], 64)
		if err != nil {
			return fmt.Errorf("--set %s: %w", k, err)
		}
		if err := p.SetParam(k, v); err != nil {
			return fmt.Errorf("--set %s: %w", k, err)
		}
	}
	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", config.ErrParameterBounds, p.Mass)
	}
	return nil
}
