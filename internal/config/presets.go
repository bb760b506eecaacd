package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"baseball": {
		Name:       "baseball",
		Atmosphere: AtmosphereConfig{TemperatureC: 22, Humidity: 0.5, Elevation: 10},
		Projectile: ProjectileConfig{
			Mass: 0.145, Radius: 0.0366, DragCoefficient: 0.3, MagnusCoefficient: 1e-4,
			Position: Vec3{Z: 1.8}, Spin: Vec3{Y: -200}, Speed: 45, ThetaDeg: 30,
		},
		Run: RunConfig{MaxTime: 10, DragModel: "vector", Termination: "end-height"},
	},
	"golf": {
		Name:       "golf",
		Atmosphere: AtmosphereConfig{TemperatureC: 18, Humidity: 0.6, Wind: Vec3{X: -3}},
		Projectile: ProjectileConfig{
			Mass: 0.0459, Radius: 0.0214, DragCoefficient: 0.25, MagnusCoefficient: 5e-5,
			Spin: Vec3{Y: -300}, Speed: 70, ThetaDeg: 12,
		},
		Run: RunConfig{MaxTime: 12, DragModel: "vector", Termination: "end-height"},
	},
	"cannonball": {
		Name:       "cannonball",
		Atmosphere: AtmosphereConfig{TemperatureC: 10, Humidity: 0.8, Elevation: 50},
		Projectile: ProjectileConfig{
			Mass: 5.4, Radius: 0.055, DragCoefficient: 0.47,
			Speed: 300, ThetaDeg: 40,
		},
		Run: RunConfig{MaxTime: 60, DragModel: "per-axis", Termination: "compat"},
	},
	"vacuum": {
		Name:       "vacuum",
		Atmosphere: AtmosphereConfig{TemperatureC: 15},
		Projectile: ProjectileConfig{
			Mass: 1, Velocity: &Vec3{X: 10, Z: 20},
		},
		Run: RunConfig{MaxTime: 5, DragModel: "per-axis", Termination: "compat"},
	},
}

// GetPreset returns a copy of the named preset so callers may edit it.
func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c := *cfg
	if cfg.Projectile.Velocity != nil {
		v := *cfg.Projectile.Velocity
		c.Projectile.Velocity = &v
	}
	return &c, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
