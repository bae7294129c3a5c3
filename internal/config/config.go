// Package config resolves planetgen settings from defaults, an optional
// YAML file and command-line flags, in that priority order.
package config

import (
	"fmt"
	"strings"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

// PlanetRandom is the archetype name that asks the CLI to draw one from the
// world seed. It must be resolved to a concrete archetype before GenParams.
const PlanetRandom = "random"

// Config holds all planetgen settings.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// WorldConfig mirrors the generation parameters.
type WorldConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Seed              uint32  `yaml:"seed"` // 0 draws a random seed
	SeaLevel          float64 `yaml:"sea_level"`
	VolcanicIntensity float64 `yaml:"volcanic_intensity"`
	Planet            string  `yaml:"planet"` // archetype name, or "random"
	CircumferenceKm   float64 `yaml:"circumference_km"`
	NoiseBackend      string  `yaml:"noise_backend"`
	Workers           int     `yaml:"workers"`
}

// OutputConfig controls where output lands and which formats render.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config seeded from the standard generation parameters.
func Default() *Config {
	p := gen.DefaultParams()
	return &Config{
		World: WorldConfig{
			Width:             p.Width,
			Height:            p.Height,
			Seed:              0,
			SeaLevel:          p.SeaLevel,
			VolcanicIntensity: p.VolcanicIntensity,
			Planet:            strings.ToLower(p.PlanetType.String()),
			CircumferenceKm:   p.CircumferenceKm,
			NoiseBackend:      p.NoiseBackend,
		},
		Output: OutputConfig{
			Dir:     "worlds",
			Formats: []string{"png", "legend", "json"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// GenParams converts the world section into generation parameters. Values
// outside their documented ranges are clamped; one warning string per
// adjustment is returned so the caller can log them once logging is up.
func (c *Config) GenParams() (gen.Params, []string, error) {
	var warnings []string
	w := c.World

	p := gen.DefaultParams()
	p.Width = w.Width
	p.Height = w.Height
	p.Seed = w.Seed
	p.CircumferenceKm = w.CircumferenceKm
	p.NoiseBackend = w.NoiseBackend
	p.Workers = w.Workers

	p.SeaLevel = w.SeaLevel
	if p.SeaLevel < -1 || p.SeaLevel > 1 {
		clamped := clampRange(p.SeaLevel, -1, 1)
		warnings = append(warnings,
			fmt.Sprintf("sea_level %.2f outside [-1,1], clamped to %.2f", p.SeaLevel, clamped))
		p.SeaLevel = clamped
	}

	p.VolcanicIntensity = w.VolcanicIntensity
	if p.VolcanicIntensity < 0 || p.VolcanicIntensity > 1 {
		clamped := clampRange(p.VolcanicIntensity, 0, 1)
		warnings = append(warnings,
			fmt.Sprintf("volcanic_intensity %.2f outside [0,1], clamped to %.2f",
				p.VolcanicIntensity, clamped))
		p.VolcanicIntensity = clamped
	}

	if strings.EqualFold(w.Planet, PlanetRandom) {
		return gen.Params{}, nil, fmt.Errorf("planet %q must be resolved to an archetype before generation", w.Planet)
	}
	pt, err := planet.ParsePlanetType(w.Planet)
	if err != nil {
		return gen.Params{}, nil, err
	}
	p.PlanetType = pt

	if p.CircumferenceKm <= 0 {
		warnings = append(warnings,
			fmt.Sprintf("circumference_km %.0f is not positive; noise scale falls back to the 1 km floor",
				p.CircumferenceKm))
	}

	return p, warnings, nil
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
