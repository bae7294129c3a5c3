// Package gen turns a parameter set into a fully populated world: it projects
// grid cells onto a unit sphere, synthesizes climate signals from layered
// noise and classifies every cell into a biome.
package gen

import (
	"fmt"
	"math"
	"runtime"

	"planetgen/internal/planet"
	"planetgen/pkg/noise"
)

// Params configures one generation pass.
type Params struct {
	Width  int
	Height int
	Seed   uint32

	// SeaLevel shifts the classification waterline in [-1,1]. Positive
	// values drown more terrain, negative values expose more land.
	SeaLevel float64

	// VolcanicIntensity in [0,1] slides the volcanic-zone threshold;
	// 0 disables volcanic terrain entirely.
	VolcanicIntensity float64

	PlanetType planet.PlanetType

	// CircumferenceKm sets the planet size. Earth is 40075; larger planets
	// get broader continents and stronger gravity, which flattens relief.
	CircumferenceKm float64

	// NoiseBackend selects the gradient-noise implementation, one of the
	// noise.Backend* constants.
	NoiseBackend string

	// Workers caps generation concurrency. Zero means one worker per CPU.
	Workers int
}

// DefaultParams returns an Earth-sized Terran baseline.
func DefaultParams() Params {
	return Params{
		Width:             360,
		Height:            180,
		SeaLevel:          0.2,
		VolcanicIntensity: 0.3,
		PlanetType:        planet.Terran,
		CircumferenceKm:   noise.EarthCircumferenceKm,
		NoiseBackend:      noise.BackendOpenSimplex,
	}
}

// Validate rejects parameter sets that cannot produce a world. Grid
// dimensions must be positive and the circumference finite; every other
// field is clamped or floored during synthesis instead of rejected.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if math.IsNaN(p.CircumferenceKm) || math.IsInf(p.CircumferenceKm, 0) {
		return fmt.Errorf("circumference_km must be finite, got %v", p.CircumferenceKm)
	}
	return nil
}

// NoiseScale converts planet size into a sampling-frequency multiplier.
// Earth scale is 1.0.
func (p Params) NoiseScale() float64 {
	return noise.Scale(p.CircumferenceKm)
}

// GravityModifier derives surface gravity from planet size, assuming
// constant density so gravity grows linearly with circumference. Clamped to
// [0.1, 5.0]; Earth is 1.0.
func (p Params) GravityModifier() float64 {
	return clamp(p.CircumferenceKm/noise.EarthCircumferenceKm, 0.1, 5.0)
}

func (p Params) workerLimit() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
