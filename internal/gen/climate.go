package gen

import (
	"math"

	"planetgen/internal/planet"
	"planetgen/pkg/noise"
)

// Seed offsets keep the six noise sources decorrelated while staying
// reproducible from a single world seed.
const (
	seedOffsetElevation = 0
	seedOffsetMoisture  = 1
	seedOffsetContinent = 100
	seedOffsetWarpX     = 200
	seedOffsetWarpY     = 201
	seedOffsetVolcano   = 300
)

// Fixed displacement separating the second warp field from the first.
const (
	warpOffsetX = 5.2
	warpOffsetY = 1.3
	warpOffsetZ = 3.7
)

// FieldSample carries every intermediate signal computed for one cell. The
// assembler keeps the tile-visible subset; the diagnostic map exporter
// renders all of them.
type FieldSample struct {
	WarpX          float64
	WarpY          float64
	Continent      float64
	Mountain       float64
	MountainWeight float64
	Elevation      float64
	BiomeElevation float64
	Moisture       float64
	Temperature    float64
	VolcanicRaw    float64
	VolcanicZone   float64
	Biome          planet.Biome
}

// synthesizer bundles the read-only state shared by every cell of one pass:
// the six noise sources plus the derived planet constants. It is safe for
// concurrent use once constructed.
type synthesizer struct {
	p Params

	elevation noise.Sampler
	moisture  noise.Sampler
	continent noise.Sampler
	warpA     noise.Sampler
	warpB     noise.Sampler
	volcano   noise.Sampler

	scale         float64
	mountainBlend float64
	volcanicFloor float64
	dt, dm, dvz   float64
}

func newSynthesizer(p Params) *synthesizer {
	seed := int64(p.Seed)
	s := &synthesizer{
		p:         p,
		elevation: noise.NewSampler(p.NoiseBackend, seed+seedOffsetElevation),
		moisture:  noise.NewSampler(p.NoiseBackend, seed+seedOffsetMoisture),
		continent: noise.NewSampler(p.NoiseBackend, seed+seedOffsetContinent),
		warpA:     noise.NewSampler(p.NoiseBackend, seed+seedOffsetWarpX),
		warpB:     noise.NewSampler(p.NoiseBackend, seed+seedOffsetWarpY),
		volcano:   noise.NewSampler(p.NoiseBackend, seed+seedOffsetVolcano),
		scale:     p.NoiseScale(),
	}
	s.mountainBlend = mountainBlendFor(p.GravityModifier())
	s.volcanicFloor = 1.0 - clamp(p.VolcanicIntensity, 0, 1)
	s.dt, s.dm, s.dvz = p.PlanetType.Offsets()
	return s
}

// mountainBlendFor compresses relief as surface gravity grows. Earth gravity
// yields the 0.35 baseline; the square root dampens the effect at the
// clamped extremes.
func mountainBlendFor(gravity float64) float64 {
	return 0.35 / math.Sqrt(gravity)
}

// sample computes the full signal set for one cell.
func (s *synthesizer) sample(q, r int) FieldSample {
	x, y, z := project(q, r, s.p.Width, s.p.Height)

	// Twist the sampling coordinates before the ridge pass so coastlines
	// and mountain chains do not follow the raw noise lattice.
	wx := s.warpA.Sample(x*2*s.scale, y*2*s.scale, z*2*s.scale)
	wy := s.warpB.Sample(
		x*2*s.scale+warpOffsetX,
		y*2*s.scale+warpOffsetY,
		z*2*s.scale+warpOffsetZ,
	)
	wvx := x + wx*0.25
	wvy := y + wy*0.25

	// Low-frequency continent mass; all three axes keep it seam-free.
	continent := noise.FBM(s.continent, x*0.8*s.scale, y*0.8*s.scale, z*0.8*s.scale, 5)

	// Ridged peaks blended onto terrain that is already elevated.
	mountain := noise.Ridged(s.elevation, wvx*5*s.scale, wvy*5*s.scale, z*5*s.scale)
	weight := clamp((continent-0.2)*2.5, 0, 1)

	elevation := clamp(continent+mountain*weight*s.mountainBlend, -1, 1)
	biomeElev := clamp(elevation-s.p.SeaLevel, -1, 1)

	moisture := noise.FBM(s.moisture, x*1.5*s.scale, y*1.5*s.scale, z*1.5*s.scale, 4)

	// Low-frequency selector for which mountain chains run volcanic. The
	// floor slides with intensity, so intensity 0 keeps the zone at 0
	// everywhere.
	volcanicRaw := noise.FBM(s.volcano, x*s.scale, y*s.scale, z*s.scale, 3)
	volcanicZone := clamp((volcanicRaw-s.volcanicFloor)*4, 0, 1)

	// Warm equator, cold poles, altitude cooling on top.
	latNorm := float64(r) / float64(s.p.Height)
	temperature := clamp(1-math.Abs(latNorm-0.5)*2-biomeElev*0.3, 0, 1)

	effT := clamp(temperature+s.dt, 0, 1)
	effM := clamp(moisture+s.dm, -1, 1)
	effVZ := clamp(volcanicZone+s.dvz, 0, 1)

	return FieldSample{
		WarpX:          wx,
		WarpY:          wy,
		Continent:      continent,
		Mountain:       mountain,
		MountainWeight: weight,
		Elevation:      elevation,
		BiomeElevation: biomeElev,
		Moisture:       moisture,
		Temperature:    temperature,
		VolcanicRaw:    volcanicRaw,
		VolcanicZone:   volcanicZone,
		Biome:          planet.Classify(biomeElev, effM, effT, effVZ, s.p.PlanetType),
	}
}
