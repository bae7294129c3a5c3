// Package noise provides the seedable 3D noise primitives the world
// generator samples: two interchangeable gradient-noise backends plus the
// fractal (FBM) and ridged composition helpers built on top of them.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// EarthCircumferenceKm is the equatorial circumference used as the
// noise-scale baseline: a planet of this size samples at scale 1.0.
const EarthCircumferenceKm = 40075.0

// Backend names accepted by NewSampler.
const (
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// Sampler is a stateless, read-only source of continuous 3D gradient noise.
// Sample returns a value in [-1, 1] and is deterministic for a fixed seed.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// NewSampler constructs a Sampler for the named backend. Unknown backend
// names fall back to opensimplex.
func NewSampler(backend string, seed int64) Sampler {
	switch backend {
	case BackendPerlin:
		// alpha/beta are the classic Perlin defaults; a single iteration
		// keeps the backend a plain primitive so FBM owns all layering.
		return &perlinSampler{p: perlin.NewPerlin(2, 2, 1, seed)}
	default:
		return &simplexSampler{n: opensimplex.New(seed)}
	}
}

type simplexSampler struct {
	n opensimplex.Noise
}

func (s *simplexSampler) Sample(x, y, z float64) float64 {
	return s.n.Eval3(x, y, z)
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s *perlinSampler) Sample(x, y, z float64) float64 {
	return s.p.Noise3D(x, y, z)
}

// FBM sums octaves of the sampler at doubling frequency and halving
// amplitude, normalized by the total amplitude. The result stays in
// roughly [-1, 1]. Sampling all three axes keeps the sphere surface free
// of mirror symmetry.
func FBM(s Sampler, x, y, z float64, octaves int) float64 {
	if octaves <= 0 {
		return 0
	}
	var value, maxValue float64
	amplitude := 1.0
	frequency := 1.0
	for range octaves {
		value += s.Sample(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return value / maxValue
}

// Ridged folds signed noise into sharp unsigned peaks: 1 - |sample|,
// in [0, 1]. Used for mountain chains instead of smooth hills.
func Ridged(s Sampler, x, y, z float64) float64 {
	return 1.0 - math.Abs(s.Sample(x, y, z))
}

// Scale converts a planetary circumference into the frequency multiplier
// applied to every noise coordinate. Larger planets sample at a lower
// relative frequency, producing broader continents for the same grid.
// Non-positive circumferences are floored to 1 km.
func Scale(circumferenceKm float64) float64 {
	return EarthCircumferenceKm / math.Max(circumferenceKm, 1.0)
}
