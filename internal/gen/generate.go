package gen

import (
	"golang.org/x/sync/errgroup"

	"planetgen/internal/planet"
)

// Generate runs one full pass and returns the assembled world. Cells depend
// only on their own coordinates, so columns fan out across workers; every
// worker writes a disjoint slice range, which keeps the tile sequence in
// column-major order no matter how the columns are scheduled.
func Generate(p Params) (*planet.World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := newSynthesizer(p)
	w := &planet.World{
		Width:             p.Width,
		Height:            p.Height,
		Seed:              p.Seed,
		PlanetType:        p.PlanetType,
		SeaLevel:          p.SeaLevel,
		VolcanicIntensity: p.VolcanicIntensity,
		CircumferenceKm:   p.CircumferenceKm,
		GravityModifier:   p.GravityModifier(),
		Tiles:             make([]planet.Tile, p.Width*p.Height),
	}

	var g errgroup.Group
	g.SetLimit(p.workerLimit())
	for q := 0; q < p.Width; q++ {
		g.Go(func() error {
			base := q * p.Height
			for r := 0; r < p.Height; r++ {
				fs := s.sample(q, r)
				w.Tiles[base+r] = planet.Tile{
					Q:           q,
					R:           r,
					Elevation:   fs.Elevation,
					Moisture:    fs.Moisture,
					Temperature: fs.Temperature,
					Biome:       fs.Biome,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return w, nil
}

// SampleFields recomputes the full signal set for every cell in column-major
// order. The diagnostic map exporter consumes this; Generate itself stores
// only the tile-visible subset.
func SampleFields(p Params) ([]FieldSample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := newSynthesizer(p)
	fields := make([]FieldSample, p.Width*p.Height)

	var g errgroup.Group
	g.SetLimit(p.workerLimit())
	for q := 0; q < p.Width; q++ {
		g.Go(func() error {
			base := q * p.Height
			for r := 0; r < p.Height; r++ {
				fields[base+r] = s.sample(q, r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fields, nil
}
