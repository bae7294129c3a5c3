// Package planet defines the immutable world model produced by generation:
// tiles, the biome catalogue, planet archetypes and the classification
// cascade that assigns a biome to every cell.
package planet

import (
	"fmt"
	"strings"
)

// PlanetType enumerates the five fixed world archetypes. Each archetype
// carries a climate-offset triple and a biome remap table; Terran is the
// neutral baseline.
type PlanetType uint8

const (
	Terran PlanetType = iota
	Volcanic
	Frozen
	Caustic
	Barren

	planetTypeCount
)

var planetTypeNames = [planetTypeCount]string{
	Terran:   "Terran",
	Volcanic: "Volcanic",
	Frozen:   "Frozen",
	Caustic:  "Caustic",
	Barren:   "Barren",
}

// String returns the archetype name, e.g. "Terran".
func (pt PlanetType) String() string {
	if pt >= planetTypeCount {
		return fmt.Sprintf("PlanetType(%d)", uint8(pt))
	}
	return planetTypeNames[pt]
}

// MarshalText encodes the archetype as its name for JSON and YAML output.
func (pt PlanetType) MarshalText() ([]byte, error) {
	if pt >= planetTypeCount {
		return nil, fmt.Errorf("invalid planet type %d", uint8(pt))
	}
	return []byte(planetTypeNames[pt]), nil
}

// UnmarshalText parses an archetype name, case-insensitively.
func (pt *PlanetType) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanetType(string(text))
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// ParsePlanetType resolves an archetype from its name, ignoring case.
func ParsePlanetType(s string) (PlanetType, error) {
	for i, name := range planetTypeNames {
		if strings.EqualFold(s, name) {
			return PlanetType(i), nil
		}
	}
	return Terran, fmt.Errorf("unknown planet type %q", s)
}

// AllPlanetTypes lists every archetype in declaration order.
func AllPlanetTypes() []PlanetType {
	return []PlanetType{Terran, Volcanic, Frozen, Caustic, Barren}
}

// Tile is one grid cell of a generated world. Tiles are created exactly once
// by the assembler and never mutated afterwards.
type Tile struct {
	Q           int     `json:"q"`
	R           int     `json:"r"`
	Elevation   float64 `json:"elevation"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`
	Biome       Biome   `json:"biome"`
}

// World is the complete result of one generation pass: the originating
// parameters plus Width*Height tiles stored column-major (index = q*Height+r,
// outer loop over columns). A World is never mutated after assembly.
type World struct {
	Width             int        `json:"width"`
	Height            int        `json:"height"`
	Seed              uint32     `json:"seed"`
	PlanetType        PlanetType `json:"planet_type"`
	SeaLevel          float64    `json:"sea_level"`
	VolcanicIntensity float64    `json:"volcanic_intensity"`
	CircumferenceKm   float64    `json:"circumference_km"`
	GravityModifier   float64    `json:"gravity_modifier"`
	Tiles             []Tile     `json:"tiles"`
}

// Index returns the linear tile index for coordinates (q, r).
func (w *World) Index(q, r int) int { return q*w.Height + r }

// InBounds reports whether (q, r) addresses a cell of this world.
func (w *World) InBounds(q, r int) bool {
	return q >= 0 && r >= 0 && q < w.Width && r < w.Height
}

// TileAt returns the tile at (q, r). The second value is false when the
// coordinates fall outside the grid.
func (w *World) TileAt(q, r int) (Tile, bool) {
	if !w.InBounds(q, r) {
		return Tile{}, false
	}
	return w.Tiles[w.Index(q, r)], true
}

// ElevationAt returns the stored elevation at (q, r), or false when out of
// bounds. Contour renderers probe neighbours through this.
func (w *World) ElevationAt(q, r int) (float64, bool) {
	if !w.InBounds(q, r) {
		return 0, false
	}
	return w.Tiles[w.Index(q, r)].Elevation, true
}

// BiomeCounts tallies how many tiles carry each biome.
func (w *World) BiomeCounts() map[Biome]int {
	counts := make(map[Biome]int)
	for _, tile := range w.Tiles {
		counts[tile.Biome]++
	}
	return counts
}

// BiomesPresent lists the distinct biomes on the map in canonical order.
func (w *World) BiomesPresent() []Biome {
	counts := w.BiomeCounts()
	present := make([]Biome, 0, len(counts))
	for b := Biome(0); b < biomeCount; b++ {
		if counts[b] > 0 {
			present = append(present, b)
		}
	}
	return present
}
