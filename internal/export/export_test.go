package export

import (
	"testing"

	"planetgen/internal/planet"
)

func flatWorld(width, height int, b planet.Biome, elev float64) *planet.World {
	w := &planet.World{
		Width:           width,
		Height:          height,
		Seed:            9,
		PlanetType:      planet.Terran,
		CircumferenceKm: 40075,
		GravityModifier: 1.0,
		Tiles:           make([]planet.Tile, width*height),
	}
	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			w.Tiles[w.Index(q, r)] = planet.Tile{Q: q, R: r, Elevation: elev, Biome: b}
		}
	}
	return w
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"png", "legend", "svg", "json", "noise-maps"} {
		f, ok := Lookup(name)
		if !ok {
			t.Fatalf("format %q not registered", name)
		}
		if f.Render == nil {
			t.Fatalf("format %q has no renderer", name)
		}
	}
	if _, ok := Lookup("bmp"); ok {
		t.Error("Lookup returned an unregistered format")
	}

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names not sorted: %v", names)
		}
	}

	before := len(Names())
	Register(Format{Name: "", Render: renderJSON})
	Register(Format{Name: "broken"})
	if got := len(Names()); got != before {
		t.Errorf("invalid registrations changed the registry: %d -> %d", before, got)
	}
}

func TestTileColorsFlat(t *testing.T) {
	w := flatWorld(3, 2, planet.BiomePlain, 0.3)
	colors := tileColors(w)
	pr, pg, pb := planet.BiomePlain.Color()
	for i, c := range colors {
		if c != [3]uint8{pr, pg, pb} {
			t.Fatalf("flat world tile %d colored %v, want base %v", i, c, [3]uint8{pr, pg, pb})
		}
	}
}

func TestTileColorsContourDarkening(t *testing.T) {
	// Two tiles straddle the -0.45 level, so both darken.
	w := flatWorld(2, 1, planet.BiomeOcean, -0.4)
	w.Tiles[0].Elevation = -0.5
	w.Tiles[0].Biome = planet.BiomeDeepOcean

	colors := tileColors(w)
	darken := func(c uint8) uint8 { return uint8(float64(c) * (1 - contourDarkness)) }

	dr, dg, db := planet.BiomeDeepOcean.Color()
	if want := [3]uint8{darken(dr), darken(dg), darken(db)}; colors[0] != want {
		t.Errorf("deep ocean contour tile = %v, want %v", colors[0], want)
	}
	or, og, ob := planet.BiomeOcean.Color()
	if want := [3]uint8{darken(or), darken(og), darken(ob)}; colors[1] != want {
		t.Errorf("ocean contour tile = %v, want %v", colors[1], want)
	}
}

func TestCrossesContour(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{-0.5, -0.4, true},  // straddles -0.45
		{-0.4, -0.3, false}, // same band
		{0.0, -0.1, true},   // level itself is left-inclusive
		{0.0, 0.1, false},
		{0.0, 0.0, false},
		{-1.0, 1.0, true},
	}
	for _, tc := range cases {
		if got := crossesContour(tc.a, tc.b); got != tc.want {
			t.Errorf("crossesContour(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
