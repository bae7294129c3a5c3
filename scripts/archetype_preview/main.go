package main

import (
	"fmt"
	"sort"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

type previewParams struct {
	name            string
	archetype       planet.PlanetType
	seaLevel        float64
	volcanic        float64
	circumferenceKm float64
}

// One console glyph per biome, unique across the catalogue.
var glyphs = [planet.NumBiomes]byte{
	planet.BiomeDeepOcean:     '~',
	planet.BiomeOcean:         '-',
	planet.BiomeBeach:         '.',
	planet.BiomeWetland:       'w',
	planet.BiomeIceCap:        '*',
	planet.BiomeTundra:        't',
	planet.BiomeTaiga:         'T',
	planet.BiomeShrubland:     's',
	planet.BiomePlain:         ',',
	planet.BiomeForest:        'f',
	planet.BiomeSavanna:       'v',
	planet.BiomeDesert:        'd',
	planet.BiomeJungle:        'J',
	planet.BiomeMountain:      '^',
	planet.BiomeSnow:          'S',
	planet.BiomeVolcano:       'V',
	planet.BiomeLavaField:     'L',
	planet.BiomeAshLand:       'a',
	planet.BiomeMagmaSea:      'M',
	planet.BiomeScorchedWaste: 'x',
	planet.BiomeFrozenOcean:   '=',
	planet.BiomeGlacialPlain:  'g',
	planet.BiomeCausticLake:   'c',
	planet.BiomeToxicSwamp:    'p',
	planet.BiomeAcidFlatland:  'A',
	planet.BiomeRockyWaste:    'r',
	planet.BiomeDustPlain:     'u',
}

func main() {
	candidates := []previewParams{
		{
			name:            "terran default",
			archetype:       planet.Terran,
			seaLevel:        0.2,
			volcanic:        0.3,
			circumferenceKm: 40075,
		},
		{
			name:            "volcanic hotworld",
			archetype:       planet.Volcanic,
			seaLevel:        -0.1,
			volcanic:        0.8,
			circumferenceKm: 40075,
		},
		{
			name:            "frozen lowsea",
			archetype:       planet.Frozen,
			seaLevel:        0.0,
			volcanic:        0.1,
			circumferenceKm: 40075,
		},
		{
			name:            "caustic swamp",
			archetype:       planet.Caustic,
			seaLevel:        0.35,
			volcanic:        0.2,
			circumferenceKm: 40075,
		},
		{
			name:            "barren smallworld",
			archetype:       planet.Barren,
			seaLevel:        0.1,
			volcanic:        0.0,
			circumferenceKm: 6786,
		},
	}

	fmt.Printf("previewing %d candidate worlds\n", len(candidates))
	for _, params := range candidates {
		preview(params)
	}
}

func preview(params previewParams) {
	p := gen.DefaultParams()
	p.Width = 100
	p.Height = 30
	p.Seed = 2024
	p.PlanetType = params.archetype
	p.SeaLevel = params.seaLevel
	p.VolcanicIntensity = params.volcanic
	p.CircumferenceKm = params.circumferenceKm

	w, err := gen.Generate(p)
	if err != nil {
		fmt.Printf("%s: generation failed: %v\n", params.name, err)
		return
	}

	fmt.Printf("\n=== %s (planet=%s sea=%+.2f volcanic=%.2f circ=%.0f km gravity=%.2f) ===\n",
		params.name, w.PlanetType, w.SeaLevel, w.VolcanicIntensity, w.CircumferenceKm, w.GravityModifier)

	line := make([]byte, w.Width)
	for r := 0; r < w.Height; r++ {
		for q := 0; q < w.Width; q++ {
			line[q] = glyphs[w.Tiles[q*w.Height+r].Biome]
		}
		fmt.Println(string(line))
	}

	counts := w.BiomeCounts()
	type entry struct {
		biome planet.Biome
		count int
	}
	entries := make([]entry, 0, len(counts))
	for b, c := range counts {
		entries = append(entries, entry{biome: b, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].biome < entries[j].biome
	})

	total := float64(len(w.Tiles))
	for i, e := range entries {
		if i == 6 {
			fmt.Printf("  (+%d more)\n", len(entries)-i)
			break
		}
		fmt.Printf("  %c %-16s %5.1f%%\n", glyphs[e.biome], e.biome.Name(), 100*float64(e.count)/total)
	}
}
