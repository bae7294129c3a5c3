package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

type scenario struct {
	seed      uint32
	archetype planet.PlanetType
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d planet=%s", s.seed, s.archetype)
}

type sweepResult struct {
	scenario scenario
	counts   [planet.NumBiomes]int
	ocean    int
	tiles    int
	err      error
}

func (r sweepResult) distinct() int {
	n := 0
	for _, c := range r.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

func main() {
	seeds := flag.Int("seeds", 8, "number of consecutive seeds to sweep")
	seedStart := flag.Uint("seed-start", 1, "first seed of the sweep")
	width := flag.Int("width", 360, "world width in tiles")
	height := flag.Int("height", 180, "world height in tiles")
	seaLevel := flag.Float64("sea-level", 0.2, "sea level in [-1,1]")
	volcanic := flag.Float64("volcanic", 0.3, "volcanic intensity in [0,1]")
	backend := flag.String("noise", "opensimplex", "noise backend (opensimplex or perlin)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base := gen.DefaultParams()
	base.Width = *width
	base.Height = *height
	base.SeaLevel = *seaLevel
	base.VolcanicIntensity = *volcanic
	base.NoiseBackend = *backend
	base.Workers = 1 // each sweep worker runs its own single-threaded pass

	types := planet.AllPlanetTypes()

	var sets []scenario
	for i := 0; i < *seeds; i++ {
		for _, pt := range types {
			sets = append(sets, scenario{seed: uint32(*seedStart) + uint32(i), archetype: pt})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d tiles, sea=%.2f volcanic=%.2f)\n",
		len(sets), *workers, *width, *height, *seaLevel, *volcanic)

	jobs := make(chan scenario)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		if res.err != nil {
			fmt.Printf("scenario %s failed: %v\n", res.scenario, res.err)
			continue
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.archetype != all[j].scenario.archetype {
			return all[i].scenario.archetype < all[j].scenario.archetype
		}
		return all[i].scenario.seed < all[j].scenario.seed
	})

	fmt.Printf("\nPer-scenario summary:\n")
	for _, res := range all {
		fmt.Printf("  %-32s biomes=%2d ocean=%5.1f%%\n",
			res.scenario, res.distinct(), 100*float64(res.ocean)/float64(res.tiles))
	}

	// Aggregate tile shares per archetype across every swept seed.
	agg := make([][planet.NumBiomes]int, len(types))
	totals := make([]int, len(types))
	for _, res := range all {
		idx := int(res.scenario.archetype)
		for b, c := range res.counts {
			agg[idx][b] += c
		}
		totals[idx] += res.tiles
	}

	fmt.Printf("\nBiome share by archetype (%% of tiles):\n")
	fmt.Printf("%-16s", "Biome")
	for _, pt := range types {
		fmt.Printf(" %9s", pt)
	}
	fmt.Println()
	for _, b := range planet.AllBiomes() {
		seen := false
		for idx := range types {
			if agg[idx][b] > 0 {
				seen = true
				break
			}
		}
		if !seen {
			continue
		}
		fmt.Printf("%-16s", b.Name())
		for idx := range types {
			share := 0.0
			if totals[idx] > 0 {
				share = 100 * float64(agg[idx][b]) / float64(totals[idx])
			}
			fmt.Printf(" %8.2f%%", share)
		}
		fmt.Println()
	}

	reached := map[planet.Biome]bool{}
	for _, res := range all {
		for b, c := range res.counts {
			if c > 0 {
				reached[planet.Biome(b)] = true
			}
		}
	}
	var missing []string
	for _, b := range planet.AllBiomes() {
		if !reached[b] {
			missing = append(missing, b.Name())
		}
	}

	fmt.Printf("\nCoverage: %d of %d biomes reached (elapsed %s)\n",
		len(reached), planet.NumBiomes, elapsed.Round(time.Millisecond))
	if len(missing) > 0 {
		fmt.Printf("Never seen: %v\n", missing)
	}
}

func runScenario(base gen.Params, sc scenario) sweepResult {
	p := base
	p.Seed = sc.seed
	p.PlanetType = sc.archetype

	w, err := gen.Generate(p)
	if err != nil {
		return sweepResult{scenario: sc, err: err}
	}

	res := sweepResult{scenario: sc, tiles: len(w.Tiles)}
	for _, t := range w.Tiles {
		res.counts[t.Biome]++
		// Below the shore band counts as open water regardless of the
		// archetype's surface palette.
		if t.Elevation-w.SeaLevel < -0.15 {
			res.ocean++
		}
	}
	return res
}
