package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type census struct {
	counts [planet.NumBiomes]int
	tiles  int
	ocean  int
}

func main() {
	width := flag.Int("width", 360, "map width for probe runs")
	height := flag.Int("height", 180, "map height for probe runs")
	seed := flag.Uint("seed", 1337, "seed used for deterministic comparison runs")
	baselineOnly := flag.Bool("baseline", false, "only evaluate the defaults, skip overrides")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	base := gen.DefaultParams()
	base.Width = *width
	base.Height = *height
	base.Seed = uint32(*seed)

	baseline, err := measure(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "baseline run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Baseline: %d tiles, %d biomes, ocean %.1f%%\n",
		baseline.tiles, baseline.distinct(), baseline.oceanShare())
	printParams(base)

	if *baselineOnly || len(overrides) == 0 {
		printCensus(baseline, nil)
		return
	}

	probed := base
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		applyOverride(&probed, parts[0], parts[1])
	}

	result, err := measure(probed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nProbed (%d overrides): %d tiles, %d biomes, ocean %.1f%%\n",
		len(overrides), result.tiles, result.distinct(), result.oceanShare())
	printParams(probed)
	printCensus(result, &baseline)
}

func measure(p gen.Params) (census, error) {
	w, err := gen.Generate(p)
	if err != nil {
		return census{}, err
	}
	c := census{tiles: len(w.Tiles)}
	for _, t := range w.Tiles {
		c.counts[t.Biome]++
		if t.Elevation-w.SeaLevel < -0.15 {
			c.ocean++
		}
	}
	return c, nil
}

func (c census) distinct() int {
	n := 0
	for _, v := range c.counts {
		if v > 0 {
			n++
		}
	}
	return n
}

func (c census) oceanShare() float64 {
	if c.tiles == 0 {
		return 0
	}
	return 100 * float64(c.ocean) / float64(c.tiles)
}

func (c census) share(b planet.Biome) float64 {
	if c.tiles == 0 {
		return 0
	}
	return 100 * float64(c.counts[b]) / float64(c.tiles)
}

// printCensus lists every biome present in either run. With a baseline the
// delta column shows how each share moved under the overrides.
func printCensus(c census, baseline *census) {
	fmt.Println("Census:")
	for _, b := range planet.AllBiomes() {
		present := c.counts[b] > 0
		if baseline != nil && baseline.counts[b] > 0 {
			present = true
		}
		if !present {
			continue
		}
		if baseline == nil {
			fmt.Printf("  %-16s %7d tiles %6.2f%%\n", b.Name(), c.counts[b], c.share(b))
			continue
		}
		delta := c.share(b) - baseline.share(b)
		fmt.Printf("  %-16s %7d tiles %6.2f%% (%+.2f%%)\n", b.Name(), c.counts[b], c.share(b), delta)
	}
}

func applyOverride(p *gen.Params, key, value string) {
	switch key {
	case "width":
		if v, err := strconv.Atoi(value); err == nil {
			p.Width = v
		}
	case "height":
		if v, err := strconv.Atoi(value); err == nil {
			p.Height = v
		}
	case "seed":
		if v, err := strconv.ParseUint(value, 10, 32); err == nil {
			p.Seed = uint32(v)
		}
	case "sea_level":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			p.SeaLevel = v
		}
	case "volcanic_intensity":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			p.VolcanicIntensity = v
		}
	case "planet":
		if pt, err := planet.ParsePlanetType(value); err == nil {
			p.PlanetType = pt
		}
	case "circumference_km":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			p.CircumferenceKm = v
		}
	case "noise_backend":
		p.NoiseBackend = value
	case "workers":
		if v, err := strconv.Atoi(value); err == nil {
			p.Workers = v
		}
	}
}

func printParams(p gen.Params) {
	fmt.Println("Parameters:")
	fmt.Printf("  width=%d\n", p.Width)
	fmt.Printf("  height=%d\n", p.Height)
	fmt.Printf("  seed=%d\n", p.Seed)
	fmt.Printf("  sea_level=%+.2f\n", p.SeaLevel)
	fmt.Printf("  volcanic_intensity=%.2f\n", p.VolcanicIntensity)
	fmt.Printf("  planet=%s\n", p.PlanetType)
	fmt.Printf("  circumference_km=%.0f\n", p.CircumferenceKm)
	fmt.Printf("  gravity=%.2f\n", p.GravityModifier())
	fmt.Printf("  noise_backend=%s\n", p.NoiseBackend)
}
