package config

import (
	"flag"
	"fmt"
	"math"
	"strings"
)

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagWidth         = flag.Int("width", 0, "Map width in tiles")
	flagHeight        = flag.Int("height", 0, "Map height in tiles")
	flagSeed          = flag.Uint64("seed", 0, "World seed (0 draws a random seed)")
	flagSeaLevel      = flag.Float64("sea-level", 0, "Sea level in [-1,1]")
	flagVolcanic      = flag.Float64("volcanic", 0, "Volcanic intensity in [0,1]")
	flagPlanet        = flag.String("planet", "", "Planet archetype: terran, volcanic, frozen, caustic, barren or random")
	flagCircumference = flag.Float64("circumference", 0, "Planet circumference in km")
	flagBackend       = flag.String("noise", "", "Noise backend: opensimplex or perlin")
	flagWorkers       = flag.Int("workers", 0, "Generation workers (0 = one per CPU)")
	flagOut           = flag.String("out", "", "Output root directory")
	flagFormats       = flag.String("formats", "", "Comma-separated export formats")
	flagLogFile       = flag.String("log-file", "", "Also write logs to this file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags copies explicitly set flags over the config. Unset flags leave
// file and default values untouched, so a flag's zero value can still be
// chosen deliberately. Seeds wider than 32 bits are an error, not a
// truncation.
func applyFlags(cfg *Config) error {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["width"] {
		cfg.World.Width = *flagWidth
	}
	if set["height"] {
		cfg.World.Height = *flagHeight
	}
	if set["seed"] {
		if *flagSeed > math.MaxUint32 {
			return fmt.Errorf("seed %d does not fit in 32 bits", *flagSeed)
		}
		cfg.World.Seed = uint32(*flagSeed)
	}
	if set["sea-level"] {
		cfg.World.SeaLevel = *flagSeaLevel
	}
	if set["volcanic"] {
		cfg.World.VolcanicIntensity = *flagVolcanic
	}
	if set["planet"] {
		cfg.World.Planet = *flagPlanet
	}
	if set["circumference"] {
		cfg.World.CircumferenceKm = *flagCircumference
	}
	if set["noise"] {
		cfg.World.NoiseBackend = *flagBackend
	}
	if set["workers"] {
		cfg.World.Workers = *flagWorkers
	}
	if set["out"] {
		cfg.Output.Dir = *flagOut
	}
	if set["formats"] {
		cfg.Output.Formats = splitFormats(*flagFormats)
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	return nil
}

// splitFormats turns a comma-separated flag value into a clean slice.
func splitFormats(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
