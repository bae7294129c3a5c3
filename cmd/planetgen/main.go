// Package main is the entry point for the planetgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"planetgen/internal/config"
	"planetgen/internal/export"
	"planetgen/internal/gen"
	"planetgen/internal/logger"
	"planetgen/internal/planet"
	"planetgen/pkg/core"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// A zero seed means "roll one". The archetype draw below is seeded by
	// the final seed, so re-running with a reported seed reproduces the
	// whole world including the rolled planet type.
	if cfg.World.Seed == 0 {
		cfg.World.Seed = core.RandomSeed()
	}
	if strings.EqualFold(cfg.World.Planet, config.PlanetRandom) {
		types := planet.AllPlanetTypes()
		pick := types[core.NewRNG(int64(cfg.World.Seed)).IntN(len(types))]
		cfg.World.Planet = pick.String()
		logger.Info("rolled planet type", zap.Stringer("planet", pick))
	}

	params, warnings, err := cfg.GenParams()
	if err != nil {
		logger.Error("invalid parameters", zap.Error(err))
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	// Resolve formats up front so a typo fails before the generation run.
	renders := make([]export.Format, 0, len(cfg.Output.Formats))
	needFields := false
	for _, name := range cfg.Output.Formats {
		f, ok := export.Lookup(name)
		if !ok {
			logger.Error("unknown export format",
				zap.String("format", name),
				zap.Strings("available", export.Names()))
			os.Exit(1)
		}
		renders = append(renders, f)
		if f.NeedsFields {
			needFields = true
		}
	}

	logger.Info("generating world",
		zap.Int("width", params.Width),
		zap.Int("height", params.Height),
		zap.Uint32("seed", params.Seed),
		zap.Stringer("planet", params.PlanetType),
		zap.String("backend", params.NoiseBackend))

	start := time.Now()
	world, err := gen.Generate(params)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	var fields []gen.FieldSample
	if needFields {
		if fields, err = gen.SampleFields(params); err != nil {
			logger.Error("field sampling failed", zap.Error(err))
			os.Exit(1)
		}
	}

	dir := filepath.Join(cfg.Output.Dir, strconv.FormatUint(uint64(world.Seed), 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("creating output directory", zap.Error(err))
		os.Exit(1)
	}

	req := export.Request{World: world, Fields: fields, Dir: dir}
	for _, f := range renders {
		if err := f.Render(req); err != nil {
			logger.Error("export failed", zap.String("format", f.Name), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("exported", zap.String("format", f.Name))
	}

	logger.Info("world generated",
		zap.Int("tiles", len(world.Tiles)),
		zap.Int("biomes", len(world.BiomesPresent())),
		zap.String("dir", dir),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
}
