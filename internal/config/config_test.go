package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"planetgen/internal/planet"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.World.Width != 360 {
		t.Errorf("expected width 360, got %d", cfg.World.Width)
	}
	if cfg.World.Height != 180 {
		t.Errorf("expected height 180, got %d", cfg.World.Height)
	}
	if cfg.World.Seed != 0 {
		t.Errorf("expected seed 0 (random), got %d", cfg.World.Seed)
	}
	if cfg.World.SeaLevel != 0.2 {
		t.Errorf("expected sea level 0.2, got %f", cfg.World.SeaLevel)
	}
	if cfg.World.VolcanicIntensity != 0.3 {
		t.Errorf("expected volcanic intensity 0.3, got %f", cfg.World.VolcanicIntensity)
	}
	if cfg.World.Planet != "terran" {
		t.Errorf("expected planet 'terran', got %s", cfg.World.Planet)
	}
	if cfg.World.CircumferenceKm != 40075 {
		t.Errorf("expected circumference 40075, got %f", cfg.World.CircumferenceKm)
	}
	if cfg.World.NoiseBackend != "opensimplex" {
		t.Errorf("expected backend 'opensimplex', got %s", cfg.World.NoiseBackend)
	}

	if cfg.Output.Dir != "worlds" {
		t.Errorf("expected output dir 'worlds', got %s", cfg.Output.Dir)
	}
	wantFormats := []string{"png", "legend", "json"}
	if len(cfg.Output.Formats) != len(wantFormats) {
		t.Fatalf("expected formats %v, got %v", wantFormats, cfg.Output.Formats)
	}
	for i, f := range wantFormats {
		if cfg.Output.Formats[i] != f {
			t.Errorf("expected formats %v, got %v", wantFormats, cfg.Output.Formats)
			break
		}
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "planetgen.yaml")

	yamlContent := `
world:
  width: 720
  height: 360
  seed: 99
  sea_level: -0.1
  planet: "frozen"
  noise_backend: "perlin"

output:
  dir: "out"
  formats: ["svg", "json"]

logging:
  level: "debug"
  log_file: "gen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.World.Width != 720 || cfg.World.Height != 360 {
		t.Errorf("expected 720x360, got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.World.Seed)
	}
	if cfg.World.SeaLevel != -0.1 {
		t.Errorf("expected sea level -0.1, got %f", cfg.World.SeaLevel)
	}
	if cfg.World.Planet != "frozen" {
		t.Errorf("expected planet 'frozen', got %s", cfg.World.Planet)
	}
	if cfg.World.NoiseBackend != "perlin" {
		t.Errorf("expected backend 'perlin', got %s", cfg.World.NoiseBackend)
	}
	// Values the file does not mention keep their defaults.
	if cfg.World.VolcanicIntensity != 0.3 {
		t.Errorf("expected volcanic intensity 0.3, got %f", cfg.World.VolcanicIntensity)
	}
	if cfg.World.CircumferenceKm != 40075 {
		t.Errorf("expected circumference 40075, got %f", cfg.World.CircumferenceKm)
	}

	if cfg.Output.Dir != "out" {
		t.Errorf("expected output dir 'out', got %s", cfg.Output.Dir)
	}
	if len(cfg.Output.Formats) != 2 || cfg.Output.Formats[0] != "svg" {
		t.Errorf("expected formats [svg json], got %v", cfg.Output.Formats)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "gen.log" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
world:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/planetgen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestGenParams(t *testing.T) {
	cfg := Default()
	cfg.World.Seed = 7
	cfg.World.Planet = "Caustic"

	p, warnings, err := cfg.GenParams()
	if err != nil {
		t.Fatalf("GenParams: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if p.Width != 360 || p.Height != 180 || p.Seed != 7 {
		t.Errorf("params not copied: %+v", p)
	}
	if p.PlanetType != planet.Caustic {
		t.Errorf("expected Caustic, got %v", p.PlanetType)
	}
}

func TestGenParamsClamping(t *testing.T) {
	cfg := Default()
	cfg.World.SeaLevel = 2.5
	cfg.World.VolcanicIntensity = -0.4
	cfg.World.CircumferenceKm = -10

	p, warnings, err := cfg.GenParams()
	if err != nil {
		t.Fatalf("GenParams: %v", err)
	}
	if p.SeaLevel != 1 {
		t.Errorf("sea level not clamped: %f", p.SeaLevel)
	}
	if p.VolcanicIntensity != 0 {
		t.Errorf("volcanic intensity not clamped: %f", p.VolcanicIntensity)
	}
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", warnings)
	}
}

func TestGenParamsRejectsUnresolvedPlanet(t *testing.T) {
	cfg := Default()
	cfg.World.Planet = "random"
	if _, _, err := cfg.GenParams(); err == nil {
		t.Error("GenParams accepted an unresolved random planet")
	}

	cfg.World.Planet = "gaseous"
	if _, _, err := cfg.GenParams(); err == nil {
		t.Error("GenParams accepted an unknown planet")
	}
}

func TestSplitFormats(t *testing.T) {
	got := splitFormats(" png , svg ,,json ")
	want := []string{"png", "svg", "json"}
	if len(got) != len(want) {
		t.Fatalf("splitFormats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitFormats = %v, want %v", got, want)
		}
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "planetgen.yaml")

	yamlContent := `
world:
  width: 720
  height: 360
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flags mark themselves as set through flag.Set, which applyFlags
	// observes via flag.Visit.
	if err := flag.Set("config", configPath); err != nil {
		t.Fatalf("set config flag: %v", err)
	}
	if err := flag.Set("width", "1024"); err != nil {
		t.Fatalf("set width flag: %v", err)
	}
	if err := flag.Set("sea-level", "0"); err != nil {
		t.Fatalf("set sea-level flag: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.World.Width != 1024 {
		t.Errorf("expected width 1024 from flag, got %d", cfg.World.Width)
	}
	if cfg.World.Height != 360 {
		t.Errorf("expected height 360 from file, got %d", cfg.World.Height)
	}
	// An explicit zero flag beats the non-zero default.
	if cfg.World.SeaLevel != 0 {
		t.Errorf("expected sea level 0 from flag, got %f", cfg.World.SeaLevel)
	}
}

func TestLoadSeedRange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "planetgen.yaml")
	if err := os.WriteFile(configPath, []byte("world:\n  width: 64\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := flag.Set("config", configPath); err != nil {
		t.Fatalf("set config flag: %v", err)
	}

	// One past the 32-bit maximum must fail instead of wrapping to 0,
	// which would silently turn a named seed into a random one.
	if err := flag.Set("seed", "4294967296"); err != nil {
		t.Fatalf("set seed flag: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a seed beyond the 32-bit range")
	}

	if err := flag.Set("seed", "4294967295"); err != nil {
		t.Fatalf("set seed flag: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.World.Seed != 4294967295 {
		t.Errorf("expected seed 4294967295, got %d", cfg.World.Seed)
	}
}
