package planet

import "fmt"

// Biome identifies one of the 27 surface categories a tile can carry.
// Declaration order is the canonical order: exporters sort legends by it and
// the sweep tool prints census rows in it.
type Biome uint8

const (
	BiomeDeepOcean Biome = iota
	BiomeOcean
	BiomeBeach
	BiomeWetland
	BiomeIceCap
	BiomeTundra
	BiomeTaiga
	BiomeShrubland
	BiomePlain
	BiomeForest
	BiomeSavanna
	BiomeDesert
	BiomeJungle
	BiomeMountain
	BiomeSnow
	BiomeVolcano
	BiomeLavaField
	BiomeAshLand
	BiomeMagmaSea
	BiomeScorchedWaste
	BiomeFrozenOcean
	BiomeGlacialPlain
	BiomeCausticLake
	BiomeToxicSwamp
	BiomeAcidFlatland
	BiomeRockyWaste
	BiomeDustPlain

	biomeCount
)

// NumBiomes is the size of the biome catalogue.
const NumBiomes = int(biomeCount)

type biomeInfo struct {
	tag   string // wire name used in JSON output
	name  string // human-readable legend label
	color [3]uint8
}

var biomeTable = [biomeCount]biomeInfo{
	BiomeDeepOcean:     {"DeepOcean", "Deep Ocean", [3]uint8{10, 20, 140}},
	BiomeOcean:         {"Ocean", "Ocean", [3]uint8{30, 70, 200}},
	BiomeBeach:         {"Beach", "Beach", [3]uint8{220, 210, 120}},
	BiomeWetland:       {"Wetland", "Wetland", [3]uint8{90, 140, 80}},
	BiomeIceCap:        {"IceCap", "Ice Cap", [3]uint8{210, 235, 255}},
	BiomeTundra:        {"Tundra", "Tundra", [3]uint8{160, 185, 155}},
	BiomeTaiga:         {"Taiga", "Taiga", [3]uint8{30, 90, 60}},
	BiomeShrubland:     {"Shrubland", "Shrubland", [3]uint8{170, 180, 80}},
	BiomePlain:         {"Plain", "Plain", [3]uint8{100, 200, 80}},
	BiomeForest:        {"Forest", "Forest", [3]uint8{20, 110, 20}},
	BiomeSavanna:       {"Savanna", "Savanna", [3]uint8{210, 190, 60}},
	BiomeDesert:        {"Desert", "Desert", [3]uint8{240, 200, 100}},
	BiomeJungle:        {"Jungle", "Jungle", [3]uint8{0, 90, 20}},
	BiomeMountain:      {"Mountain", "Mountain", [3]uint8{130, 120, 110}},
	BiomeSnow:          {"Snow", "Snow", [3]uint8{245, 245, 250}},
	BiomeVolcano:       {"Volcano", "Volcano", [3]uint8{255, 50, 0}},
	BiomeLavaField:     {"LavaField", "Lava Field", [3]uint8{200, 80, 10}},
	BiomeAshLand:       {"AshLand", "Ash Land", [3]uint8{95, 80, 70}},
	BiomeMagmaSea:      {"MagmaSea", "Magma Sea", [3]uint8{180, 20, 0}},
	BiomeScorchedWaste: {"ScorchedWaste", "Scorched Waste", [3]uint8{70, 35, 15}},
	BiomeFrozenOcean:   {"FrozenOcean", "Frozen Ocean", [3]uint8{140, 195, 235}},
	BiomeGlacialPlain:  {"GlacialPlain", "Glacial Plain", [3]uint8{200, 220, 240}},
	BiomeCausticLake:   {"CausticLake", "Caustic Lake", [3]uint8{60, 170, 40}},
	BiomeToxicSwamp:    {"ToxicSwamp", "Toxic Swamp", [3]uint8{45, 100, 20}},
	BiomeAcidFlatland:  {"AcidFlatland", "Acid Flatland", [3]uint8{165, 185, 60}},
	BiomeRockyWaste:    {"RockyWaste", "Rocky Waste", [3]uint8{110, 103, 90}},
	BiomeDustPlain:     {"DustPlain", "Dust Plain", [3]uint8{195, 168, 110}},
}

// Valid reports whether b is a member of the catalogue.
func (b Biome) Valid() bool { return b < biomeCount }

// String returns the compact wire name, e.g. "DeepOcean".
func (b Biome) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Biome(%d)", uint8(b))
	}
	return biomeTable[b].tag
}

// Name returns the display label used in legends, e.g. "Deep Ocean".
func (b Biome) Name() string {
	if !b.Valid() {
		return b.String()
	}
	return biomeTable[b].name
}

// Color returns the base RGB render color.
func (b Biome) Color() (r, g, bl uint8) {
	if !b.Valid() {
		return 255, 0, 255
	}
	c := biomeTable[b].color
	return c[0], c[1], c[2]
}

// Order returns the canonical sort position of b.
func (b Biome) Order() int { return int(b) }

// MarshalText encodes the biome as its wire name.
func (b Biome) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid biome %d", uint8(b))
	}
	return []byte(biomeTable[b].tag), nil
}

// UnmarshalText parses a wire name produced by MarshalText.
func (b *Biome) UnmarshalText(text []byte) error {
	s := string(text)
	for i := Biome(0); i < biomeCount; i++ {
		if biomeTable[i].tag == s {
			*b = i
			return nil
		}
	}
	return fmt.Errorf("unknown biome %q", s)
}

// AllBiomes lists the full catalogue in canonical order.
func AllBiomes() []Biome {
	all := make([]Biome, biomeCount)
	for i := range all {
		all[i] = Biome(i)
	}
	return all
}
