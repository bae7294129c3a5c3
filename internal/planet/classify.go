package planet

// Offsets returns the archetype's climate deltas applied before
// classification: temperature, moisture and volcanic-zone shifts.
func (pt PlanetType) Offsets() (dt, dm, dvz float64) {
	switch pt {
	case Volcanic:
		return 0.45, -0.55, 0.50
	case Frozen:
		return -0.55, 0.15, -0.30
	case Caustic:
		return 0.10, 0.55, 0.00
	case Barren:
		return 0.00, -0.65, -0.40
	default:
		return 0, 0, 0
	}
}

// Classify maps one tile's climate sample to a biome. The cascade runs in
// three stages: altitude banding, volcanic override, archetype remap.
// Elevation is relative to sea level, temperature sits in [0,1], moisture in
// [-1,1] and volcanicZone in [0,1].
func Classify(elevation, moisture, temperature, volcanicZone float64, pt PlanetType) Biome {
	base := altitudeBiome(elevation, moisture, temperature)
	base = applyVolcanic(base, elevation, volcanicZone)
	return Remap(base, pt)
}

// altitudeBiome picks the Terran base biome from the altitude bands.
func altitudeBiome(e, m, t float64) Biome {
	switch {
	case e < -0.45:
		return BiomeDeepOcean
	case e < -0.15:
		return BiomeOcean
	case e < 0:
		return shoreBiome(m, t)
	case e > 0.7:
		return highlandBiome(e, t)
	default:
		return landBiome(m, t)
	}
}

// shoreBiome covers the shallow band -0.15 <= e < 0.
func shoreBiome(m, t float64) Biome {
	switch {
	case t < 0.15:
		return BiomeIceCap
	case m > 0.3:
		return BiomeWetland
	default:
		return BiomeBeach
	}
}

// highlandBiome covers e > 0.7. Cold or extreme peaks carry snow.
func highlandBiome(e, t float64) Biome {
	if t < 0.35 || e > 0.88 {
		return BiomeSnow
	}
	return BiomeMountain
}

// landBiome covers the habitable band 0 <= e <= 0.7, split by temperature
// then moisture.
func landBiome(m, t float64) Biome {
	switch {
	case t < 0.15:
		return BiomeIceCap
	case t < 0.30:
		if m > 0.2 {
			return BiomeTaiga
		}
		return BiomeTundra
	case t < 0.55:
		switch {
		case m < -0.1:
			return BiomeShrubland
		case m > 0.35:
			return BiomeForest
		default:
			return BiomePlain
		}
	default:
		switch {
		case m < -0.05:
			return BiomeDesert
		case m < 0.30:
			return BiomeSavanna
		default:
			return BiomeJungle
		}
	}
}

// applyVolcanic overrides the base biome where volcanic activity is strong
// enough. Rules are checked top to bottom; the first match wins. A zone value
// at or below zero leaves the base untouched.
func applyVolcanic(b Biome, e, vz float64) Biome {
	if vz <= 0 {
		return b
	}
	peak := b == BiomeMountain || b == BiomeSnow
	switch {
	case peak && e > 0.80 && vz > 0.55:
		return BiomeVolcano
	case peak && vz > 0.30:
		return BiomeLavaField
	case (peak || b == BiomeShrubland || b == BiomePlain || b == BiomeTundra) &&
		e > 0.30 && vz > 0.15:
		return BiomeAshLand
	default:
		return b
	}
}

// Remap translates a biome into the archetype's palette. Terran is the
// identity; biomes not listed for an archetype pass through unchanged, which
// keeps Mountain and Volcano stable everywhere.
func Remap(b Biome, pt PlanetType) Biome {
	switch pt {
	case Volcanic:
		switch b {
		case BiomeDeepOcean, BiomeOcean:
			return BiomeMagmaSea
		case BiomeBeach, BiomeWetland, BiomeForest, BiomeJungle, BiomeTaiga:
			return BiomeAshLand
		case BiomePlain, BiomeShrubland, BiomeSavanna, BiomeDesert,
			BiomeIceCap, BiomeTundra, BiomeSnow, BiomeGlacialPlain:
			return BiomeScorchedWaste
		}
	case Frozen:
		switch b {
		case BiomeDeepOcean, BiomeOcean, BiomeMagmaSea:
			return BiomeFrozenOcean
		case BiomeBeach, BiomeWetland:
			return BiomeIceCap
		case BiomePlain, BiomeShrubland, BiomeSavanna, BiomeDesert,
			BiomeLavaField, BiomeAshLand, BiomeScorchedWaste:
			return BiomeGlacialPlain
		case BiomeForest, BiomeJungle:
			return BiomeTaiga
		}
	case Caustic:
		switch b {
		case BiomeDeepOcean, BiomeOcean:
			return BiomeCausticLake
		case BiomeBeach, BiomeWetland, BiomeForest, BiomeJungle, BiomeTaiga:
			return BiomeToxicSwamp
		case BiomePlain, BiomeShrubland, BiomeSavanna, BiomeTundra,
			BiomeDesert, BiomeIceCap, BiomeSnow, BiomeGlacialPlain:
			return BiomeAcidFlatland
		}
	case Barren:
		switch b {
		case BiomeDeepOcean, BiomeOcean, BiomeCausticLake, BiomeFrozenOcean,
			BiomeBeach, BiomeWetland, BiomeToxicSwamp,
			BiomeLavaField, BiomeAshLand, BiomeScorchedWaste, BiomeSnow:
			return BiomeRockyWaste
		case BiomePlain, BiomeShrubland, BiomeSavanna, BiomeDesert,
			BiomeTundra, BiomeIceCap, BiomeGlacialPlain, BiomeAcidFlatland,
			BiomeForest, BiomeJungle, BiomeTaiga:
			return BiomeDustPlain
		}
	}
	return b
}
