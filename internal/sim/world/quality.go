package world

import "math/rand"

// rollQuality grades a harvest from the farmer's skill with a single draw:
// gold first, then silver, else normal. Chances scale linearly with level.
func rollQuality(rng *rand.Rand, farmingLevel int) Quality {
	goldChance := float64(farmingLevel) * 0.015
	silverChance := float64(farmingLevel) * 0.03
	r := rng.Float64()
	switch {
	case r < goldChance:
		return QualityGold
	case r < goldChance+silverChance:
		return QualitySilver
	default:
		return QualityNormal
	}
}
