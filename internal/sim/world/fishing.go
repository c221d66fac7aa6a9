package world

import (
	"math/rand"

	"farmstead.gg/internal/sim/catalogs"
)

// rarityWeights is the fixed selection weight per rarity tier 0..3.
var rarityWeights = [4]float64{1.0, 0.3, 0.1, 0.02}

// BaitInfo modifies the catch roll; the zero value is "no bait".
type BaitInfo struct {
	IgnoreRestrictions bool
	RarityBoost        float64
}

// pendingCatch bridges fish:cast and fish:reel.
type pendingCatch struct {
	FishID   string
	Rarity   int
	WaitTime float64
	Nibbles  int
}

// rollCatch filters the fish table by location, skill, season and time, then
// weight-samples one candidate. Returns nil on a miss (no eligible fish).
func rollCatch(rng *rand.Rand, table []catalogs.FishDef, location string, fishingLevel int, bait BaitInfo, season int, hour float64, isRaining bool) *catalogs.FishDef {
	candidates := make([]catalogs.FishDef, 0, len(table))
	for _, f := range table {
		if f.Location != location || f.MinLevel > fishingLevel {
			continue
		}
		if !bait.IgnoreRestrictions {
			if !seasonMatches(f.Seasons, season) {
				continue
			}
			if !timeMatches(f.Time, hour, isRaining) {
				continue
			}
		}
		candidates = append(candidates, f)
	}
	if len(candidates) == 0 {
		return nil
	}

	total := 0.0
	weights := make([]float64, len(candidates))
	for i, f := range candidates {
		wgt := rarityWeights[f.Rarity]
		if f.Rarity >= 1 && bait.RarityBoost > 0 {
			wgt *= 1 + bait.RarityBoost
		}
		weights[i] = wgt
		total += wgt
	}

	roll := rng.Float64() * total
	for i := range candidates {
		roll -= weights[i]
		if roll <= 0 {
			return &candidates[i]
		}
	}
	// Floating-point rounding can exhaust the loop; falling back to the first
	// candidate keeps the result total.
	return &candidates[0]
}

func seasonMatches(seasons []int, season int) bool {
	if len(seasons) == 0 {
		return true
	}
	for _, s := range seasons {
		if s == season {
			return true
		}
	}
	return false
}

// timeMatches resolves a fish's time tag against the current hour and
// weather. Day is 06:00-20:00; "rain" requires active rain regardless of hour.
func timeMatches(tag string, hour float64, isRaining bool) bool {
	switch tag {
	case "day":
		return hour >= 6 && hour < 20
	case "night":
		return hour < 6 || hour >= 20
	case "rain":
		return isRaining
	default: // "any"
		return true
	}
}

// rollBiteParams derives the wait/nibble parameters the client mini-game
// animates. Higher rarity means a longer, twitchier wait.
func rollBiteParams(rng *rand.Rand, rarity int) (waitTime float64, nibbles int) {
	waitTime = (2 + float64(rarity)*0.5) + (1 + rng.Float64()*2)
	nibbles = 1 + int(rng.Float64()*float64(1+rarity))
	return waitTime, nibbles
}
