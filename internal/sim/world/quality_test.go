package world

import (
	"math/rand"
	"testing"
)

func TestRollQuality_LevelZeroAlwaysNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if q := rollQuality(rng, 0); q != QualityNormal {
			t.Fatalf("level 0 rolled %v", q)
		}
	}
}

func TestRollQuality_ChancesScaleWithLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	counts := map[Quality]int{}
	trials := 100000
	for i := 0; i < trials; i++ {
		counts[rollQuality(rng, 10)]++
	}
	// Level 10: gold 15%, silver 30%.
	goldFrac := float64(counts[QualityGold]) / float64(trials)
	silverFrac := float64(counts[QualitySilver]) / float64(trials)
	if goldFrac < 0.13 || goldFrac > 0.17 {
		t.Fatalf("gold fraction = %v, want ~0.15", goldFrac)
	}
	if silverFrac < 0.28 || silverFrac > 0.32 {
		t.Fatalf("silver fraction = %v, want ~0.30", silverFrac)
	}
	if counts[QualityNormal] == 0 {
		t.Fatal("normal never rolled at level 10")
	}
}
