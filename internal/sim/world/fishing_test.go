package world

import (
	"math/rand"
	"testing"

	"farmstead.gg/internal/sim/catalogs"
)

func fishTable() []catalogs.FishDef {
	return []catalogs.FishDef{
		{ID: "carp", Location: "pond", Time: "any", Rarity: 0},
		{ID: "pike", Location: "pond", Time: "day", Rarity: 1},
		{ID: "catfish", Location: "pond", Time: "rain", Rarity: 2},
		{ID: "golden_koi", Location: "pond", Time: "night", Rarity: 3, MinLevel: 7},
		{ID: "trout", Location: "river", Time: "any", Rarity: 0},
		{ID: "spring_dace", Location: "pond", Seasons: []int{0}, Time: "any", Rarity: 0},
	}
}

func TestRollCatch_FiltersLocationAndLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		f := rollCatch(rng, fishTable(), "pond", 0, BaitInfo{}, 1, 12, false)
		if f == nil {
			t.Fatal("no catch with eligible fish in table")
		}
		if f.Location != "pond" {
			t.Fatalf("caught %s from location %s", f.ID, f.Location)
		}
		if f.ID == "golden_koi" {
			t.Fatal("min_level filter leaked a level-7 fish at level 0")
		}
	}
}

func TestRollCatch_TimeAndSeasonFilters(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	// Summer noon, no rain: pike and carp only.
	for i := 0; i < 200; i++ {
		f := rollCatch(rng, fishTable(), "pond", 10, BaitInfo{}, 1, 12, false)
		if f == nil {
			t.Fatal("no catch")
		}
		switch f.ID {
		case "carp", "pike":
		default:
			t.Fatalf("caught %s outside its window", f.ID)
		}
	}
	// Spring rain at night: day-only pike excluded, seasonal dace included.
	sawDace := false
	for i := 0; i < 500; i++ {
		f := rollCatch(rng, fishTable(), "pond", 10, BaitInfo{}, 0, 23, true)
		if f == nil {
			t.Fatal("no catch")
		}
		switch f.ID {
		case "pike":
			t.Fatal("day fish caught at night")
		case "spring_dace":
			sawDace = true
		}
	}
	if !sawDace {
		t.Fatal("seasonal fish never caught in its season")
	}
}

func TestRollCatch_RarityWeighting(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	table := []catalogs.FishDef{
		{ID: "common", Location: "pond", Time: "any", Rarity: 0},
		{ID: "rare", Location: "pond", Time: "any", Rarity: 2},
	}
	counts := map[string]int{}
	trials := 50000
	for i := 0; i < trials; i++ {
		counts[rollCatch(rng, table, "pond", 0, BaitInfo{}, 0, 12, false).ID]++
	}
	// Weights 1.0 vs 0.1: expect roughly a 10:1 split.
	ratio := float64(counts["common"]) / float64(counts["rare"])
	if ratio < 8 || ratio > 12 {
		t.Fatalf("common/rare ratio = %v over %d trials, want ~10", ratio, trials)
	}
}

func TestRollCatch_BaitIgnoresRestrictions(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	table := []catalogs.FishDef{
		{ID: "night_only", Location: "pond", Time: "night", Rarity: 0},
	}
	if f := rollCatch(rng, table, "pond", 0, BaitInfo{}, 0, 12, false); f != nil {
		t.Fatal("night fish caught at noon without bait")
	}
	f := rollCatch(rng, table, "pond", 0, BaitInfo{IgnoreRestrictions: true}, 0, 12, false)
	if f == nil || f.ID != "night_only" {
		t.Fatal("restriction-ignoring bait did not open the window")
	}
}

func TestRollCatch_EmptyTableMisses(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	if f := rollCatch(rng, nil, "pond", 0, BaitInfo{}, 0, 12, false); f != nil {
		t.Fatalf("empty table produced %s", f.ID)
	}
}

func TestRollBiteParams_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for rarity := 0; rarity <= 3; rarity++ {
		for i := 0; i < 1000; i++ {
			wait, nibbles := rollBiteParams(rng, rarity)
			min := 2 + float64(rarity)*0.5 + 1
			max := min + 2
			if wait < min || wait > max {
				t.Fatalf("rarity %d wait %v outside [%v,%v]", rarity, wait, min, max)
			}
			if nibbles < 1 || nibbles > 1+rarity {
				t.Fatalf("rarity %d nibbles %d outside [1,%d]", rarity, nibbles, 1+rarity)
			}
		}
	}
}
