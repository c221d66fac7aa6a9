package world

import "testing"

func TestGenerateTerrain_Deterministic(t *testing.T) {
	a := GenerateTerrain(42, 96)
	b := GenerateTerrain(42, 96)
	if len(a.Tiles) != len(b.Tiles) {
		t.Fatalf("tile count mismatch: %d vs %d", len(a.Tiles), len(b.Tiles))
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between runs: %+v vs %+v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestGenerateTerrain_DifferentSeedsDiffer(t *testing.T) {
	a := GenerateTerrain(1, 96)
	b := GenerateTerrain(2, 96)
	same := 0
	for i := range a.Tiles {
		if a.Tiles[i].Type == b.Tiles[i].Type {
			same++
		}
	}
	if same == len(a.Tiles) {
		t.Fatal("two seeds produced identical tile maps")
	}
}

func TestGenerateTerrain_PondCenterIsWater(t *testing.T) {
	for _, seed := range []int64{1, 42, 1337, 99999} {
		g := GenerateTerrain(seed, 96)
		cx, cz := pondCenter(96)
		tile := g.At(cx, cz)
		if tile == nil {
			t.Fatalf("seed %d: pond center out of bounds", seed)
		}
		if tile.Type != TileWater {
			t.Fatalf("seed %d: pond center is %s, want WATER", seed, tile.Type)
		}
	}
}

func TestGenerateTerrain_FarmZoneTillable(t *testing.T) {
	g := GenerateTerrain(42, 96)
	x0, z0, x1, z1 := farmZone(96)
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			tile := g.At(x, z)
			if tile == nil {
				t.Fatalf("farm tile (%d,%d) out of bounds", x, z)
			}
			if !tile.Type.Tillable() {
				t.Fatalf("farm tile (%d,%d) is %s, want tillable", x, z, tile.Type)
			}
		}
	}
}

func TestGenerateTerrain_Bounds(t *testing.T) {
	g := GenerateTerrain(7, 64)
	if g.At(-1, 0) != nil || g.At(0, -1) != nil || g.At(64, 0) != nil || g.At(0, 64) != nil {
		t.Fatal("out-of-bounds lookup returned a tile")
	}
	if g.At(0, 0) == nil || g.At(63, 63) == nil {
		t.Fatal("in-bounds lookup returned nil")
	}
}

func TestGenerateDecorations_Deterministic(t *testing.T) {
	g := GenerateTerrain(42, 96)
	a := GenerateDecorations(42, g)
	b := GenerateDecorations(42, g)
	if len(a) != len(b) {
		t.Fatalf("decoration count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decoration %d differs between runs", i)
		}
	}
}

func TestGenerateDecorations_AvoidFarmZone(t *testing.T) {
	g := GenerateTerrain(42, 96)
	for _, d := range GenerateDecorations(42, g) {
		if inFarmZone(96, d.X, d.Z) {
			t.Fatalf("decoration %s at (%d,%d) inside farm zone", d.Type, d.X, d.Z)
		}
	}
}
