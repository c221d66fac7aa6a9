package world

import "math"

// Decoration is ambient scenery generated once at world creation and never
// mutated; it is advisory to renderers and excluded from persistence because
// it is fully re-derivable from the seed.
type Decoration struct {
	Type     string
	X        int
	Z        int
	Variant  int
	Rotation float64
}

// GenerateDecorations derives placement from the tile grid and a differently
// salted seed, so terrain and decoration rolls are independent.
func GenerateDecorations(seed int64, g *TileGrid) []Decoration {
	dseed := seed + saltDecor
	center := float64(g.Size) / 2
	out := make([]Decoration, 0, g.Size*g.Size/16)

	for z := 0; z < g.Size; z++ {
		for x := 0; x < g.Size; x++ {
			if inFarmZone(g.Size, x, z) || inVillageZone(g.Size, x, z) || onPath(g.Size, x, z) {
				continue
			}
			tile := g.At(x, z)

			dx := float64(x) - center
			dz := float64(z) - center
			distNorm := math.Sqrt(dx*dx+dz*dz) / center

			kind := ""
			roll := hash2(dseed, x, z) % 1000
			switch tile.Type {
			case TileGrass:
				// Trees thicken toward the map edge; flowers cluster inward.
				switch {
				case distNorm > 0.45 && roll < 80:
					kind = "tree"
				case roll < 120:
					kind = "bush"
				case distNorm <= 0.45 && roll < 180:
					kind = "flower"
				}
			case TileSand:
				if roll < 60 {
					kind = "pebble"
				}
			case TileStone:
				if roll < 140 {
					kind = "rock"
				}
			case TileDirt:
				if roll < 40 {
					kind = "stump"
				}
			}
			if kind == "" {
				continue
			}

			h := hash2(dseed+1, x, z)
			out = append(out, Decoration{
				Type:     kind,
				X:        x,
				Z:        z,
				Variant:  int(h % 4),
				Rotation: float64(h>>2%3600) / 3600 * 2 * math.Pi,
			})
		}
	}
	return out
}
