package world

import "math"

// Tile is one cell of the world grid.
type Tile struct {
	X      int
	Z      int
	Type   TileType
	Height float64
}

// TileGrid owns every tile of the square world map. Mutable only through
// dispatcher-issued transitions; generation itself is a pure function of the
// world seed.
type TileGrid struct {
	Size  int
	Tiles []Tile
}

func (g *TileGrid) InBounds(x, z int) bool {
	return x >= 0 && x < g.Size && z >= 0 && z < g.Size
}

func (g *TileGrid) At(x, z int) *Tile {
	if !g.InBounds(x, z) {
		return nil
	}
	return &g.Tiles[x+z*g.Size]
}

// Generation salts. Each concern derives from the world seed independently so
// changing one layer never shifts another.
const (
	saltHeight = 0x7E44
	saltPond   = 0x1A31
	saltDirt   = 0xD147
	saltDecor  = 0x5EC0
)

// Fixed world zones, expressed relative to the grid size so every layout
// decision stays a pure function of (seed, size).

func farmZone(size int) (x0, z0, x1, z1 int) {
	c := size / 2
	return c - 20, c - 10, c - 4, c + 10
}

func inFarmZone(size, x, z int) bool {
	x0, z0, x1, z1 := farmZone(size)
	return x >= x0 && x <= x1 && z >= z0 && z <= z1
}

func pondCenter(size int) (int, int) {
	return size / 3, size / 3
}

func inVillageZone(size, x, z int) bool {
	c := size / 2
	return x >= c+4 && x <= c+20 && z >= c-12 && z <= c+8
}

func onPath(size, x, z int) bool {
	c := size / 2
	if z >= c-1 && z <= c && x >= size/4 && x <= size-size/4 {
		return true
	}
	if x >= c-1 && x <= c && z >= size/4 && z <= size-size/4 {
		return true
	}
	return false
}

func inPond(seed int64, size, x, z int) bool {
	px, pz := pondCenter(size)
	dx := float64(x - px)
	dz := float64(z - pz)
	dist := math.Sqrt(dx*dx + dz*dz)
	// Noise-perturbed radius: 6 +/- 3, never below 3, so the center tile is
	// WATER for every seed.
	r := 6.0 + (valueNoise(seed+saltPond, float64(x)*0.35, float64(z)*0.35)-0.5)*6.0
	return dist <= r
}

// GenerateTerrain synthesizes the full tile grid from the world seed. Calling
// it twice with the same seed produces byte-identical output; this property is
// what lets crash recovery regenerate the map instead of persisting it.
func GenerateTerrain(seed int64, size int) *TileGrid {
	g := &TileGrid{Size: size, Tiles: make([]Tile, size*size)}
	center := float64(size) / 2

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			h := fbm(seed+saltHeight, float64(x)*0.06, float64(z)*0.06, 3)
			dx := float64(x) - center
			dz := float64(z) - center
			distNorm := math.Sqrt(dx*dx+dz*dz) / center

			t := TileGrass
			switch {
			case inFarmZone(size, x, z):
				// Farm clearing is always tillable ground; it beats the pond
				// so spawns and starter plots never land in water.
				if hash2(seed+saltDirt, x, z)%5 == 0 {
					t = TileDirt
				} else {
					t = TileGrass
				}
			case inPond(seed, size, x, z):
				t = TileWater
			case onPath(size, x, z):
				t = TilePath
			case h < 0.30 && distNorm > 0.55:
				t = TileWater
			case h < 0.36 && distNorm > 0.50:
				t = TileSand
			case h > 0.76:
				t = TileStone
			case hash2(seed+saltDirt, x, z)%12 == 0:
				t = TileDirt
			}

			g.Tiles[x+z*size] = Tile{X: x, Z: z, Type: t, Height: h}
		}
	}
	return g
}

// Building placements are static per layout; the renderer treats them as
// advisory, the server uses them only to seed NPC/animal housing.
type Building struct {
	Kind string
	X    int
	Z    int
}

func BuildingsFor(size int) []Building {
	fx0, fz0, _, _ := farmZone(size)
	c := size / 2
	return []Building{
		{Kind: "farmhouse", X: fx0 + 2, Z: fz0 + 2},
		{Kind: "barn", X: fx0 + 2, Z: fz0 + 14},
		{Kind: "shop", X: c + 8, Z: c - 4},
		{Kind: "townhall", X: c + 14, Z: c - 8},
	}
}
