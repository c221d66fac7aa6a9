package world

import "math"

// Seeded hashing for all deterministic generation. Every generator salts the
// world seed differently so their outputs are independent.

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func hash2(seed int64, x, z int) uint64 {
	ux := uint64(uint32(int32(x)))
	uz := uint64(uint32(int32(z)))
	v := uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uz * 0xbf58476d1ce4e5b9)
	return mix64(v)
}

// hash01 maps a coordinate hash into [0,1).
func hash01(seed int64, x, z int) float64 {
	return float64(hash2(seed, x, z)>>11) / float64(1<<53)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// valueNoise is coherent noise: lattice values from hash01, smooth bilinear
// interpolation between them.
func valueNoise(seed int64, x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	tx := smoothstep(x - x0)
	tz := smoothstep(z - z0)
	xi := int(x0)
	zi := int(z0)

	v00 := hash01(seed, xi, zi)
	v10 := hash01(seed, xi+1, zi)
	v01 := hash01(seed, xi, zi+1)
	v11 := hash01(seed, xi+1, zi+1)

	a := v00 + (v10-v00)*tx
	b := v01 + (v11-v01)*tx
	return a + (b-a)*tz
}

// fbm layers octaves of value noise, halving amplitude and doubling frequency
// per octave. Output stays in [0,1).
func fbm(seed int64, x, z float64, octaves int) float64 {
	sum := 0.0
	amp := 1.0
	freq := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise(seed+int64(i)*7919, x*freq, z*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}
