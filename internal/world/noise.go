package world

import "math"

// Deterministic 2D value noise over an integer-hashed lattice.

func smoothstep5(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// latticeHash is a SplitMix64 finalizer over the lattice point and seed.
func latticeHash(x, z, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// lattice maps a lattice point to [0,1].
func lattice(x, z, seed int64) float64 {
	return float64(latticeHash(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	fx, fz := smoothstep5(x-x0), smoothstep5(z-z0)
	ix, iz := int64(x0), int64(z0)

	a := lerp(lattice(ix, iz, seed), lattice(ix+1, iz, seed), fx)
	b := lerp(lattice(ix, iz+1, seed), lattice(ix+1, iz+1, seed), fx)
	return lerp(a, b, fz)
}

// fbm sums octaves of value noise, normalized to [0,1].
func fbm(x, z float64, seed int64, octaves int) float64 {
	amp, freq := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		sum += valueNoise(x*freq, z*freq, seed+int64(i*131)) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
