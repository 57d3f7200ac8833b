package layout

import "math/rand/v2"

// RandomSource produces uniform values in [0, 1). The salon mode draws
// every random quantity (scale, position, rotation) from this interface so
// placement is reproducible: a seeded source yields identical output, and
// tests can substitute a fixed source to pin down the formulas.
//
// *rand.Rand satisfies the interface directly.
type RandomSource interface {
	Float64() float64
}

// NewSource creates a seeded PCG-backed random source.
// The same seed always yields the same draw sequence.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
