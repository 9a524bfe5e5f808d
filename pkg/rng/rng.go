// Package rng wraps math/rand/v2 with the deterministic seeding the
// simulations reset from.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBytes overwrites buf with random bytes, drawing from the source
// eight bytes at a time.
func (r *RNG) FillBytes(buf []byte) {
	var w uint64
	for i := range buf {
		if i%8 == 0 {
			w = r.r.Uint64()
		}
		buf[i] = byte(w)
		w >>= 8
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
