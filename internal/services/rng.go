package services

import "hash/fnv"

// NewSeededRandom returns a generator of floats in [0,1) that yields the same
// sequence for the same seed. The seed is hashed with FNV-1a, the state
// advances by a fixed odd constant per call and each output is scrambled
// with xorshift-multiply rounds.
func NewSeededRandom(seed string) func() float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	state := h.Sum32()

	return func() float64 {
		state += 0x6D2B79F5
		t := state
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		t ^= t >> 14
		return float64(t) / 4294967296.0
	}
}
