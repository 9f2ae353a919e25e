package testutil

import "math/rand"

// PhaseSweep returns n phase values evenly spaced over one full cycle,
// starting at zero. Useful for walking a generator through an exact
// period regardless of the pitch table.
func PhaseSweep(n int) []uint32 {
	out := make([]uint32, n)
	step := uint64(1<<32) / uint64(n)
	for i := range out {
		out[i] = uint32(uint64(i) * step)
	}
	return out
}

// DeterministicCV generates pseudo-random control values in
// [-amplitude, amplitude] with a fixed seed for reproducibility.
func DeterministicCV(seed int64, amplitude int32, length int) []int32 {
	out := make([]int32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int31n(2*amplitude+1) - amplitude
	}
	return out
}

// Constant generates a constant-valued signal.
func Constant(value int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a signal that is amplitude at pos and zero elsewhere.
func Impulse(length, pos int, amplitude int32) []int32 {
	out := make([]int32, length)
	if pos >= 0 && pos < length {
		out[pos] = amplitude
	}
	return out
}
