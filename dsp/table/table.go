// Package table defines the immutable lookup data consumed by the shape
// generators: closed-loop 3-D paths and stereo single-cycle wavetables,
// plus the exact fixed-point interpolated lookup they share.
//
// All built-in tables are constructed once at startup and never mutated.
package table

// WavetableSize is the per-channel length of a stereo wavetable.
const WavetableSize = 1024

const wavetableMask = WavetableSize - 1

// Point3D is one vertex sample of a 3-D path, normalized to the signed
// 12-bit cube [-2047, 2047].
type Point3D struct {
	X, Y, Z int16
}

// Path is an ordered sequence of 3-D points tracing every edge of a solid.
// The final segment wraps back to the first point, closing the loop.
type Path []Point3D

// Stereo holds one cycle of a 2-D trace as independent horizontal (left)
// and vertical (right) waveforms.
type Stereo struct {
	Left  [WavetableSize]int16
	Right [WavetableSize]int16
}

// Lookup returns the linearly interpolated sample of one wavetable channel
// at a 32-bit phase. The top 10 bits select the index, the remaining 22
// bits form the interpolation fraction (kept to 16 bits); the read past
// the table's end wraps to index 0. Output is Q12.
func Lookup(tab *[WavetableSize]int16, ph uint32) int32 {
	index := ph >> 22
	r := int32((ph & 0x003FFFFF) >> 6)
	s1 := int32(tab[index])
	s2 := int32(tab[(index+1)&wavetableMask])

	return (s2*r + s1*(65536-r)) >> 20
}
