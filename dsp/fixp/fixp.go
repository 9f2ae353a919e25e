package fixp

import "math"

const (
	// SineTableSize is the length of the shared sine table.
	SineTableSize = 512
	sineTableMask = SineTableSize - 1

	// KnobMax is the full-scale value of a quantized knob or modulation
	// reading. Values outside [0, KnobMax] saturate.
	KnobMax = 4096

	// ControlMax is the largest valid frequency control index.
	ControlMax = 4095

	// QuarterCycle shifts a phase by 90 degrees, so Sine(ph+QuarterCycle)
	// is the cosine of ph.
	QuarterCycle = 0x40000000
)

// sineTable holds one cycle of sine scaled to +-32000, built once at startup.
var sineTable [SineTableSize]int16

func init() {
	for i := range sineTable {
		sineTable[i] = int16(32000 * math.Sin(2*math.Pi*float64(i)/SineTableSize))
	}
}

// Sine returns the linearly interpolated sine of a 32-bit phase.
// The top 9 bits select the table index, the remaining 23 bits form the
// interpolation fraction (kept to 16 bits). Output is Q12, +-2000.
func Sine(ph uint32) int32 {
	index := ph >> 23
	r := int32((ph & 0x7FFFFF) >> 7)
	s1 := int32(sineTable[index])
	s2 := int32(sineTable[(index+1)&sineTableMask])

	return (s2*r + s1*(65536-r)) >> 20
}

// Cosine returns Sine shifted by a quarter cycle.
func Cosine(ph uint32) int32 {
	return Sine(ph + QuarterCycle)
}

// Saw returns a rising sawtooth in [-2048, 2047].
func Saw(ph uint32) int32 {
	return int32(ph) >> 20
}

// Triangle returns a triangle wave in [-2048, 2048].
func Triangle(ph uint32) int32 {
	v := int32(ph) >> 20
	if v < 0 {
		v = -v
	}

	return (v - 1024) << 1
}

// Square returns a square wave toggling on the phase sign bit.
func Square(ph uint32) int32 {
	if ph&0x80000000 != 0 {
		return 2047
	}

	return -2048
}

// ClampKnob saturates v to the inclusive knob range [0, KnobMax].
func ClampKnob(v int32) int32 {
	if v < 0 {
		return 0
	}

	if v > KnobMax {
		return KnobMax
	}

	return v
}

// ClampControl saturates v to the inclusive control range [0, ControlMax].
func ClampControl(v int32) int32 {
	if v < 0 {
		return 0
	}

	if v > ControlMax {
		return ControlMax
	}

	return v
}

// ScalePhase rescales ph by a grow amount in knob units. grow saturates to
// [0, KnobMax]; KnobMax maps the phase onto itself, 0 collapses it to zero.
func ScalePhase(ph uint32, grow int32) uint32 {
	// Widened before the shift so that full-scale grow (4096<<20 == 2^32)
	// maps the phase onto itself instead of truncating to zero.
	g := uint64(ClampKnob(grow)) << 20

	return uint32((uint64(ph) * g) >> 32)
}
