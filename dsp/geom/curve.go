package geom

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// CurveFunc maps a cycle position t in [0, 1) to an (x, y) trace position.
type CurveFunc func(t float64) (x, y float64)

// SampleCurve samples one cycle of f into n horizontal and vertical values.
func SampleCurve(f CurveFunc, n int) (h, v []float64) {
	h = make([]float64, n)
	v = make([]float64, n)

	for i := 0; i < n; i++ {
		h[i], v[i] = f(float64(i) / float64(n))
	}

	return h, v
}

// QuantizeInt16 peak-normalizes buf to full scale and quantizes to int16,
// the wavetable storage format. A silent buffer quantizes to zeros.
func QuantizeInt16(buf []float64) []int16 {
	scaled := make([]float64, len(buf))

	if maxAbs := vecmath.MaxAbs(buf); maxAbs > 0 {
		vecmath.ScaleBlock(scaled, buf, 32767/maxAbs)
	}

	out := make([]int16, len(scaled))
	for i, v := range scaled {
		out[i] = int16(math.Round(math.Max(-32768, math.Min(32767, v))))
	}

	return out
}

// Built-in stand-in traces for the morphing wavetable bank. Production
// hardware ships tables sampled from calligraphy recordings; these keep
// the same format and scale so the synthesis path is identical.

// YinCurve is a breathing circle leaning to one side.
func YinCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t
	r := 0.8 + 0.2*math.Sin(a)

	return r * math.Sin(a), r * math.Cos(a)
}

// YangCurve mirrors YinCurve.
func YangCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t
	r := 0.8 - 0.2*math.Sin(a)

	return r * math.Sin(a), r * math.Cos(a)
}

// CircleCurve is the unit circle.
func CircleCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t

	return math.Sin(a), math.Cos(a)
}

// StarCurve is a five-pointed star.
func StarCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t
	r := 0.55 + 0.45*math.Cos(5*a)

	return r * math.Sin(a), r * math.Cos(a)
}

// LissajousCurve is a 2:3 Lissajous figure.
func LissajousCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t

	return math.Sin(2 * a), math.Sin(3*a + math.Pi/2)
}

// SquareCurve is a rounded square from clipped sinusoids.
func SquareCurve(t float64) (float64, float64) {
	a := 2 * math.Pi * t
	clip := func(v float64) float64 {
		return math.Max(-1, math.Min(1, 1.6*v))
	}

	return clip(math.Sin(a)), clip(math.Cos(a))
}
