package shape

import (
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/fixp"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table"
)

// Morph crossfades between two stereo wavetables. Morph weight 0 plays
// table A, full scale plays table B, and intermediate values blend
// linearly, never switching discontinuously.
type Morph struct {
	a, b *table.Stereo
}

// NewMorph returns a generator blending tables a and b.
func NewMorph(a, b *table.Stereo) *Morph {
	return &Morph{a: a, b: b}
}

// Compute implements Generator. morphMod is the crossfade weight in knob
// units. The vertical channel is sign-inverted to match the oscilloscope
// convention, and both channels carry a fixed 6/8 output scale.
func (g *Morph) Compute(ph uint32, growMod, morphMod int32) (x, y int32) {
	ph = fixp.ScalePhase(ph, growMod)

	// 16-bit crossfade weight: 0..65536.
	m := fixp.ClampKnob(morphMod) << 4

	al := table.Lookup(&g.a.Left, ph)
	ar := table.Lookup(&g.a.Right, ph)
	bl := table.Lookup(&g.b.Left, ph)
	br := table.Lookup(&g.b.Right, ph)

	x = ((al*(65536-m) + bl*m) * 6) >> 19
	y = (-(ar*(65536-m) + br*m) * 6) >> 19

	return x, y
}
