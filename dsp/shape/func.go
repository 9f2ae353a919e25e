package shape

import "github.com/indiepaleale/Trace-Workshop-Computer/dsp/fixp"

// Func traces the yin-yang symbol from piecewise sine arcs.
//
// The growth-scaled phase runs the construction twice per cycle: the top
// phase bit mirrors the second half through the origin. Its top two bits
// split the half-figure into sections; the last one is the small "eye"
// arc, the first three form the body from three larger arcs.
type Func struct {
	phRot uint32
}

// NewFunc returns a yin-yang generator with rotation at rest.
func NewFunc() *Func {
	return &Func{}
}

// Compute implements Generator. rotMod spins the figure about its center.
func (g *Func) Compute(ph uint32, growMod, rotMod int32) (x, y int32) {
	g.phRot += uint32(rotMod-RotCenter) << 11

	sign := int64(1)
	if ph>>31 != 0 {
		sign = -1
	}

	phAll := fixp.ScalePhase(ph<<1, growMod)

	var ox, oy int32

	if phAll>>30 == 3 {
		// Eye section: one small arc in the last eighth of the half-cycle.
		phEye := phAll << 2
		ox = fixp.Sine(phEye*2) >> 2
		oy = -(fixp.Cosine(phEye*2) >> 2) + 1024
	} else {
		// Body: the remaining 3/4 re-stretched into three arcs.
		phBody := uint32((uint64(phAll) * 0x55555556) >> 30)

		switch phBody >> 30 {
		case 0:
			ox = fixp.Sine(phBody*2) >> 1
			oy = -(fixp.Cosine(phBody*2) >> 1) + 1024
		case 1, 2:
			ox = -fixp.Sine(phBody - fixp.QuarterCycle)
			oy = fixp.Sine(phBody)
		case 3:
			ox = fixp.Sine(phBody*2) >> 1
			oy = (fixp.Cosine(phBody*2) >> 1) - 1024
		}
	}

	xr := sign * int64(ox)
	yr := sign * int64(oy+8)

	s := int64(fixp.Sine(g.phRot))
	c := int64(fixp.Cosine(g.phRot))

	x = int32((xr*s + yr*c) >> 11)
	y = int32((xr*c - yr*s) >> 11)

	return x, y
}
