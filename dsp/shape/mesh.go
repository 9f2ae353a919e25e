package shape

import (
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/fixp"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table"
)

// Mesh traces a closed-loop 3-D edge path, rotated about the vertical
// axis and projected isometrically. The generator is purely data-driven:
// all solids share this logic and differ only in their path table.
type Mesh struct {
	path  table.Path
	phRot uint32
}

// NewMesh returns a generator over the given path. The path must hold at
// least two points and is not copied; callers hand over immutable data.
func NewMesh(path table.Path) *Mesh {
	return &Mesh{path: path}
}

// Compute implements Generator. rotMod spins the solid about the Y axis.
func (g *Mesh) Compute(ph uint32, growMod, rotMod int32) (x, y int32) {
	ph = fixp.ScalePhase(ph, growMod)
	g.phRot += uint32(rotMod-RotCenter) << 10

	// Segment index from the high product bits, 10-bit fraction within it.
	n := uint64(len(g.path) - 1)
	segment := uint32((uint64(ph) * n) >> 32)
	frac := int32(uint32(uint64(ph)*n) >> 22)

	p1 := g.path[segment]
	p2 := g.path[(int(segment)+1)%len(g.path)]

	px := int32(p1.X) + ((int32(p2.X)-int32(p1.X))*frac)>>10
	py := int32(p1.Y) + ((int32(p2.Y)-int32(p1.Y))*frac)>>10
	pz := int32(p1.Z) + ((int32(p2.Z)-int32(p1.Z))*frac)>>10

	s := fixp.Sine(g.phRot)
	c := fixp.Sine(g.phRot - fixp.QuarterCycle)

	rx := (px*c - pz*s) >> 11
	ry := py
	rz := (px*s + pz*c) >> 11

	// Isometric projection, 30 degrees: 3547 ~ sin(60)*4096.
	u := rx
	v := (rz >> 1) + ((ry * 3547) >> 12)

	return u >> 1, v >> 1
}
