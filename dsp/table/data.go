package table

import "github.com/indiepaleale/Trace-Workshop-Computer/dsp/geom"

// Built-in paths for the mesh bank. Each traces every edge of its solid
// exactly once, normalized to the 12-bit model cube. Built at startup,
// immutable afterwards.
var (
	CubePath      Path
	ConePath      Path
	IcospherePath Path
)

// Built-in A/B wavetable pairs for the morphing bank.
var (
	YinTable       Stereo
	YangTable      Stereo
	CircleTable    Stereo
	StarTable      Stereo
	LissajousTable Stereo
	SquareTable    Stereo
)

func init() {
	CubePath = pathFromMesh(geom.Cube())
	ConePath = pathFromMesh(geom.Cone(12))
	IcospherePath = pathFromMesh(geom.Icosphere())

	YinTable = stereoFromCurve(geom.YinCurve)
	YangTable = stereoFromCurve(geom.YangCurve)
	CircleTable = stereoFromCurve(geom.CircleCurve)
	StarTable = stereoFromCurve(geom.StarCurve)
	LissajousTable = stereoFromCurve(geom.LissajousCurve)
	SquareTable = stereoFromCurve(geom.SquareCurve)
}

func pathFromMesh(m geom.Mesh) Path {
	points := m.PathPoints12Bit(m.EdgePath())

	out := make(Path, len(points))
	for i, p := range points {
		out[i] = Point3D{X: p[0], Y: p[1], Z: p[2]}
	}

	return out
}

func stereoFromCurve(f geom.CurveFunc) Stereo {
	h, v := geom.SampleCurve(f, WavetableSize)

	var s Stereo
	copy(s.Left[:], geom.QuantizeInt16(h))
	copy(s.Right[:], geom.QuantizeInt16(v))

	return s
}
