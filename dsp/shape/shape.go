// Package shape implements the oscillator variants that trace 2-D figures
// on an X-Y oscilloscope.
//
// Every generator consumes the master phase plus two modulation values and
// produces one integer sample pair per tick. The implementor set is closed:
// Func (piecewise trigonometric construction), Mesh (rotating 3-D edge
// path) and Morph (stereo wavetable crossfade). Generators own only the
// state they need to stay continuous across ticks, so switching the active
// generator never corrupts another one.
package shape

// Generator computes one 2-D sample from the master phase and two
// modulation inputs. The first modulation input is always growth/depth;
// the second is rotation for Func and Mesh, morph for Morph. All
// modulation inputs saturate to their valid range, never error.
type Generator interface {
	Compute(ph uint32, growMod, auxMod int32) (x, y int32)
}

// RotCenter is the modulation value at which a rotation accumulator
// stands still; values above spin one way, below the other.
const RotCenter = 2048
