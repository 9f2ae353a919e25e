// Package fixp provides the fixed-point primitives shared by every part of
// the synthesis core: the 32-bit phase convention, an interpolated sine
// lookup and the basic single-cycle waveforms.
//
// A phase is a uint32 fraction of one cycle scaled by 2^32. It advances by
// wrap-around addition; overflow is the intended wrap, never an error.
// Waveform outputs are Q12 samples in roughly [-2048, 2047], matching the
// 12-bit DAC range of the target hardware.
package fixp
