// Package phase implements the master phase accumulator and the
// exponential pitch mapping from quantized frequency controls.
//
// The control value indexes a precomputed monotonic table of phase
// increments, so equal control steps give equal pitch ratios. CV is added
// to the control value before clamping and indexing, making it part of
// the exponential response rather than a linear offset.
package phase

import (
	"math"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/fixp"
)

type config struct {
	sampleRate float64
	minHz      float64
	octaves    float64
}

// Option configures the pitch table.
type Option func(*config)

// WithSampleRate sets the tick rate the increments are computed for.
func WithSampleRate(hz float64) Option {
	return func(cfg *config) {
		if hz > 0 {
			cfg.sampleRate = hz
		}
	}
}

// WithRange sets the lowest frequency and the span in octaves covered by
// the full control range.
func WithRange(minHz, octaves float64) Option {
	return func(cfg *config) {
		if minHz > 0 {
			cfg.minHz = minHz
		}

		if octaves > 0 {
			cfg.octaves = octaves
		}
	}
}

func defaultConfig() config {
	return config{
		sampleRate: 48000,
		minHz:      2,
		octaves:    10,
	}
}

// Table maps a clamped frequency control value to a phase increment.
type Table struct {
	inc [fixp.ControlMax + 1]uint32
}

// NewTable builds the exponential increment table once, at startup.
func NewTable(opts ...Option) *Table {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := &Table{}
	steps := float64(len(t.inc))

	for i := range t.inc {
		hz := cfg.minHz * math.Pow(2, cfg.octaves*float64(i)/steps)
		t.inc[i] = uint32(hz/cfg.sampleRate*(1<<32) + 0.5)
	}

	return t
}

// Increment returns the phase increment for a control value. Out-of-range
// controls saturate, so any value beyond a bound behaves exactly like the
// bound.
func (t *Table) Increment(control int32) uint32 {
	return t.inc[fixp.ClampControl(control)]
}

// Accumulator is the master phase accumulator. The zero value starts at
// phase 0; there is no reset beyond that.
type Accumulator struct {
	tab *Table
	ph  uint32
}

// NewAccumulator binds an accumulator to a pitch table.
func NewAccumulator(tab *Table) *Accumulator {
	return &Accumulator{tab: tab}
}

// Advance adds the increment for control+cv and returns the new phase.
// The sum is clamped as one quantity so the CV participates in the
// exponential mapping. The addition wraps modulo 2^32 by design.
func (a *Accumulator) Advance(control, cv int32) uint32 {
	a.ph += a.tab.Increment(control + cv)

	return a.ph
}

// Phase returns the current phase without advancing.
func (a *Accumulator) Phase() uint32 {
	return a.ph
}
