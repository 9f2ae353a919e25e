// Package engine wires the phase engine, modulation router, selector and
// output conditioning into the per-sample tick.
//
// One Tick is one sample period. The engine allocates nothing after New
// and finishes every state update before returning, so the hardware
// callback can drive it directly at audio rate.
package engine

import (
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/bank"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/modroute"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/phase"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/shape"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table"
)

type config struct {
	phaseOpts   []phase.Option
	routerOpts  []modroute.Option
	banks       [][]shape.Generator
	filterCoeff int32
	filterShift uint
}

// Option configures an Engine.
type Option func(*config)

// WithPhaseOptions forwards options to the pitch table build.
func WithPhaseOptions(opts ...phase.Option) Option {
	return func(cfg *config) {
		cfg.phaseOpts = append(cfg.phaseOpts, opts...)
	}
}

// WithRouterOptions forwards options to the modulation router.
func WithRouterOptions(opts ...modroute.Option) Option {
	return func(cfg *config) {
		cfg.routerOpts = append(cfg.routerOpts, opts...)
	}
}

// WithBanks replaces the default bank layout.
func WithBanks(banks [][]shape.Generator) Option {
	return func(cfg *config) {
		cfg.banks = banks
	}
}

// WithConditioner sets the output one-pole coefficient and shift.
// coeff must be positive and shift at least 1 (the rounding term is half
// an output step); coeff == 1<<shift disables the filter (unity step).
// Invalid values keep the default.
func WithConditioner(coeff int32, shift uint) Option {
	return func(cfg *config) {
		if coeff > 0 && shift >= 1 {
			cfg.filterCoeff = coeff
			cfg.filterShift = shift
		}
	}
}

// defaultBanks mirrors the hardware layout: one function-defined shape,
// three mesh solids, three wavetable morph pairs.
func defaultBanks() [][]shape.Generator {
	return [][]shape.Generator{
		{shape.NewFunc()},
		{
			shape.NewMesh(table.CubePath),
			shape.NewMesh(table.ConePath),
			shape.NewMesh(table.IcospherePath),
		},
		{
			shape.NewMorph(&table.YinTable, &table.YangTable),
			shape.NewMorph(&table.CircleTable, &table.StarTable),
			shape.NewMorph(&table.LissajousTable, &table.SquareTable),
		},
	}
}

// Inputs is one tick's worth of quantized control readings, already
// mapped from the physical surface by the caller.
type Inputs struct {
	FreqControl int32
	CV          int32

	GrowKnob  int32
	GrowAudio int32
	RotKnob   int32
	RotAudio  int32

	Switch modroute.Mode

	// Edge triggers, true for exactly the tick the event fires on.
	NextOsc  bool
	NextBank bool
	NextSlot bool
}

// Outputs is one tick's result: the conditioned sample pair plus the
// active selection for the indicator LEDs.
type Outputs struct {
	X, Y       int32
	Bank, Slot int
}

// Engine holds all mutable per-tick state explicitly, so the core runs
// and tests without a hardware harness.
type Engine struct {
	acc    *phase.Accumulator
	router *modroute.Router
	sel    *bank.Selector
	fx, fy onePole
}

// New builds the engine and all lookup data. The returned engine does not
// allocate during Tick.
func New(opts ...Option) (*Engine, error) {
	cfg := config{
		filterCoeff: 3,
		filterShift: 2,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.banks == nil {
		cfg.banks = defaultBanks()
	}

	sel, err := bank.NewSelector(cfg.banks)
	if err != nil {
		return nil, err
	}

	return &Engine{
		acc:    phase.NewAccumulator(phase.NewTable(cfg.phaseOpts...)),
		router: modroute.New(cfg.routerOpts...),
		sel:    sel,
		fx:     onePole{coeff: cfg.filterCoeff, shift: cfg.filterShift},
		fy:     onePole{coeff: cfg.filterCoeff, shift: cfg.filterShift},
	}, nil
}

// Tick advances the core by one sample. All mutable state is fully
// updated before it returns; no partial state survives across ticks.
func (e *Engine) Tick(in Inputs) Outputs {
	ph := e.acc.Advance(in.FreqControl, in.CV)

	mod1, mod2 := e.router.Route(in.GrowKnob, in.RotKnob, in.GrowAudio, in.RotAudio, in.Switch)

	if in.NextOsc {
		e.sel.AdvanceOscillator()
	}

	if in.NextBank {
		e.sel.AdvanceBank()
	}

	if in.NextSlot {
		e.sel.AdvanceSlot()
	}

	x, y := e.sel.Active().Compute(ph, mod1, mod2)

	b, s := e.sel.State()

	return Outputs{
		X:    e.fx.step(x),
		Y:    e.fy.step(y),
		Bank: b,
		Slot: s,
	}
}

// Selection returns the active bank and slot without ticking.
func (e *Engine) Selection() (bank, slot int) {
	return e.sel.State()
}

// onePole is the per-channel output conditioner, a first-order low-pass
// tuned near the Nyquist boundary to smooth table quantization steps.
// The half-step rounding term makes a constant input an exact fixed
// point of the recurrence.
type onePole struct {
	state int32
	coeff int32
	shift uint
}

func (f *onePole) step(raw int32) int32 {
	f.state += ((raw-f.state)*f.coeff + (1 << (f.shift - 1))) >> f.shift

	return f.state
}
