// Package modroute combines knob and audio-rate inputs into the two
// modulation values feeding the active shape generator.
//
// An external three-way switch selects how a knob and its input jack
// combine. Because the same knob means something different in each mode,
// a mode change freezes both channels at their last routed values; a
// frozen channel takes over again only once its knob has physically moved
// past a small deadband, so reinterpretation never causes a jump in the
// trace.
package modroute

// Mode selects how a knob and its audio input combine.
type Mode int

const (
	// ModeAttenuate treats the knob as an attenuator for the audio input.
	ModeAttenuate Mode = iota
	// ModeOffset adds the knob value to the audio input directly.
	ModeOffset
)

type config struct {
	deadband int32
}

// Option configures a Router.
type Option func(*config)

// WithDeadband sets how far a knob must move after a mode change before
// its channel unfreezes, in knob units.
func WithDeadband(units int32) Option {
	return func(cfg *config) {
		if units >= 0 {
			cfg.deadband = units
		}
	}
}

const defaultDeadband = 64

// Router routes two modulation channels with glitch suppression across
// mode changes.
type Router struct {
	cfg     config
	mode    Mode
	started bool
	ch      [2]channel
}

type channel struct {
	guarded  bool
	held     int32 // routed value latched at the mode change
	frozenAt int32 // knob position when the guard engaged
	last     int32 // most recent routed value
}

// New returns a router with all guards clear.
func New(opts ...Option) *Router {
	cfg := config{deadband: defaultDeadband}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Router{cfg: cfg}
}

// Route computes both modulation values for this tick. knob1/audio1 feed
// the growth channel, knob2/audio2 the rotation/morph channel.
func (r *Router) Route(knob1, knob2, audio1, audio2 int32, mode Mode) (mod1, mod2 int32) {
	// The guard suppresses jumps when the switch moves, not at power-on:
	// the first call adopts whatever position the switch is already in.
	if !r.started {
		r.started = true
		r.mode = mode
	}

	if mode != r.mode {
		r.mode = mode
		r.ch[0].freeze(knob1)
		r.ch[1].freeze(knob2)
	}

	mod1 = r.ch[0].route(r.cfg.deadband, knob1, audio1, mode)
	mod2 = r.ch[1].route(r.cfg.deadband, knob2, audio2, mode)

	return mod1, mod2
}

func (c *channel) freeze(knob int32) {
	c.guarded = true
	c.held = c.last
	c.frozenAt = knob
}

func (c *channel) route(deadband, knob, audio int32, mode Mode) int32 {
	if c.guarded {
		moved := knob - c.frozenAt
		if moved < 0 {
			moved = -moved
		}

		if moved <= deadband {
			return c.held
		}

		c.guarded = false
	}

	var v int32

	switch mode {
	case ModeOffset:
		v = knob + audio
	default:
		// Knob as attenuator: full scale (4096) passes the input through.
		v = (audio * knob) >> 12
	}

	c.last = v

	return v
}
