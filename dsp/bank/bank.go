// Package bank tracks which shape generator is active.
//
// Generators are organized as banks of oscillator slots. Three discrete
// trigger events walk the layout: advancing the oscillator steps through
// every slot of every bank in order, advancing the bank jumps to the next
// bank's first slot, and advancing the slot cycles within the current
// bank. Transitions apply atomically between ticks; the active generator
// never observes a half-applied state.
package bank

import (
	"errors"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/shape"
)

var (
	// ErrNoBanks indicates an empty bank layout.
	ErrNoBanks = errors.New("bank: no banks")
	// ErrEmptyBank indicates a bank without oscillator slots.
	ErrEmptyBank = errors.New("bank: empty bank")
)

// Selector is the bank/slot state machine. Initial state is bank 0, slot 0.
type Selector struct {
	banks      [][]shape.Generator
	bank, slot int
}

// NewSelector validates the layout and starts at bank 0, slot 0.
func NewSelector(banks [][]shape.Generator) (*Selector, error) {
	if len(banks) == 0 {
		return nil, ErrNoBanks
	}

	for _, b := range banks {
		if len(b) == 0 {
			return nil, ErrEmptyBank
		}
	}

	return &Selector{banks: banks}, nil
}

// Active returns the currently selected generator.
func (s *Selector) Active() shape.Generator {
	return s.banks[s.bank][s.slot]
}

// State returns the current bank and slot indices.
func (s *Selector) State() (bank, slot int) {
	return s.bank, s.slot
}

// AdvanceOscillator steps to the next slot, rolling into the next bank
// (and from the last bank back to the first) when the current bank is
// exhausted.
func (s *Selector) AdvanceOscillator() {
	s.slot++
	if s.slot >= len(s.banks[s.bank]) {
		s.slot = 0
		s.bank = (s.bank + 1) % len(s.banks)
	}
}

// AdvanceBank jumps to the next bank's first slot.
func (s *Selector) AdvanceBank() {
	s.bank = (s.bank + 1) % len(s.banks)
	s.slot = 0
}

// AdvanceSlot cycles through the slots of the current bank.
func (s *Selector) AdvanceSlot() {
	s.slot = (s.slot + 1) % len(s.banks[s.bank])
}
