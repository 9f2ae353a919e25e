package bank

import (
	"errors"
	"testing"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/shape"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table"
)

func testBanks() [][]shape.Generator {
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
		},
	}
}

func TestInitialState(t *testing.T) {
	s, err := NewSelector(testBanks())
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}

	b, sl := s.State()
	if b != 0 || sl != 0 {
		t.Fatalf("initial state = (%d,%d), want (0,0)", b, sl)
	}

	if s.Active() == nil {
		t.Fatal("no active generator at startup")
	}
}

func TestAdvanceOscillatorFullCycle(t *testing.T) {
	banks := testBanks()

	s, err := NewSelector(banks)
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}

	total := 0
	for _, b := range banks {
		total += len(b)
	}

	seen := make(map[[2]int]bool)

	for i := 0; i < total; i++ {
		b, sl := s.State()
		if seen[[2]int{b, sl}] {
			t.Fatalf("state (%d,%d) visited twice", b, sl)
		}

		seen[[2]int{b, sl}] = true
		s.AdvanceOscillator()
	}

	// Exactly sum(slots) advances return to the origin.
	b, sl := s.State()
	if b != 0 || sl != 0 {
		t.Fatalf("after %d advances: (%d,%d), want (0,0)", total, b, sl)
	}
}

func TestAdvanceBank(t *testing.T) {
	s, _ := NewSelector(testBanks())

	s.AdvanceOscillator() // into bank 1 (bank 0 has a single slot)
	s.AdvanceSlot()       // bank 1 slot 1

	s.AdvanceBank()

	b, sl := s.State()
	if b != 2 || sl != 0 {
		t.Fatalf("after bank advance: (%d,%d), want (2,0)", b, sl)
	}

	s.AdvanceBank()

	if b, sl = s.State(); b != 0 || sl != 0 {
		t.Fatalf("bank advance must wrap: (%d,%d), want (0,0)", b, sl)
	}
}

func TestAdvanceSlotWrapsWithinBank(t *testing.T) {
	s, _ := NewSelector(testBanks())

	s.AdvanceBank() // bank 1, three slots

	for _, want := range []int{1, 2, 0, 1} {
		s.AdvanceSlot()

		b, sl := s.State()
		if b != 1 || sl != want {
			t.Fatalf("slot advance: (%d,%d), want (1,%d)", b, sl, want)
		}
	}
}

func TestActiveFollowsState(t *testing.T) {
	banks := testBanks()
	s, _ := NewSelector(banks)

	s.AdvanceOscillator()

	if s.Active() != banks[1][0] {
		t.Fatal("active generator does not match selector state")
	}
}

func TestNewSelectorRejectsBadLayouts(t *testing.T) {
	if _, err := NewSelector(nil); !errors.Is(err, ErrNoBanks) {
		t.Fatalf("nil layout: err = %v, want ErrNoBanks", err)
	}

	layout := [][]shape.Generator{{shape.NewFunc()}, {}}
	if _, err := NewSelector(layout); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("empty bank: err = %v, want ErrEmptyBank", err)
	}
}
