package fixp

import "testing"

func TestSineQuadrants(t *testing.T) {
	cases := []struct {
		name string
		ph   uint32
		want int32
	}{
		{"zero", 0, 0},
		{"quarter", QuarterCycle, 2000},
		{"half", 0x80000000, 0},
		{"threequarter", 0xC0000000, -2000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sine(tc.ph); got != tc.want {
				t.Fatalf("Sine(%#x) = %d, want %d", tc.ph, got, tc.want)
			}
		})
	}
}

func TestSineWrapContinuity(t *testing.T) {
	// One interpolation step is one phase LSB; across the wrap boundary the
	// output must not jump by more than the table's adjacent-sample delta
	// scaled down to the Q12 output range.
	last := Sine(0xFFFFFFFF)
	first := Sine(0)

	diff := last - first
	if diff < 0 {
		diff = -diff
	}

	// Max adjacent-sample delta of the sine table is 32000*2*pi/512 ~ 393,
	// about 25 in the >>4 output domain.
	if diff > 25 {
		t.Fatalf("discontinuity across wrap: Sine(max)=%d Sine(0)=%d", last, first)
	}
}

func TestSineRange(t *testing.T) {
	for ph := uint32(0); ph < 0xFFFF0000; ph += 0x10000 {
		v := Sine(ph)
		if v < -2001 || v > 2001 {
			t.Fatalf("Sine(%#x) = %d, out of Q12 range", ph, v)
		}
	}
}

func TestCosineQuadrature(t *testing.T) {
	if got := Cosine(0); got != 2000 {
		t.Fatalf("Cosine(0) = %d, want 2000", got)
	}

	if got := Cosine(QuarterCycle); got != 0 {
		t.Fatalf("Cosine(quarter) = %d, want 0", got)
	}
}

func TestBasicWaveforms(t *testing.T) {
	if got := Saw(0); got != 0 {
		t.Fatalf("Saw(0) = %d, want 0", got)
	}

	if got := Saw(0x7FFFFFFF); got != 2047 {
		t.Fatalf("Saw(max positive) = %d, want 2047", got)
	}

	if got := Saw(0x80000000); got != -2048 {
		t.Fatalf("Saw(half) = %d, want -2048", got)
	}

	if got := Square(0); got != -2048 {
		t.Fatalf("Square(0) = %d, want -2048", got)
	}

	if got := Square(0x80000000); got != 2047 {
		t.Fatalf("Square(half) = %d, want 2047", got)
	}

	if got := Triangle(0); got != -2048 {
		t.Fatalf("Triangle(0) = %d, want -2048", got)
	}

	if got := Triangle(0x80000000); got != 2048 {
		t.Fatalf("Triangle(half) = %d, want 2048", got)
	}
}

func TestClampKnobSaturates(t *testing.T) {
	cases := []struct {
		in, want int32
	}{
		{-1, 0},
		{-100000, 0},
		{0, 0},
		{2048, 2048},
		{KnobMax, KnobMax},
		{KnobMax + 1, KnobMax},
		{1 << 20, KnobMax},
	}

	for _, tc := range cases {
		if got := ClampKnob(tc.in); got != tc.want {
			t.Fatalf("ClampKnob(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}

	// Idempotent at the bounds.
	if ClampKnob(ClampKnob(-5)) != ClampKnob(-5) {
		t.Fatal("clamp not idempotent at lower bound")
	}
}

func TestClampControlSaturates(t *testing.T) {
	if got := ClampControl(ControlMax + 500); got != ControlMax {
		t.Fatalf("ClampControl(high) = %d, want %d", got, ControlMax)
	}

	if got := ClampControl(-3); got != 0 {
		t.Fatalf("ClampControl(-3) = %d, want 0", got)
	}
}

func TestScalePhaseEndpoints(t *testing.T) {
	phases := []uint32{0, 1, 0x40000000, 0x80000000, 0xFFFFFFFF}

	for _, ph := range phases {
		if got := ScalePhase(ph, KnobMax); got != ph {
			t.Fatalf("ScalePhase(%#x, max) = %#x, want identity", ph, got)
		}

		if got := ScalePhase(ph, 0); got != 0 {
			t.Fatalf("ScalePhase(%#x, 0) = %#x, want 0", ph, got)
		}

		// Saturating policy: out-of-range grow behaves like the bound.
		if got := ScalePhase(ph, KnobMax+999); got != ScalePhase(ph, KnobMax) {
			t.Fatalf("ScalePhase(%#x, over) != ScalePhase(max)", ph)
		}

		if got := ScalePhase(ph, -999); got != 0 {
			t.Fatalf("ScalePhase(%#x, under) = %#x, want 0", ph, got)
		}
	}
}

func TestScalePhaseMidpoint(t *testing.T) {
	// Half grow maps a full cycle onto half a cycle.
	if got := ScalePhase(0xFFFFFFFF, KnobMax/2); got > 0x80000000 {
		t.Fatalf("ScalePhase(full, half) = %#x, want <= half cycle", got)
	}

	if got := ScalePhase(0x80000000, KnobMax/2); got != 0x40000000 {
		t.Fatalf("ScalePhase(half, half) = %#x, want quarter", got)
	}
}

func BenchmarkSine(b *testing.B) {
	var acc int32

	ph := uint32(0)
	for range b.N {
		acc += Sine(ph)
		ph += 0x01234567
	}

	_ = acc
}
