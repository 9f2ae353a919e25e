package table

import (
	"testing"

	"github.com/indiepaleale/Trace-Workshop-Computer/internal/testutil"
)

func TestLookupAtIndexBoundaries(t *testing.T) {
	var tab [WavetableSize]int16
	tab[0] = 16000
	tab[1] = -8000
	tab[511] = 3200

	// At a zero fraction the lookup reduces to tab[index] >> 4.
	cases := []struct {
		ph   uint32
		want int32
	}{
		{0, 1000},
		{1 << 22, -500},
		{511 << 22, 200},
		{2 << 22, 0},
	}

	for _, tc := range cases {
		if got := Lookup(&tab, tc.ph); got != tc.want {
			t.Fatalf("Lookup(ph=%#x) = %d, want %d", tc.ph, got, tc.want)
		}
	}
}

func TestLookupInterpolatesMidpoint(t *testing.T) {
	var tab [WavetableSize]int16
	tab[4] = 6400
	tab[5] = 3200

	// Half fraction: exact average of the neighbors.
	ph := uint32(4<<22 | 1<<21)
	if got := Lookup(&tab, ph); got != 300 {
		t.Fatalf("midpoint lookup = %d, want 300", got)
	}
}

func TestLookupWrapsAtTableEnd(t *testing.T) {
	var tab [WavetableSize]int16
	tab[WavetableSize-1] = 16000
	tab[0] = -16000

	// The read past the last entry must interpolate toward index 0.
	ph := uint32((WavetableSize-1)<<22 | 1<<21)
	if got := Lookup(&tab, ph); got != 0 {
		t.Fatalf("wrap midpoint = %d, want 0", got)
	}
}

func TestLookupContinuity(t *testing.T) {
	sweep := testutil.PhaseSweep(8192)

	for _, tab := range []*[WavetableSize]int16{
		&YinTable.Left, &YinTable.Right,
		&StarTable.Left, &StarTable.Right,
	} {
		prev := Lookup(tab, sweep[len(sweep)-1])

		for i, ph := range sweep {
			cur := Lookup(tab, ph)

			diff := cur - prev
			if diff < 0 {
				diff = -diff
			}

			if diff > 64 {
				t.Fatalf("step %d: jump of %d between adjacent phases", i, diff)
			}

			prev = cur
		}
	}
}

func TestBuiltInPathsNormalized(t *testing.T) {
	for _, tc := range []struct {
		name  string
		path  Path
		edges int
	}{
		{"cube", CubePath, 12},
		{"cone", ConePath, 24},
		{"icosphere", IcospherePath, 30},
	} {
		if len(tc.path) < tc.edges+1 {
			t.Fatalf("%s: path has %d points, cannot cover %d edges", tc.name, len(tc.path), tc.edges)
		}

		var maxAbs int16
		for i, p := range tc.path {
			for _, c := range []int16{p.X, p.Y, p.Z} {
				if c < -2047 || c > 2047 {
					t.Fatalf("%s: point %d coordinate %d outside 12-bit cube", tc.name, i, c)
				}

				if c < 0 {
					c = -c
				}

				if c > maxAbs {
					maxAbs = c
				}
			}
		}

		// Peak normalization puts the largest coordinate at full scale.
		if maxAbs != 2047 {
			t.Fatalf("%s: peak coordinate %d, want 2047", tc.name, maxAbs)
		}
	}
}

func TestBuiltInTablesFullScale(t *testing.T) {
	for _, tc := range []struct {
		name string
		tab  *Stereo
	}{
		{"yin", &YinTable},
		{"yang", &YangTable},
		{"circle", &CircleTable},
		{"star", &StarTable},
		{"lissajous", &LissajousTable},
		{"square", &SquareTable},
	} {
		for chName, ch := range map[string]*[WavetableSize]int16{
			"left":  &tc.tab.Left,
			"right": &tc.tab.Right,
		} {
			var peak int16
			for _, v := range ch {
				if v < 0 {
					v = -v
				}

				if v > peak {
					peak = v
				}
			}

			if peak != 32767 {
				t.Fatalf("%s/%s: peak %d, want full scale 32767", tc.name, chName, peak)
			}
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	var ph uint32

	for range b.N {
		Lookup(&CircleTable.Left, ph)
		ph += 87654321
	}
}
