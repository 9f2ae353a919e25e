package main

import "testing"

func TestPCM16Saturates(t *testing.T) {
	cases := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{2000, 32000},
		{2048, 32752},
		{-2048, -32768},
		{-9999, -32768},
	}

	for _, tc := range cases {
		if got := pcm16(tc.in); got != tc.want {
			t.Fatalf("pcm16(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
