// Command tracerender renders the synthesis core offline into a stereo
// WAV file, left channel horizontal and right channel vertical, ready
// for an oscilloscope in X-Y mode.
//
// Usage:
//
//	tracerender [flags] out.wav
//
// Examples:
//
//	tracerender -seconds 10 out.wav
//	tracerender -bank 1 -slot 2 -freq 1024 -rot 2200 spin.wav
//	tracerender -bank 2 -grow 3000 -mode offset morph.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/engine"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/modroute"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/phase"
)

func main() {
	seconds := flag.Float64("seconds", 5, "duration to render")
	rate := flag.Int("rate", 48000, "sample rate in Hz")
	bankIdx := flag.Int("bank", 0, "bank to select")
	slotIdx := flag.Int("slot", 0, "slot to select within the bank")
	freq := flag.Int("freq", 2048, "frequency control, 0..4095")
	grow := flag.Int("grow", 4096, "growth knob, 0..4096")
	rot := flag.Int("rot", 2048, "rotation/morph knob, 0..4096")
	mode := flag.String("mode", "offset", "modulation mode: attenuate or offset")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tracerender [flags] out.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders the X-Y trace into a stereo WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	routeMode, err := parseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	eng, err := engine.New(engine.WithPhaseOptions(phase.WithSampleRate(float64(*rate))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	selectShape(eng, *bankIdx, *slotIdx)

	in := engine.Inputs{
		FreqControl: int32(*freq),
		GrowKnob:    int32(*grow),
		RotKnob:     int32(*rot),
		Switch:      routeMode,
	}

	n := int(*seconds * float64(*rate))
	data := make([]int, 0, 2*n)

	for i := 0; i < n; i++ {
		out := eng.Tick(in)

		data = append(data, int(pcm16(out.X)), int(pcm16(out.Y)))
	}

	if err := writeWAV(flag.Arg(0), *rate, data); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// pcm16 converts a Q12 trace sample to 16-bit PCM. The clamp keeps a
// +2048 sample from wrapping to the negative rail.
func pcm16(v int32) int16 {
	if v > 2047 {
		v = 2047
	}

	if v < -2048 {
		v = -2048
	}

	return int16(v << 4)
}

func parseMode(s string) (modroute.Mode, error) {
	switch s {
	case "attenuate":
		return modroute.ModeAttenuate, nil
	case "offset":
		return modroute.ModeOffset, nil
	}

	return 0, fmt.Errorf("unknown mode %q", s)
}

// selectShape walks the selector to the requested bank and slot with the
// same triggers the hardware buttons fire.
func selectShape(eng *engine.Engine, bankIdx, slotIdx int) {
	// Bounded walks so out-of-range indices stop at a wrap instead of
	// spinning.
	for i := 0; i < 16; i++ {
		if b, _ := eng.Selection(); b == bankIdx {
			break
		}

		eng.Tick(engine.Inputs{NextBank: true})
	}

	for i := 0; i < 16; i++ {
		if _, s := eng.Selection(); s == slotIdx {
			break
		}

		eng.Tick(engine.Inputs{NextSlot: true})
	}
}

func writeWAV(path string, rate int, data []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, rate, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return err
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
