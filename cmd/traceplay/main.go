// Command traceplay runs the synthesis core live through the system
// audio output. Feed the left and right channels into an oscilloscope's
// X and Y inputs to see the trace.
//
// Usage:
//
//	traceplay [flags]
//
// Examples:
//
//	traceplay
//	traceplay -bank 1 -slot 1 -freq 1500 -rot 2300
//	traceplay -bank 2 -mode attenuate -seconds 30
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/engine"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/modroute"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/phase"
)

func main() {
	seconds := flag.Float64("seconds", 0, "stop after this many seconds (0 = run until interrupted)")
	rate := flag.Int("rate", 48000, "sample rate in Hz")
	bankIdx := flag.Int("bank", 0, "bank to select")
	slotIdx := flag.Int("slot", 0, "slot to select within the bank")
	freq := flag.Int("freq", 2048, "frequency control, 0..4095")
	grow := flag.Int("grow", 4096, "growth knob, 0..4096")
	rot := flag.Int("rot", 2048, "rotation/morph knob, 0..4096")
	mode := flag.String("mode", "offset", "modulation mode: attenuate or offset")
	flag.Parse()

	routeMode := modroute.ModeOffset
	if *mode == "attenuate" {
		routeMode = modroute.ModeAttenuate
	} else if *mode != "offset" {
		fmt.Fprintf(os.Stderr, "error: unknown mode %q\n", *mode)
		os.Exit(2)
	}

	eng, err := engine.New(engine.WithPhaseOptions(phase.WithSampleRate(float64(*rate))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *bankIdx && i < 16; i++ {
		eng.Tick(engine.Inputs{NextBank: true})
	}

	for i := 0; i < *slotIdx && i < 16; i++ {
		eng.Tick(engine.Inputs{NextSlot: true})
	}

	src := &engineReader{
		eng: eng,
		in: engine.Inputs{
			FreqControl: int32(*freq),
			GrowKnob:    int32(*grow),
			RotKnob:     int32(*rot),
			Switch:      routeMode,
		},
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *rate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: audio context: %v\n", err)
		os.Exit(1)
	}
	<-ready

	player := ctx.NewPlayer(src)
	player.Play()

	b, s := eng.Selection()
	fmt.Printf("playing bank %d slot %d at %d Hz sample rate\n", b, s, *rate)

	if *seconds > 0 {
		time.Sleep(time.Duration(*seconds * float64(time.Second)))
	} else {
		select {}
	}

	if err := player.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// engineReader adapts the tick loop to the byte stream the audio device
// consumes: interleaved signed 16-bit little-endian stereo frames.
type engineReader struct {
	eng *engine.Engine
	in  engine.Inputs
}

func (r *engineReader) Read(p []byte) (int, error) {
	n := len(p) / 4 * 4

	for i := 0; i < n; i += 4 {
		out := r.eng.Tick(r.in)

		l := pcm16(out.X)
		rr := pcm16(out.Y)

		p[i] = byte(l)
		p[i+1] = byte(l >> 8)
		p[i+2] = byte(rr)
		p[i+3] = byte(rr >> 8)
	}

	return n, nil
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
