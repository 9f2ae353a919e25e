// Command traceview draws the synthesis core's X-Y trace in a window,
// emulating an oscilloscope in X-Y mode with a short green afterglow.
//
// Usage:
//
//	traceview [flags]
//
// Keys:
//
//	B          next bank
//	S          next slot
//	O          next oscillator
//	M          toggle modulation mode
//	left/right rotation knob
//	up/down    growth knob
//	-/=        frequency
//	Esc        quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/engine"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/modroute"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/phase"
)

const (
	screenSize = 800
	sampleRate = 48000

	// Trace samples drawn per frame at 60 fps.
	samplesPerFrame = sampleRate / 60
)

type game struct {
	eng *engine.Engine
	in  engine.Inputs

	points [][2]float32
	bank   int
	slot   int
}

func newGame(rate float64) (*game, error) {
	eng, err := engine.New(engine.WithPhaseOptions(phase.WithSampleRate(rate)))
	if err != nil {
		return nil, err
	}

	return &game{
		eng: eng,
		in: engine.Inputs{
			FreqControl: 512,
			GrowKnob:    4096,
			RotKnob:     2048,
			Switch:      modroute.ModeOffset,
		},
		points: make([][2]float32, 0, samplesPerFrame),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.in.NextBank = inpututil.IsKeyJustPressed(ebiten.KeyB)
	g.in.NextSlot = inpututil.IsKeyJustPressed(ebiten.KeyS)
	g.in.NextOsc = inpututil.IsKeyJustPressed(ebiten.KeyO)

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.in.Switch == modroute.ModeOffset {
			g.in.Switch = modroute.ModeAttenuate
		} else {
			g.in.Switch = modroute.ModeOffset
		}
	}

	g.in.RotKnob = adjust(g.in.RotKnob, ebiten.KeyArrowRight, ebiten.KeyArrowLeft, 8, 4096)
	g.in.GrowKnob = adjust(g.in.GrowKnob, ebiten.KeyArrowUp, ebiten.KeyArrowDown, 16, 4096)
	g.in.FreqControl = adjust(g.in.FreqControl, ebiten.KeyEqual, ebiten.KeyMinus, 4, 4095)

	g.points = g.points[:0]

	for i := 0; i < samplesPerFrame; i++ {
		out := g.eng.Tick(g.in)

		// Triggers fire on the first sample of the frame only.
		g.in.NextBank = false
		g.in.NextSlot = false
		g.in.NextOsc = false

		g.bank = out.Bank
		g.slot = out.Slot

		const half = screenSize / 2
		g.points = append(g.points, [2]float32{
			half + float32(out.X)*half/2048,
			half - float32(out.Y)*half/2048,
		})
	}

	return nil
}

func adjust(v int32, up, down ebiten.Key, step, max int32) int32 {
	if ebiten.IsKeyPressed(up) {
		v += step
	}

	if ebiten.IsKeyPressed(down) {
		v -= step
	}

	if v < 0 {
		v = 0
	}

	if v > max {
		v = max
	}

	return v
}

func (g *game) Draw(screen *ebiten.Image) {
	trace := color.RGBA{R: 0x20, G: 0xff, B: 0x60, A: 0xff}

	for i := 1; i < len(g.points); i++ {
		p0, p1 := g.points[i-1], g.points[i]
		vector.StrokeLine(screen, p0[0], p0[1], p1[0], p1[1], 1.5, trace, true)
	}

	mode := "offset"
	if g.in.Switch == modroute.ModeAttenuate {
		mode = "attenuate"
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"bank %d slot %d | freq %d grow %d rot %d | mode %s",
		g.bank, g.slot, g.in.FreqControl, g.in.GrowKnob, g.in.RotKnob, mode))
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenSize, screenSize
}

func main() {
	flag.Parse()

	g, err := newGame(sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("traceview")

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
