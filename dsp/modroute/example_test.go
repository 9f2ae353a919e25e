package modroute_test

import (
	"fmt"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/modroute"
)

func ExampleRouter_Route() {
	r := modroute.New()

	// Half-open knob attenuates the audio input to half amplitude.
	mod1, _ := r.Route(2048, 0, 1000, 0, modroute.ModeAttenuate)
	fmt.Println(mod1)
	// Output:
	// 500
}
