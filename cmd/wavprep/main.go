// Command wavprep converts a WAV recording of an X-Y trace into a Go
// source file holding one stereo wavetable cycle.
//
// Usage:
//
//	wavprep [flags] cycle.wav
//
// The input should contain exactly one cycle of the trace, left channel
// horizontal, right channel vertical. The cycle is resampled to the
// wavetable length in the frequency domain (keeping only the bins the
// shorter table can represent) and peak-normalized per channel.
//
// Examples:
//
//	wavprep yin.wav
//	wavprep -name DragonTable -o dragon_data.go dragon.wav
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/go-audio/wav"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/geom"
	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table"
)

var errTooShort = errors.New("input shorter than two samples")

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	name := flag.String("name", "WaveTable", "name of the generated variable")
	pkg := flag.String("pkg", "table", "package name of the generated file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavprep [flags] cycle.wav\n\n")
		fmt.Fprintf(os.Stderr, "Converts one stereo WAV cycle into a Go wavetable.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	left, right, err := readCycle(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	left, err = resample(left, table.WavetableSize)
	if err == nil {
		right, err = resample(right, table.WavetableSize)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	src, err := generate(*pkg, *name, flag.Arg(0), geom.QuantizeInt16(left), geom.QuantizeInt16(right))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readCycle decodes the WAV file into per-channel float buffers in
// [-1, 1]. Mono input feeds both channels.
func readCycle(path string) (left, right []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, nil, fmt.Errorf("%s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	ch := buf.Format.NumChannels
	if ch != 1 && ch != 2 {
		return nil, nil, fmt.Errorf("%s: %d channels, want mono or stereo", path, ch)
	}

	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = int(dec.BitDepth)
	}

	scale := 1.0 / float64(int(1)<<(bits-1))
	frames := len(buf.Data) / ch

	left = make([]float64, frames)
	right = make([]float64, frames)

	for i := 0; i < frames; i++ {
		left[i] = float64(buf.Data[i*ch]) * scale
		right[i] = float64(buf.Data[i*ch+ch-1]) * scale
	}

	return left, right, nil
}

// resample converts one cycle to n samples in the frequency domain. The
// input is truncated to a power of two, transformed, and reconstructed
// at the target length from the bins both lengths can represent.
func resample(samples []float64, n int) ([]float64, error) {
	m := 1
	for m*2 <= len(samples) {
		m *= 2
	}

	if m < 2 {
		return nil, errTooShort
	}

	fwd, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("forward plan: %w", err)
	}

	in := make([]complex128, m)
	for i := 0; i < m; i++ {
		in[i] = complex(samples[i], 0)
	}

	spec := make([]complex128, m)
	if err := fwd.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("forward FFT: %w", err)
	}

	// Shared bins below both Nyquist limits, amplitude-corrected for the
	// length change.
	k := n / 2
	if m/2 < k {
		k = m / 2
	}

	gain := complex(float64(n)/float64(m), 0)

	target := make([]complex128, n)
	target[0] = spec[0] * gain

	for i := 1; i < k; i++ {
		target[i] = spec[i] * gain
		target[n-i] = spec[m-i] * gain
	}

	inv, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("inverse plan: %w", err)
	}

	res := make([]complex128, n)
	if err := inv.Inverse(res, target); err != nil {
		return nil, fmt.Errorf("inverse FFT: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(res[i])
	}

	return out, nil
}

func generate(pkg, name, source string, left, right []int16) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by wavprep from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	typeName := "Stereo"
	sizeName := "WavetableSize"
	if pkg != "table" {
		fmt.Fprintf(&buf, "import \"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table\"\n\n")
		typeName = "table.Stereo"
		sizeName = "table.WavetableSize"
	}

	fmt.Fprintf(&buf, "// %s holds one wavetable cycle sampled from the source recording.\n", name)
	fmt.Fprintf(&buf, "var %s = %s{\n", name, typeName)

	writeChannel := func(field string, data []int16) {
		fmt.Fprintf(&buf, "\t%s: [%s]int16{", field, sizeName)

		for i, v := range data {
			if i%12 == 0 {
				fmt.Fprintf(&buf, "\n\t\t")
			}

			fmt.Fprintf(&buf, "%d, ", v)
		}

		fmt.Fprintf(&buf, "\n\t},\n")
	}

	writeChannel("Left", left)
	writeChannel("Right", right)

	fmt.Fprintf(&buf, "}\n")

	return format.Source(buf.Bytes())
}
