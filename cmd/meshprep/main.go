// Command meshprep converts a Wavefront OBJ wireframe into a Go source
// file holding the edge-path table the mesh generators trace.
//
// Usage:
//
//	meshprep [flags] model.obj
//
// The output traverses every edge of the model exactly once, with jump
// segments inserted where the edge graph has no Eulerian continuation,
// scaled to the signed 12-bit model cube.
//
// Examples:
//
//	meshprep cube.obj
//	meshprep -name TorusPath -o torus_data.go torus.obj
//	meshprep -pkg shapes -name Ship ship.obj
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"github.com/indiepaleale/Trace-Workshop-Computer/dsp/geom"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	name := flag.String("name", "MeshPath", "name of the generated variable")
	pkg := flag.String("pkg", "table", "package name of the generated file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: meshprep [flags] model.obj\n\n")
		fmt.Fprintf(os.Stderr, "Converts an OBJ wireframe into a Go edge-path table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	mesh, err := geom.ParseOBJ(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	points := mesh.PathPoints12Bit(mesh.EdgePath())

	src, err := generate(*pkg, *name, flag.Arg(0), points)
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

func generate(pkg, name, source string, points [][3]int16) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by meshprep from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	typeName := "Path"
	if pkg != "table" {
		fmt.Fprintf(&buf, "import \"github.com/indiepaleale/Trace-Workshop-Computer/dsp/table\"\n\n")
		typeName = "table.Path"
	}

	fmt.Fprintf(&buf, "// %s traces %d path points covering the source wireframe.\n", name, len(points))
	fmt.Fprintf(&buf, "var %s = %s{\n", name, typeName)

	for _, p := range points {
		fmt.Fprintf(&buf, "\t{X: %d, Y: %d, Z: %d},\n", p[0], p[1], p[2])
	}

	fmt.Fprintf(&buf, "}\n")

	return format.Source(buf.Bytes())
}
