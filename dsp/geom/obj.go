package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNoVertices indicates an OBJ input without vertex data.
	ErrNoVertices = errors.New("geom: no vertices in OBJ input")
	// ErrNoEdges indicates an OBJ input without face data to derive edges from.
	ErrNoEdges = errors.New("geom: no faces in OBJ input")
)

// ParseOBJ reads a Wavefront OBJ wireframe: `v` lines become vertices and
// `f` lines are decomposed into unique undirected edges. Texture/normal
// indices (`v/t/n`) are accepted and ignored.
func ParseOBJ(r io.Reader) (Mesh, error) {
	var m Mesh

	seen := make(map[[2]int]struct{})
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return Mesh{}, fmt.Errorf("geom: line %d: vertex needs 3 coordinates", lineNo)
			}

			var v Vec3
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[1+i], 64)
				if err != nil {
					return Mesh{}, fmt.Errorf("geom: line %d: bad coordinate %q: %w", lineNo, fields[1+i], err)
				}

				v[i] = c
			}

			m.Vertices = append(m.Vertices, v)

		case "f":
			face := make([]int, 0, len(fields)-1)

			for _, fld := range fields[1:] {
				idxStr, _, _ := strings.Cut(fld, "/")

				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return Mesh{}, fmt.Errorf("geom: line %d: bad face index %q: %w", lineNo, fld, err)
				}

				// OBJ indices are 1-based; negative indices count from the end.
				if idx < 0 {
					idx = len(m.Vertices) + idx
				} else {
					idx--
				}

				if idx < 0 || idx >= len(m.Vertices) {
					return Mesh{}, fmt.Errorf("geom: line %d: face index %d out of range", lineNo, idx+1)
				}

				face = append(face, idx)
			}

			for i := range face {
				a, b := face[i], face[(i+1)%len(face)]
				if a > b {
					a, b = b, a
				}

				if a == b {
					continue
				}

				if _, ok := seen[[2]int{a, b}]; ok {
					continue
				}

				seen[[2]int{a, b}] = struct{}{}
				m.Edges = append(m.Edges, [2]int{a, b})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Mesh{}, fmt.Errorf("geom: reading OBJ: %w", err)
	}

	if len(m.Vertices) == 0 {
		return Mesh{}, ErrNoVertices
	}

	if len(m.Edges) == 0 {
		return Mesh{}, ErrNoEdges
	}

	return m, nil
}
