package geom

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Vec3 is a 3-D position in model units.
type Vec3 [3]float64

// Mesh is an edge graph: vertex positions plus unique undirected edges
// as index pairs into Vertices.
type Mesh struct {
	Vertices []Vec3
	Edges    [][2]int
}

// Cube returns the unit cube wireframe (8 vertices, 12 edges).
func Cube() Mesh {
	var verts []Vec3
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				verts = append(verts, Vec3{x, y, z})
			}
		}
	}

	var edges [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			// Axis-aligned neighbors differ in exactly one coordinate.
			diff := 0
			for k := 0; k < 3; k++ {
				if verts[i][k] != verts[j][k] {
					diff++
				}
			}

			if diff == 1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return Mesh{Vertices: verts, Edges: edges}
}

// Cone returns a cone wireframe with the given number of base segments:
// a base ring at y=-1 and side edges up to the apex at y=+1.
func Cone(segments int) Mesh {
	if segments < 3 {
		segments = 3
	}

	verts := make([]Vec3, 0, segments+1)
	verts = append(verts, Vec3{0, 1, 0})

	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, Vec3{math.Cos(a), -1, math.Sin(a)})
	}

	edges := make([][2]int, 0, 2*segments)
	for i := 0; i < segments; i++ {
		base := 1 + i
		next := 1 + (i+1)%segments
		edges = append(edges, [2]int{base, next}, [2]int{0, base})
	}

	return Mesh{Vertices: verts, Edges: edges}
}

// Icosphere returns the level-0 icosphere (a regular icosahedron,
// 12 vertices, 30 edges).
func Icosphere() Mesh {
	phi := (1 + math.Sqrt(5)) / 2

	verts := []Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	// Icosahedron edges all have squared length 4 in these coordinates.
	var edges [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if math.Abs(distSq(verts[i], verts[j])-4) < 1e-9 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return Mesh{Vertices: verts, Edges: edges}
}

// EdgePath returns a vertex index sequence that traverses every edge of
// the mesh exactly once. When no connected unvisited edge remains it
// jumps to the nearest endpoint of an unvisited edge, inserting the jump
// target into the path. The walk is deterministic in edge order.
func (m Mesh) EdgePath() []int {
	if len(m.Edges) == 0 {
		return nil
	}

	visited := make([]bool, len(m.Edges))
	remaining := len(m.Edges)

	cur := m.Edges[0][0]
	path := []int{cur}

	for remaining > 0 {
		next := -1

		for i, e := range m.Edges {
			if visited[i] {
				continue
			}

			if e[0] == cur {
				next = e[1]
			} else if e[1] == cur {
				next = e[0]
			} else {
				continue
			}

			visited[i] = true
			remaining--

			break
		}

		if next >= 0 {
			path = append(path, next)
			cur = next

			continue
		}

		// Stuck: jump to the closest endpoint of any unvisited edge.
		bestDist := math.Inf(1)
		bestEdge := -1
		bestStart, bestEnd := 0, 0

		for i, e := range m.Edges {
			if visited[i] {
				continue
			}

			if d := distSq(m.Vertices[cur], m.Vertices[e[0]]); d < bestDist {
				bestDist, bestEdge = d, i
				bestStart, bestEnd = e[0], e[1]
			}

			if d := distSq(m.Vertices[cur], m.Vertices[e[1]]); d < bestDist {
				bestDist, bestEdge = d, i
				bestStart, bestEnd = e[1], e[0]
			}
		}

		visited[bestEdge] = true
		remaining--

		path = append(path, bestStart, bestEnd)
		cur = bestEnd
	}

	return path
}

// PathPoints12Bit resolves a vertex path into concrete positions scaled
// to the signed 12-bit cube [-2047, 2047], the shape generators' model
// range.
func (m Mesh) PathPoints12Bit(path []int) [][3]int16 {
	if len(path) == 0 {
		return nil
	}

	// Flatten per axis so the scaling runs as three block operations.
	n := len(m.Vertices)
	axes := [3][]float64{
		make([]float64, n),
		make([]float64, n),
		make([]float64, n),
	}

	for i, v := range m.Vertices {
		axes[0][i], axes[1][i], axes[2][i] = v[0], v[1], v[2]
	}

	maxAbs := 0.0
	for _, axis := range axes {
		if m := vecmath.MaxAbs(axis); m > maxAbs {
			maxAbs = m
		}
	}

	if maxAbs > 0 {
		scale := 2047 / maxAbs
		for _, axis := range axes {
			vecmath.ScaleBlockInPlace(axis, scale)
		}
	}

	out := make([][3]int16, len(path))
	for i, idx := range path {
		out[i] = [3]int16{
			int16(math.Round(axes[0][idx])),
			int16(math.Round(axes[1][idx])),
			int16(math.Round(axes[2][idx])),
		}
	}

	return out
}

func distSq(a, b Vec3) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]

	return d0*d0 + d1*d1 + d2*d2
}
