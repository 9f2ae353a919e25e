// Package geom turns 3-D meshes and parametric 2-D curves into the
// table data the shape generators consume.
//
// A mesh is reduced to a single pen stroke: a vertex path that traverses
// every edge exactly once where possible, jumping to the nearest
// unvisited edge when the walk gets stuck. The same algorithm backs both
// the built-in solids and the cmd/meshprep conversion tool.
package geom
