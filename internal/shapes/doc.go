// Package shapes generates the point clouds a morph engine moves between.
//
// A [PointCloud] is a flat buffer of 3N coordinates (x, y, z interleaved) so it
// can be handed to a renderer without conversion. Seven generators are provided:
//
//   - sphere, box, cylinder, torus, heart: uniform random sampling
//   - spiral, torusknot: deterministic for a given point count
//
// # Example
//
//	set, _ := shapes.NewSet(shapes.Params{Count: 3000, Radius: 1}, rng)
//	cloud := set[0].Generate()
package shapes
