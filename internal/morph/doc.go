// Package morph moves a point cloud from one shape to another.
//
// An [Engine] owns three buffers of equal length: the shape the morph starts
// from, the shape it moves towards, and the visible buffer a renderer reads.
// A render driver calls [Engine.Advance] once per frame with the elapsed time;
// a scheduler calls [Engine.BeginTransition] to start the next morph.
//
// # Example
//
//	eng, _ := morph.New(morph.Config{Points: 3000, MorphDuration: 2 * time.Second}, set)
//	defer eng.Close()
//	eng.BeginTransition(3, nil) // start from the visible buffer
//	for eng.Transitioning() {
//		eng.Advance(1.0 / 60)
//	}
//
// # Thread Safety
//
// All Engine methods are safe for concurrent use. After [Engine.Close] every
// mutating call is a no-op.
package morph
