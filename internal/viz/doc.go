// Package viz draws a morphing point cloud in the terminal.
//
// The package implements the render driver as a Bubble Tea program:
//
//   - [Model]: frame loop that advances the engine and draws it
//   - [Canvas]: braille dot canvas, 2x4 dots per cell
//   - [Camera]: perspective projection with the cloud's rotation
//
// # Key Bindings
//
//	Space     - Pause/Resume
//	N         - Change shape now
//	T         - Cycle color themes
//	PgUp/PgDn - Scroll progress (also mouse wheel)
//	+/-       - Zoom
//	Q         - Quit
//
// Moving the mouse over the canvas nudges the rotation.
package viz
