package viz

import "math"

// Input is what a frame hands the rotation: elapsed and frame time in
// seconds, scroll progress in [0,1] and a pointer in [-1,1] (y up).
type Input struct {
	Elapsed    float64
	Dt         float64
	Scroll     float64
	PointerX   float64
	PointerY   float64
	HasPointer bool
}

const (
	spinX        = 0.1
	spinY        = 0.05
	pointerSpeed = 0.1
)

// Rotation returns the cloud rotation around X and Y for one frame. It only
// orients the cloud and never feeds back into the morph.
func Rotation(in Input) (x, y float64) {
	scroll := math.Max(0, math.Min(1, in.Scroll))
	x = -scroll*math.Pi + in.Elapsed*spinX
	y = -scroll*math.Pi + in.Elapsed*spinY
	if in.HasPointer {
		y += in.PointerX * in.Dt * pointerSpeed
		x += in.PointerY * in.Dt * pointerSpeed
	}
	return x, y
}

// Viewport holds the layout decisions that depend on terminal width.
type Viewport struct {
	Distance float64
	Narrow   bool // narrow terminals ignore scroll rotation
}

func ViewportFor(cols int) Viewport {
	switch {
	case cols < 80:
		return Viewport{Distance: 3, Narrow: true}
	case cols < 110:
		return Viewport{Distance: 2.5}
	default:
		return Viewport{Distance: 2}
	}
}
