package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates a buffer whose length is not 3 * Points.
	ErrLengthMismatch = errors.New("morph: point buffer length mismatch")

	// ErrShapeIndex indicates an index outside the engine's shape set.
	ErrShapeIndex = errors.New("morph: shape index out of range")

	ErrNoShapes = errors.New("morph: empty shape set")

	ErrInvalidConfig = errors.New("morph: invalid configuration")

	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("morph: engine closed")
)

// ShapeError reports a generator that broke the buffer length invariant.
type ShapeError struct {
	Index   int
	Name    string
	Got     int
	Want    int
	Wrapped error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape %d (%s) produced %d values, want %d", e.Wrapped, e.Index, e.Name, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error {
	return e.Wrapped
}
