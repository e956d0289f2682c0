package shapes

import "errors"

// ErrUnknownShape is returned when a shape name is not registered.
var ErrUnknownShape = errors.New("shapes: unknown shape")
