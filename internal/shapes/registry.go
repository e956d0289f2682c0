package shapes

import (
	"fmt"
	"math/rand"
)

// Shape pairs a generator with its name.
type Shape struct {
	Name     string
	Generate Generator
}

// Set is the ordered list of shapes an engine morphs between.
// Generators in a Set share one random source and must not be called concurrently.
type Set []Shape

var order = []string{"sphere", "box", "cylinder", "torus", "heart", "spiral", "torusknot"}

var builders = map[string]func(Params, *rand.Rand) Generator{
	"sphere":    func(p Params, r *rand.Rand) Generator { return func() PointCloud { return Sphere(p, r) } },
	"box":       func(p Params, r *rand.Rand) Generator { return func() PointCloud { return Box(p, r) } },
	"cylinder":  func(p Params, r *rand.Rand) Generator { return func() PointCloud { return Cylinder(p, r) } },
	"torus":     func(p Params, r *rand.Rand) Generator { return func() PointCloud { return Torus(p, r) } },
	"heart":     func(p Params, r *rand.Rand) Generator { return func() PointCloud { return Heart(p, r) } },
	"spiral":    func(p Params, _ *rand.Rand) Generator { return func() PointCloud { return Spiral(p) } },
	"torusknot": func(p Params, _ *rand.Rand) Generator { return func() PointCloud { return TorusKnot(p) } },
}

// Names returns every shape name in canonical order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Lookup builds the generator registered under name.
func Lookup(name string, p Params, rng *rand.Rand) (Generator, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return b(p, rng), nil
}

// NewSet builds the named shapes in the given order, or all of them when no
// names are passed.
func NewSet(p Params, rng *rand.Rand, names ...string) (Set, error) {
	if len(names) == 0 {
		names = order
	}
	set := make(Set, 0, len(names))
	for _, name := range names {
		gen, err := Lookup(name, p, rng)
		if err != nil {
			return nil, err
		}
		set = append(set, Shape{Name: name, Generate: gen})
	}
	return set, nil
}

// Index returns the position of name in the set, or -1.
func (s Set) Index(name string) int {
	for i, sh := range s {
		if sh.Name == name {
			return i
		}
	}
	return -1
}

func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, sh := range s {
		out[i] = sh.Name
	}
	return out
}
