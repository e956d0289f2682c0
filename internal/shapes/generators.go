package shapes

import (
	"math"
	"math/rand"
)

// Generator produces a fresh point cloud of a fixed size.
type Generator func() PointCloud

// Params fixes the point count and base radius shared by every generator.
type Params struct {
	Count  int
	Radius float64
}

const (
	spiralCoils  = 10
	spiralHeight = 3.0
	knotP, knotQ = 2, 3
	knotTurns    = 3
	knotScale    = 0.4
)

// Sphere samples uniformly inside a ball of radius p.Radius.
func Sphere(p Params, rng *rand.Rand) PointCloud {
	out := New(p.Count)
	for i := 0; i < out.Len(); i++ {
		x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		l := math.Sqrt(x*x + y*y + z*z)
		if l == 0 {
			// Degenerate direction, keep the point at the centre.
			out.Set(i, 0, 0, 0)
			continue
		}
		r := p.Radius * math.Cbrt(rng.Float64()) / l
		out.Set(i, x*r, y*r, z*r)
	}
	return out
}

// Box samples uniformly inside a cube of half-width 0.9*p.Radius.
func Box(p Params, rng *rand.Rand) PointCloud {
	out := New(p.Count)
	half := p.Radius * 0.9
	for i := range out {
		out[i] = rng.Float64()*2*half - half
	}
	return out
}

// Cylinder samples a solid cylinder around the y axis.
func Cylinder(p Params, rng *rand.Rand) PointCloud {
	out := New(p.Count)
	radius := p.Radius * 0.8
	halfH := p.Radius * 1.25
	for i := 0; i < out.Len(); i++ {
		angle := rng.Float64() * 2 * math.Pi
		r := rng.Float64() * radius
		y := rng.Float64()*2*halfH - halfH
		out.Set(i, r*math.Cos(angle), y, r*math.Sin(angle))
	}
	return out
}

// Torus samples the surface of a ring torus in the xy plane.
func Torus(p Params, rng *rand.Rand) PointCloud {
	out := New(p.Count)
	major, minor := p.Radius*1.2, p.Radius*0.4
	for i := 0; i < out.Len(); i++ {
		u := rng.Float64() * 2 * math.Pi
		v := rng.Float64() * 2 * math.Pi
		ring := major + minor*math.Cos(v)
		out.Set(i, ring*math.Cos(u), ring*math.Sin(u), minor*math.Sin(v))
	}
	return out
}

// Heart traces the classic heart curve in the xy plane and spreads it along z.
func Heart(p Params, rng *rand.Rand) PointCloud {
	out := New(p.Count)
	for i := 0; i < out.Len(); i++ {
		t := rng.Float64() * 2 * math.Pi
		s := math.Sin(t)
		x := s * s * s
		y := (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) / 13
		z := (rng.Float64() - 0.5) * 2 * p.Radius
		out.Set(i, x*p.Radius, y*p.Radius, z)
	}
	return out
}

// Spiral is deterministic: point i depends only on i and the point count.
func Spiral(p Params) PointCloud {
	out := New(p.Count)
	n := float64(out.Len())
	height := p.Radius * spiralHeight
	for i := 0; i < out.Len(); i++ {
		s := float64(i) / n
		t := s * 2 * math.Pi * spiralCoils
		out.Set(i, math.Cos(t)*p.Radius, s*height-height/2, math.Sin(t)*p.Radius)
	}
	return out
}

// TorusKnot is deterministic and follows a (2,3) knot scaled by 0.4.
func TorusKnot(p Params) PointCloud {
	out := New(p.Count)
	n := float64(out.Len())
	for i := 0; i < out.Len(); i++ {
		t := float64(i) / n * 2 * math.Pi * knotTurns
		ring := p.Radius + math.Cos(knotQ*t)
		out.Set(i,
			ring*math.Cos(knotP*t)*knotScale,
			ring*math.Sin(knotP*t)*knotScale,
			math.Sin(knotQ*t)*knotScale)
	}
	return out
}
