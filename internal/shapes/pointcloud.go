package shapes

import "math"

// PointCloud holds N points as x,y,z triples.
type PointCloud []float64

// New returns a zeroed cloud of n points; negative n gives an empty cloud.
func New(n int) PointCloud {
	if n < 0 {
		n = 0
	}
	return make(PointCloud, n*3)
}

// Len returns the number of points.
func (p PointCloud) Len() int { return len(p) / 3 }

// Clone returns a copy that shares no storage with p.
func (p PointCloud) Clone() PointCloud {
	c := make(PointCloud, len(p))
	copy(c, p)
	return c
}

// Point returns the coordinates of point i.
func (p PointCloud) Point(i int) (x, y, z float64) {
	i3 := i * 3
	return p[i3], p[i3+1], p[i3+2]
}

// Set overwrites point i.
func (p PointCloud) Set(i int, x, y, z float64) {
	i3 := i * 3
	p[i3], p[i3+1], p[i3+2] = x, y, z
}

// IsValid reports whether the buffer holds whole triples of finite values.
func (p PointCloud) IsValid() bool {
	if len(p)%3 != 0 {
		return false
	}
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stats summarises where a cloud sits and how far it spreads.
type Stats struct {
	Centroid [3]float64
	Min, Max [3]float64
	RMS      float64 // root mean square distance from the origin
}

// Stats computes the summary in one pass. An empty cloud gives zero Stats.
func (p PointCloud) Stats() Stats {
	var s Stats
	n := p.Len()
	if n == 0 {
		return s
	}
	for k := 0; k < 3; k++ {
		s.Min[k], s.Max[k] = math.Inf(1), math.Inf(-1)
	}
	sumSq := 0.0
	for i := 0; i < n; i++ {
		x, y, z := p.Point(i)
		for k, v := range [3]float64{x, y, z} {
			s.Centroid[k] += v
			s.Min[k] = math.Min(s.Min[k], v)
			s.Max[k] = math.Max(s.Max[k], v)
		}
		sumSq += x*x + y*y + z*z
	}
	for k := range s.Centroid {
		s.Centroid[k] /= float64(n)
	}
	s.RMS = math.Sqrt(sumSq / float64(n))
	return s
}
