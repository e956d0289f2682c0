package viz

import (
	"math"

	"github.com/san-kum/shapeshift/internal/shapes"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera looks down -Z from Distance with a perspective projection. The cloud
// is rotated by Rot before projection, and by Tilt around Z after that.
type Camera struct {
	Distance float64
	Near     float64
	Zoom     float64
	Rot      Vec3
	Tilt     float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 2, Near: 0.05, Zoom: 1, Tilt: math.Pi / 4}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint applies the Y rotation, then X, then the Z tilt.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.Rot.Y), math.Sin(c.Rot.Y)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.Rot.X), math.Sin(c.Rot.X)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cz, sz := math.Cos(c.Tilt), math.Sin(c.Tilt)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point onto a sw x sh screen.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(math.Floor(rot.X*scale*pScale)) + sw/2
	sy := int(math.Floor(-rot.Y*scale*pScale)) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// RenderCloud clears the canvas and plots every point of cloud. It does not
// allocate.
func RenderCloud(c *Canvas, cloud shapes.PointCloud, cam *Camera) {
	if c == nil || cam == nil {
		return
	}
	c.Clear()
	sw, sh := c.DotSize()
	for i := 0; i+2 < len(cloud); i += 3 {
		x, y, _, ok := cam.Project(Vec3{cloud[i], cloud[i+1], cloud[i+2]}, sw, sh)
		if ok {
			c.Set(x, y)
		}
	}
}
