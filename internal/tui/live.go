package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/san-kum/shapeshift/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ramp shades points from far to near.
var ramp = []rune(".:oO@")

// LiveRenderer draws frames as plain characters with raw ANSI control codes,
// for terminals where the full-screen view is not wanted.
type LiveRenderer struct {
	out    io.Writer
	width  int
	height int
	canvas [][]rune
	depth  [][]float64
	buf    strings.Builder
}

func NewLiveRenderer(out io.Writer, width, height int) *LiveRenderer {
	width, height = max(width, 10), max(height, 5)
	canvas := make([][]rune, height)
	depth := make([][]float64, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		depth[i] = make([]float64, width)
	}
	return &LiveRenderer{out: out, width: width, height: height, canvas: canvas, depth: depth}
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
			r.depth[y][x] = math.Inf(-1)
		}
	}
}

// plot keeps the nearest point per cell. Cells are twice as tall as wide, so
// the projection runs on twice the rows and folds pairs of rows together.
func (r *LiveRenderer) plot(cloud shapes.PointCloud, cam *viz.Camera, radius float64) {
	sw, sh := r.width, r.height*2
	for i := 0; i+2 < len(cloud); i += 3 {
		x, y, d, ok := cam.Project(viz.Vec3{X: cloud[i], Y: cloud[i+1], Z: cloud[i+2]}, sw, sh)
		if !ok {
			continue
		}
		row := y / 2
		if d <= r.depth[row][x] {
			continue
		}
		r.depth[row][x] = d
		r.canvas[row][x] = shade(d, radius)
	}
}

func shade(depth, radius float64) rune {
	if radius <= 0 {
		return ramp[len(ramp)-1]
	}
	t := (depth/radius + 1) / 2
	idx := int(t * float64(len(ramp)))
	return ramp[max(0, min(len(ramp)-1, idx))]
}

// Frame draws one frame of cloud with a status line.
func (r *LiveRenderer) Frame(cloud shapes.PointCloud, cam *viz.Camera, radius float64, status string) error {
	r.clear()
	r.plot(cloud, cam, radius)

	r.buf.Reset()
	r.buf.WriteString(clearScreen)
	r.buf.WriteString("  " + status + "\n")
	r.buf.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	for _, row := range r.canvas {
		r.buf.WriteString("  ")
		r.buf.WriteString(string(row))
		r.buf.WriteByte('\n')
	}
	r.buf.WriteString("  " + strings.Repeat("-", r.width) + "\n")

	_, err := io.WriteString(r.out, r.buf.String())
	return err
}

// Status formats the status line for a frame.
func Status(shape string, progress, t float64) string {
	return fmt.Sprintf("%s  %3.0f%%  t=%.2fs", shape, progress*100, t)
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
