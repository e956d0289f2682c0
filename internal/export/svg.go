package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/san-kum/shapeshift/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	dw, dh := canvas.DotSize()
	width, height := float64(dw)*scale, float64(dh)*scale
	dotRadius := scale * 0.4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#111112"/>
<g fill="%s">
`, width, height, width, height, fill)

	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// CloudToSVG projects cloud through cam onto a width x height canvas of
// braille cells and renders the result as SVG.
func CloudToSVG(cloud shapes.PointCloud, cam *viz.Camera, width, height int, scale float64, fill string) string {
	c := viz.NewCanvas(width, height)
	viz.RenderCloud(c, cloud, cam)
	return CanvasToSVG(c, scale, fill)
}

// WriteCSV writes one x,y,z row per point after a header.
func WriteCSV(w io.Writer, cloud shapes.PointCloud) error {
	if _, err := io.WriteString(w, "x,y,z\n"); err != nil {
		return err
	}
	for i := 0; i < cloud.Len(); i++ {
		x, y, z := cloud.Point(i)
		if _, err := fmt.Fprintf(w, "%.6f,%.6f,%.6f\n", x, y, z); err != nil {
			return err
		}
	}
	return nil
}
