package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/san-kum/shapeshift/internal/config"
	"github.com/san-kum/shapeshift/internal/export"
	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/san-kum/shapeshift/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func listShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	set, err := shapes.NewSet(cfg.ShapeParams(), rand.New(rand.NewSource(cfg.Seed)), cfg.Shapes...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSHAPE\tCENTROID\tMIN\tMAX\tRMS")
	for i, sh := range set {
		s := sh.Generate().Stats()
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.3f\n", i, sh.Name, vec(s.Centroid), vec(s.Min), vec(s.Max), s.RMS)
	}
	return w.Flush()
}

func vec(v [3]float64) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}

func exportShape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	gen, err := shapes.Lookup(name, cfg.ShapeParams(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	cloud := gen()

	opts := exportOptions{
		Format: format,
		Fill:   string(viz.GetTheme(cfg.Render.Theme).Particles),
		Cols:   cols,
		Rows:   rows,
		Scale:  svgScale,
	}
	if err := opts.check(); err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = fmt.Sprintf("%s-%s.%s", name, uuid.NewString()[:8], format)
	}
	if err := exportFile(path, cloud, opts); err != nil {
		return fmt.Errorf("failed to export %s: %w", name, err)
	}

	logger.Info("exported", zap.String("shape", name), zap.String("path", path), zap.Int("points", cloud.Len()))
	fmt.Printf("wrote %s\n", path)
	return nil
}

type exportOptions struct {
	Format string // svg or csv
	Fill   string
	Cols   int
	Rows   int
	Scale  float64
}

func (o exportOptions) check() error {
	switch o.Format {
	case "svg", "csv":
		return nil
	}
	return fmt.Errorf("unknown format: %s (want svg or csv)", o.Format)
}

// exportFile writes cloud to path. The format is checked before anything is
// created.
func exportFile(path string, cloud shapes.PointCloud, opts exportOptions) (err error) {
	if err := opts.check(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch opts.Format {
	case "svg":
		cam := viz.NewCamera()
		cam.Distance = 3
		_, err = f.WriteString(export.CloudToSVG(cloud, cam, opts.Cols, opts.Rows, opts.Scale, opts.Fill))
	case "csv":
		err = export.WriteCSV(f, cloud)
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPOINTS\tMORPH\tINTERVAL\tFPS\tTHEME\tSHAPES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		shapeList := "all"
		if len(p.Shapes) > 0 {
			shapeList = fmt.Sprint(p.Shapes)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%s\t%s\n",
			name, p.Points, p.MorphDuration(), p.Interval(), p.Render.FPS, p.Render.Theme, shapeList)
	}
	return w.Flush()
}
