package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/san-kum/shapeshift/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runTrace steps the engine on simulated time: one Advance per frame and one
// scheduler Step per interval, the same cadence the live view keeps.
func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if traceTime <= 0 {
		return fmt.Errorf("time must be positive, got %f", traceTime)
	}

	eng, sched, err := newRig(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()
	defer sched.Stop()

	dt := 1 / float64(cfg.Render.FPS)
	interval := cfg.Interval().Seconds()
	frames := int(traceTime / dt)

	tr := store.NewTrace(cfg.Seed, cfg.Points, cfg.Render.FPS, traceTime)
	tr.Visit(eng.ActiveName())

	t, nextChange := 0.0, interval
	for i := 0; i < frames; i++ {
		t += dt
		if t >= nextChange {
			nextChange += interval
			if _, err := sched.Step(); err != nil {
				return fmt.Errorf("shape change at t=%.2fs: %w", t, err)
			}
			tr.Visit(eng.ActiveName())
			logger.Debug("shape change", zap.Float64("t", t), zap.String("shape", eng.ActiveName()))
		}
		eng.Advance(dt)

		var s shapes.Stats
		eng.ReadVisible(func(pc shapes.PointCloud) { s = pc.Stats() })
		tr.Record(t, eng.Progress(), s.RMS)
	}

	if traceOut != "" {
		if err := store.ExportJSON(traceOut, tr); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		logger.Info("trace written", zap.String("path", traceOut))
	}

	if tr.Frames < 2 {
		return fmt.Errorf("not enough frames to plot (time=%.2fs, fps=%d)", traceTime, cfg.Render.FPS)
	}

	fmt.Println(asciigraph.Plot(tr.Progress,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("morph progress")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(tr.RMS,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("rms radius")))
	fmt.Printf("\nframes: %d  dt: %.4fs  changes: %d\n", frames, dt, sched.Changes())
	fmt.Printf("shapes: %v\n", tr.Shapes)

	logger.Info("trace complete", zap.Int("frames", frames), zap.Int("changes", sched.Changes()))
	return nil
}
