package main

import (
	"os"
	"time"

	"github.com/san-kum/shapeshift/internal/config"
	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/san-kum/shapeshift/internal/tui"
	"github.com/san-kum/shapeshift/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	eng, sched, err := newRig(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()
	defer sched.Stop()

	logger.Info("starting",
		zap.Int("points", cfg.Points),
		zap.Strings("shapes", cfg.Shapes),
		zap.Duration("morph", cfg.MorphDuration()),
		zap.Duration("interval", cfg.Interval()),
		zap.Int64("seed", cfg.Seed))

	sched.Start()
	if plain {
		return runPlain(eng, cfg)
	}
	return viz.RunLive(eng, sched, viz.Options{FPS: cfg.Render.FPS, Theme: cfg.Render.Theme})
}

// runPlain drives the engine from a ticker and prints each frame.
func runPlain(eng *morph.Engine, cfg *config.Config) error {
	ctx, cancel := signalContext()
	defer cancel()

	r := tui.NewLiveRenderer(os.Stdout, 70, 24)
	r.Start()
	defer r.Stop()

	cam := viz.NewCamera()
	cam.Distance = 3
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Render.FPS))
	defer ticker.Stop()

	start := time.Now()
	last := start
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			elapsed := now.Sub(start).Seconds()
			if playTime > 0 && elapsed >= playTime {
				return nil
			}

			eng.Advance(dt)
			cam.Rot.X, cam.Rot.Y = viz.Rotation(viz.Input{Elapsed: elapsed, Dt: dt})

			status := tui.Status(eng.ActiveName(), eng.Progress(), elapsed)
			var err error
			eng.ReadVisible(func(pc shapes.PointCloud) {
				err = r.Frame(pc, cam, cfg.Radius*1.6, status)
			})
			if err != nil {
				return err
			}
		}
	}
}
