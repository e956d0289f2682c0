package main

import (
	"math/rand"

	"github.com/san-kum/shapeshift/internal/config"
	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/schedule"
	"github.com/san-kum/shapeshift/internal/shapes"
)

// newRig builds the engine and its scheduler from cfg. The scheduler is not
// started. Shapes and scheduler draw from separate sources because they run
// on different goroutines.
func newRig(cfg *config.Config) (*morph.Engine, *schedule.Scheduler, error) {
	set, err := shapes.NewSet(cfg.ShapeParams(), rand.New(rand.NewSource(cfg.Seed)), cfg.Shapes...)
	if err != nil {
		return nil, nil, err
	}
	eng, err := morph.New(cfg.EngineConfig(), set)
	if err != nil {
		return nil, nil, err
	}
	sched, err := schedule.New(cfg.SchedulerConfig(), eng, rand.New(rand.NewSource(cfg.Seed+1)), logger)
	if err != nil {
		eng.Close()
		return nil, nil, err
	}
	return eng, sched, nil
}
