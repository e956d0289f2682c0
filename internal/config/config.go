package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/schedule"
	"github.com/san-kum/shapeshift/internal/shapes"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPoints     = 3000
	DefaultRadius     = 1.0
	DefaultMorphMs    = 2000
	DefaultIntervalMs = 4000
	DefaultFPS        = 30
	DefaultTheme      = "sky"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Points     int          `yaml:"points"`
	Radius     float64      `yaml:"radius"`
	MorphMs    int          `yaml:"morph_ms"`
	IntervalMs int          `yaml:"interval_ms"`
	Shapes     []string     `yaml:"shapes,omitempty"`
	Seed       int64        `yaml:"seed"`
	Render     RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Points:     DefaultPoints,
		Radius:     DefaultRadius,
		MorphMs:    DefaultMorphMs,
		IntervalMs: DefaultIntervalMs,
		Render: RenderConfig{
			FPS:   DefaultFPS,
			Theme: DefaultTheme,
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Points < 0 {
		return fmt.Errorf("%w: points must not be negative, got %d", ErrInvalid, c.Points)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalid, c.Radius)
	}
	if c.MorphMs <= 0 {
		return fmt.Errorf("%w: morph_ms must be positive, got %d", ErrInvalid, c.MorphMs)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalid, c.IntervalMs)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Render.FPS)
	}
	known := make(map[string]bool)
	for _, n := range shapes.Names() {
		known[n] = true
	}
	seen := make(map[string]bool, len(c.Shapes))
	for _, n := range c.Shapes {
		if !known[n] {
			return fmt.Errorf("%w: %w: %q", ErrInvalid, shapes.ErrUnknownShape, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: shape %q listed twice", ErrInvalid, n)
		}
		seen[n] = true
	}
	return nil
}

func (c *Config) MorphDuration() time.Duration {
	return time.Duration(c.MorphMs) * time.Millisecond
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

func (c *Config) ShapeParams() shapes.Params {
	return shapes.Params{Count: c.Points, Radius: c.Radius}
}

func (c *Config) EngineConfig() morph.Config {
	return morph.Config{Points: c.Points, MorphDuration: c.MorphDuration()}
}

func (c *Config) SchedulerConfig() schedule.Config {
	return schedule.Config{Interval: c.Interval()}
}
