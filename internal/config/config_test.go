package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/shapeshift/internal/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3000, cfg.Points)
	assert.Equal(t, 2*time.Second, cfg.MorphDuration())
	assert.Equal(t, 4*time.Second, cfg.Interval())
	assert.Equal(t, shapes.Params{Count: 3000, Radius: 1}, cfg.ShapeParams())
	assert.Equal(t, cfg.MorphDuration(), cfg.EngineConfig().MorphDuration)
	assert.Equal(t, cfg.Interval(), cfg.SchedulerConfig().Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative points", func(c *Config) { c.Points = -1 }},
		{"zero radius", func(c *Config) { c.Radius = 0 }},
		{"zero morph", func(c *Config) { c.MorphMs = 0 }},
		{"negative interval", func(c *Config) { c.IntervalMs = -5 }},
		{"zero fps", func(c *Config) { c.Render.FPS = 0 }},
		{"unknown shape", func(c *Config) { c.Shapes = []string{"sphere", "pyramid"} }},
		{"duplicate shape", func(c *Config) { c.Shapes = []string{"spiral", "torus", "spiral"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "expected ErrInvalid, got %v", err)
		})
	}

	cfg := DefaultConfig()
	cfg.Shapes = []string{"spiral"}
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	data := "points: 500\nshapes: [torus, heart]\nrender:\n  theme: ocean\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Points)
	assert.Equal(t, []string{"torus", "heart"}, cfg.Shapes)
	assert.Equal(t, "ocean", cfg.Render.Theme)
	assert.Equal(t, DefaultMorphMs, cfg.MorphMs)
	assert.Equal(t, DefaultFPS, cfg.Render.FPS)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("curves")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	assert.Nil(t, GetPreset("nonexistent"))

	a := GetPreset("solids")
	a.Shapes[0] = "heart"
	assert.Equal(t, "sphere", Presets["solids"].Shapes[0], "GetPreset must not alias the preset table")
}
