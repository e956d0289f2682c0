package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"dense": {
		Points: 10000, Radius: 1, MorphMs: 2000, IntervalMs: 4000,
		Render: RenderConfig{FPS: 30, Theme: "sky"},
	},
	"sparse": {
		Points: 800, Radius: 1, MorphMs: 2000, IntervalMs: 4000,
		Render: RenderConfig{FPS: 30, Theme: "mono"},
	},
	"calm": {
		Points: 3000, Radius: 1, MorphMs: 4000, IntervalMs: 8000,
		Render: RenderConfig{FPS: 24, Theme: "ocean"},
	},
	"frantic": {
		Points: 3000, Radius: 1, MorphMs: 600, IntervalMs: 1200,
		Render: RenderConfig{FPS: 60, Theme: "ember"},
	},
	"solids": {
		Points: 3000, Radius: 1, MorphMs: 2000, IntervalMs: 4000,
		Shapes: []string{"sphere", "box", "cylinder", "torus"},
		Render: RenderConfig{FPS: 30, Theme: "sky"},
	},
	"curves": {
		Points: 3000, Radius: 1, MorphMs: 2000, IntervalMs: 4000,
		Shapes: []string{"heart", "spiral", "torusknot"},
		Render: RenderConfig{FPS: 30, Theme: "ember"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Shapes = append([]string(nil), p.Shapes...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
