package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the particles and the side panel.
type Theme struct {
	Name      string
	Particles lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeSky = Theme{
		Name:      "sky",
		Particles: lipgloss.Color("#87ceeb"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Particles: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#00ff88"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#336688"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Particles: lipgloss.Color("#ff6b6b"),
		Accent:    lipgloss.Color("#feca57"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Particles: lipgloss.Color("#b4b4b4"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#8c8c8c"),
		Muted:     lipgloss.Color("#3c3c3c"),
	}

	Themes = []Theme{ThemeSky, ThemeOcean, ThemeEmber, ThemeMono}
)

// GetTheme returns a theme by name, falling back to sky.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSky
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
