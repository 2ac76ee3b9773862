package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI chrome. The canvas itself is
// colored by the simulation.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Running   lipgloss.Color
	Paused    lipgloss.Color
	Scrubbing lipgloss.Color
}

var (
	ThemeDusk = Theme{
		Name:      "dusk",
		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#bb9af7"),
		Accent:    lipgloss.Color("#e0af68"),
		Text:      lipgloss.Color("#c0caf5"),
		Muted:     lipgloss.Color("#565f89"),
		Running:   lipgloss.Color("#9ece6a"),
		Paused:    lipgloss.Color("#e0af68"),
		Scrubbing: lipgloss.Color("#7dcfff"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Running:   lipgloss.Color("#5fd068"),
		Paused:    lipgloss.Color("#ffc048"),
		Scrubbing: lipgloss.Color("#ff9ff3"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Running:   lipgloss.Color("#ffffff"),
		Paused:    lipgloss.Color("#aaaaaa"),
		Scrubbing: lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffcc00"),
		Scrubbing: lipgloss.Color("#00a8cc"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Running:   lipgloss.Color("#88ff88"),
		Paused:    lipgloss.Color("#ffff00"),
		Scrubbing: lipgloss.Color("#00cc00"),
	}

	Themes = []Theme{
		ThemeDusk,
		ThemeEmber,
		ThemeMono,
		ThemeOcean,
		ThemePhosphor,
	}
)

// GetTheme returns a theme by name, falling back to dusk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDusk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
