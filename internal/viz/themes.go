package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used to draw a plane.
type Theme struct {
	Name   string
	Alive  lipgloss.Color
	Border lipgloss.Color
	Title  lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Alive:  lipgloss.Color("#00ff00"),
		Border: lipgloss.Color("#005500"),
		Title:  lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Alive:  lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#444466"),
		Title:  lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Alive:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Title:  lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}
)

var Themes = []Theme{ThemeRetroGreen, ThemeCyberpunk, ThemeMinimal}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
