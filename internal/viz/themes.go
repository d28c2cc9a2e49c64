package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	RootTwo lipgloss.Color
	Golden  lipgloss.Color
	Spiral  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Focus   lipgloss.Color
	Warning lipgloss.Color
}

// Available themes
var (
	ThemeSong = Theme{
		Name:    "song",
		RootTwo: lipgloss.Color("#6fb7bc"), // celadon
		Golden:  lipgloss.Color("#e0b95c"), // temple gold
		Spiral:  lipgloss.Color("#c59d45"),
		Text:    lipgloss.Color("#f5f5f4"),
		Muted:   lipgloss.Color("#78716c"),
		Border:  lipgloss.Color("#44403c"),
		Focus:   lipgloss.Color("#fafaf9"),
		Warning: lipgloss.Color("#f59e0b"),
	}

	ThemeInk = Theme{
		Name:    "ink",
		RootTwo: lipgloss.Color("#ffffff"),
		Golden:  lipgloss.Color("#ffffff"),
		Spiral:  lipgloss.Color("#aaaaaa"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#666666"),
		Border:  lipgloss.Color("#444444"),
		Focus:   lipgloss.Color("#ffffff"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		RootTwo: lipgloss.Color("#346f74"),
		Golden:  lipgloss.Color("#8e6b29"),
		Spiral:  lipgloss.Color("#8e6b29"),
		Text:    lipgloss.Color("#292524"),
		Muted:   lipgloss.Color("#a8a29e"),
		Border:  lipgloss.Color("#d6d3d1"),
		Focus:   lipgloss.Color("#1c1917"),
		Warning: lipgloss.Color("#b45309"),
	}

	ThemeNeon = Theme{
		Name:    "neon",
		RootTwo: lipgloss.Color("#00ffff"),
		Golden:  lipgloss.Color("#ffff00"),
		Spiral:  lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Border:  lipgloss.Color("#444466"),
		Focus:   lipgloss.Color("#ff00ff"),
		Warning: lipgloss.Color("#ff8800"),
	}

	// All available themes
	Themes = []Theme{
		ThemeSong,
		ThemeInk,
		ThemePaper,
		ThemeNeon,
	}
)

// GetTheme returns a theme by name, falling back to song.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSong
}

// NextTheme returns the theme after name in Themes, wrapping around.
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

// color picks the panel colour for a panel name.
func (t Theme) color(name string) lipgloss.Color {
	if name == "golden" {
		return t.Golden
	}
	return t.RootTwo
}
