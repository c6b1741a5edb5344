// Package tui provides the interactive terminal viewer.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the viewer.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

// DarkTheme mirrors the original viewer's palette.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#e0e0e0"),
		Primary:    lipgloss.Color("#007acc"),
		Accent:     lipgloss.Color("#ce9178"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#333333"),
		Error:      lipgloss.Color("#e53935"),
		IsDark:     true,
	}
}

// LightTheme is the inverted palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1e1e1e"),
		Primary:    lipgloss.Color("#005a9e"),
		Accent:     lipgloss.Color("#9e4a06"),
		Muted:      lipgloss.Color("#777777"),
		Border:     lipgloss.Color("#cccccc"),
		Error:      lipgloss.Color("#c62828"),
		IsDark:     false,
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the pre-built lipgloss styles for the viewer.
type Styles struct {
	Theme  Theme
	Header lipgloss.Style
	Info   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Detail lipgloss.Style
	Filter lipgloss.Style
	Toggle lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Info: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(theme.Border).
			Foreground(theme.Accent),
		Filter: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Toggle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
	}
}

// DefaultStyles returns the dark style set.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
