package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one color scheme.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Cursor   lipgloss.Style
	Card     lipgloss.Style
	Danger   lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
	UserMsg  lipgloss.Style
	BotMsg   lipgloss.Style
	Selected lipgloss.Style
}

func lightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("22")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Danger:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		UserMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		BotMsg:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
	}
}

func darkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("42")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Danger:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		UserMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		BotMsg:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

// ThemeByName resolves a persisted theme name, defaulting to light.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return darkTheme()
	}
	return lightTheme()
}
