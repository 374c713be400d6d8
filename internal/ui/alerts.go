package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/models"
	"farmguard/internal/seed"
)

// AlertsPage lists biosecurity alerts newest-first.
type AlertsPage struct {
	app *App
}

func InitialAlertsModel(app *App) AlertsPage {
	return AlertsPage{app: app}
}

func (m AlertsPage) Init() tea.Cmd {
	return nil
}

func (m AlertsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "esc":
			return InitialDashboardModel(m.app), nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AlertsPage) View() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("alerts")) + "\n\n"
	for _, alert := range seed.Alerts {
		style := t.Warning
		if alert.Severity == models.SeverityCritical {
			style = t.Danger
		}
		s += fmt.Sprintf("%s %s\n", style.Render("["+string(alert.Severity)+"]"), t.Selected.Render(a.T(alert.TitleKey)))
		s += "  " + a.T(alert.DescriptionKey) + "\n"
		s += "  " + t.Subtle.Render(fmt.Sprintf("%s · %s", alert.Date, a.T(alert.TypeKey))) + "\n\n"
	}

	s += t.Help.Render("esc: " + a.T("home"))
	return s
}
