package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/models"
)

// LoginPage is the role picker. Signing in replaces the session profile
// wholesale; there are no credentials.
type LoginPage struct {
	app    *App
	cursor int
}

func InitialLoginModel(app *App) LoginPage {
	return LoginPage{app: app}
}

func (m LoginPage) Init() tea.Cmd {
	return nil
}

func (m LoginPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			m.cursor++
			if m.cursor >= len(models.SelectableRoles) {
				m.cursor = 0
			}
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(models.SelectableRoles) - 1
			}
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "right":
			role := models.SelectableRoles[m.cursor]
			m.app.Profiles.Login(role)
			return InitialDashboardModel(m.app), nil
		}
	}
	return m, nil
}

func (m LoginPage) View() string {
	t := m.app.Theme
	s := t.Title.Render(m.app.T("farmGuard")) + "\n\n"
	s += m.app.T("signIn") + "\n\n"

	for i, role := range models.SelectableRoles {
		label := m.app.T(string(role))
		if i == m.cursor {
			s += "\t" + t.Cursor.Render(label) + "\n"
		} else {
			s += "\t" + label + "\n"
		}
	}

	s += "\n" + t.Help.Render(fmt.Sprintf("enter: %s · q: quit", m.app.T("signIn"))) + "\n"
	return s
}
