package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/seed"
)

// ReportsPage shows farm data: trends, daily reports, batch audits, and the
// biosecurity checklist with session-local ticks.
type ReportsPage struct {
	app     *App
	checked map[string]bool
	cursor  int
}

func InitialReportsModel(app *App) ReportsPage {
	return ReportsPage{app: app, checked: make(map[string]bool)}
}

func (m ReportsPage) Init() tea.Cmd {
	return nil
}

func (m ReportsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(seed.ChecklistItems)
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(seed.ChecklistItems) - 1
			}
		case "enter", " ":
			id := seed.ChecklistItems[m.cursor].ID
			m.checked[id] = !m.checked[id]
		case "left", "esc":
			return InitialDashboardModel(m.app), nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ReportsPage) View() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("farmData")) + "\n\n"

	for _, trend := range seed.FarmDataTrends {
		s += fmt.Sprintf("  %-10s mortality %.0f%%  feed %.0fkg  temp %.1f°C\n",
			a.T(trend.NameKey), trend.Mortality, trend.Feed, trend.Temp)
	}
	s += "\n"

	s += t.Title.Render(a.T("status")) + "\n"
	for _, r := range seed.Reports {
		s += fmt.Sprintf("  %s  %s · %d animals · %.1f°C · %s\n",
			r.Date, t.Subtle.Render(string(r.Status)), r.AnimalCount, r.Temperature, r.Symptoms)
	}
	s += "\n"

	for _, b := range seed.BiosecurityReports {
		score := fmt.Sprintf("%d%%", b.ComplianceScore)
		if b.StatusKey == "inProgress" {
			score = "--"
		}
		s += fmt.Sprintf("  %-20s %s  %s\n", b.BatchID, b.Date, t.Success.Render(score))
	}
	s += "\n"

	var lastCategory string
	for i, item := range seed.ChecklistItems {
		if item.CategoryKey != lastCategory {
			s += t.Selected.Render(a.T(item.CategoryKey)) + "\n"
			lastCategory = item.CategoryKey
		}
		box := "[ ]"
		if m.checked[item.ID] {
			box = "[x]"
		}
		line := fmt.Sprintf("  %s %s", box, a.T(item.TaskKey))
		if i == m.cursor {
			line = t.Cursor.Render(line)
		}
		s += line + "\n"
	}

	s += "\n" + t.Help.Render("space: toggle · esc: "+a.T("home"))
	return s
}
