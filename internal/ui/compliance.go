package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/seed"
)

// CompliancePage is the consumer view of the farm register: every registered
// farm with its region, last inspection and biosecurity compliance score.
type CompliancePage struct {
	app *App
}

func InitialComplianceModel(app *App) CompliancePage {
	return CompliancePage{app: app}
}

func (m CompliancePage) Init() tea.Cmd {
	return nil
}

func (m CompliancePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return InitialDashboardModel(m.app), nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m CompliancePage) View() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("farmComplianceList")) + "\n"
	s += t.Subtle.Render(a.T("farmComplianceListDesc")) + "\n\n"

	s += t.Selected.Render(fmt.Sprintf("  %-22s %-14s %-16s %s",
		a.T("farmName"), a.T("region"), a.T("lastInspection"), a.T("complianceScore"))) + "\n"
	for _, f := range seed.FarmsCompliance {
		score := t.Success
		switch {
		case f.ComplianceScore < 80:
			score = t.Danger
		case f.ComplianceScore < 90:
			score = t.Warning
		}
		s += fmt.Sprintf("  %-22s %-14s %-16s %s\n",
			f.Name, f.Region, f.LastInspection, score.Render(fmt.Sprintf("%d%%", f.ComplianceScore)))
	}

	s += "\n" + t.Help.Render("esc: "+a.T("home"))
	return s
}
