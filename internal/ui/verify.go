package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/models"
	"farmguard/internal/seed"
)

// VerifyPage is the consumer product lookup: enter a product ID, see its
// safety status and source farm.
type VerifyPage struct {
	app      *App
	input    textinput.Model
	result   *models.ProductVerification
	searched bool
}

func InitialVerifyModel(app *App) VerifyPage {
	m := VerifyPage{app: app}
	m.input = textinput.New()
	m.input.Placeholder = "PROD12345"
	m.input.CharLimit = 20
	m.input.Focus()
	return m
}

func (m VerifyPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m VerifyPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return InitialDashboardModel(m.app), nil
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			id := strings.ToUpper(strings.TrimSpace(m.input.Value()))
			m.searched = true
			m.result = nil
			for i := range seed.Products {
				if seed.Products[i].ID == id {
					m.result = &seed.Products[i]
					break
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m VerifyPage) View() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("verifyProduct")) + "\n"
	s += t.Subtle.Render(a.T("verifyProductDesc")) + "\n\n"
	s += m.input.View() + "\n\n"

	if m.searched {
		if m.result == nil {
			s += t.Danger.Render("Product not found.") + "\n"
		} else {
			p := m.result
			status := t.Success
			if p.Status != models.VerifySafe {
				status = t.Warning
			}
			var farm string
			for _, f := range seed.FarmsCompliance {
				if f.ID == p.FarmID {
					farm = fmt.Sprintf("%s (%s)", f.Name, f.Region)
					break
				}
			}
			s += t.Card.Render(fmt.Sprintf("%s\n%s: %s\n%s: %s\n%s",
				t.Selected.Render(p.ProductName),
				a.T("date"), p.BatchDate,
				a.T("status"), status.Render(string(p.Status)),
				farm)) + "\n"
		}
	}

	s += "\n" + t.Help.Render("enter: "+a.T("verify")+" · esc: "+a.T("home"))
	return s
}
