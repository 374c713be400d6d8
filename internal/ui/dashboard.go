package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/i18n"
	"farmguard/internal/models"
	"farmguard/internal/seed"
)

// tipsMsg delivers generated biosecurity tips to the dashboard.
type tipsMsg struct {
	text string
	err  error
}

type navEntry struct {
	labelKey string
	open     func(*App) tea.Model
}

// DashboardPage is the signed-in home: a role summary panel plus navigation
// to the feature pages.
type DashboardPage struct {
	app     *App
	entries []navEntry
	cursor  int

	markdown     *markdownCache
	tips         string
	loadingTips  bool
	tipsErrShown bool
}

func InitialDashboardModel(app *App) DashboardPage {
	m := DashboardPage{app: app, markdown: newMarkdownCache()}

	switch app.Profiles.Role() {
	case models.RoleAdmin:
		m.entries = []navEntry{
			{"alerts", func(a *App) tea.Model { return InitialAlertsModel(a) }},
			{"communityHub", func(a *App) tea.Model { return InitialCommunityModel(a) }},
			{"settings", func(a *App) tea.Model { return InitialSettingsModel(a) }},
		}
	case models.RoleConsumer:
		m.entries = []navEntry{
			{"verifyProduct", func(a *App) tea.Model { return InitialVerifyModel(a) }},
			{"farmComplianceList", func(a *App) tea.Model { return InitialComplianceModel(a) }},
			{"communityHub", func(a *App) tea.Model { return InitialCommunityModel(a) }},
			{"settings", func(a *App) tea.Model { return InitialSettingsModel(a) }},
		}
	default: // farmer and vet portals
		m.entries = []navEntry{
			{"communityHub", func(a *App) tea.Model { return InitialCommunityModel(a) }},
			{"symptomChecker", func(a *App) tea.Model { return InitialChatModel(a) }},
			{"alerts", func(a *App) tea.Model { return InitialAlertsModel(a) }},
			{"farmData", func(a *App) tea.Model { return InitialReportsModel(a) }},
			{"settings", func(a *App) tea.Model { return InitialSettingsModel(a) }},
		}
	}
	return m
}

func (m DashboardPage) Init() tea.Cmd {
	return nil
}

// fetchTipsCmd asks the backend for improvement tips in the UI language.
func fetchTipsCmd(tips TipsProvider, lang i18n.Language) tea.Cmd {
	return func() tea.Msg {
		name := string(lang)
		for _, l := range i18n.Languages {
			if l.Code == lang {
				name = l.Name
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text, err := tips.BiosecurityTips(ctx, name)
		return tipsMsg{text: text, err: err}
	}
}

func (m DashboardPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tipsMsg:
		m.loadingTips = false
		if msg.err != nil {
			m.tips = m.app.T("chatbotError")
			m.tipsErrShown = true
		} else {
			m.tips = msg.text
			m.tipsErrShown = false
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.entries)
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.entries) - 1
			}
		case "enter", "right":
			return m.entries[m.cursor].open(m.app), nil
		case "t":
			role := m.app.Profiles.Role()
			if m.app.Tips != nil && !m.loadingTips && (role == models.RoleFarmer || role == models.RoleVet) {
				m.loadingTips = true
				return m, fetchTipsCmd(m.app.Tips, m.app.Lang)
			}
		case "L":
			m.app.Profiles.Logout()
			return InitialLoginModel(m.app), nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DashboardPage) View() string {
	a := m.app
	t := a.Theme
	user := a.Profiles.Current()

	s := t.Title.Render(a.T("farmGuard")) + "  " + t.Subtle.Render(fmt.Sprintf("%s · %s", user.Name, a.T(string(a.Profiles.Role())))) + "\n\n"
	s += m.summary()

	s += t.Title.Render(a.T("dashboard")) + "\n"
	for i, e := range m.entries {
		label := a.T(e.labelKey)
		if i == m.cursor {
			s += "\t" + t.Cursor.Render(label) + "\n"
		} else {
			s += "\t" + label + "\n"
		}
	}

	help := "enter: open · L: " + a.T("logout") + " · q: quit"
	role := a.Profiles.Role()
	if a.Tips != nil && (role == models.RoleFarmer || role == models.RoleVet) {
		help = "t: tips · " + help
	}
	s += "\n" + t.Help.Render(help) + "\n"
	return s
}

// summary renders the role's headline panel above the menu.
func (m DashboardPage) summary() string {
	a := m.app
	t := a.Theme

	switch a.Profiles.Role() {
	case models.RoleAdmin:
		s := t.Title.Render(a.T("status")) + "\n"
		for _, f := range seed.FarmsCompliance {
			score := t.Success
			if f.ComplianceScore < 80 {
				score = t.Warning
			}
			s += fmt.Sprintf("  %-20s %-12s %s\n", f.Name, f.Region, score.Render(fmt.Sprintf("%d%%", f.ComplianceScore)))
		}
		return s + "\n"

	case models.RoleConsumer:
		return t.Subtle.Render(a.T("verifyProductDesc")) + "\n\n"

	default:
		stats := seed.FarmStats
		card := t.Card.Render(fmt.Sprintf(
			"%s\n  animals: %d\n  mortality: %.1f%%\n  feed: %.0f kg/day\n  biosecurity: %d/100",
			a.T("status"), stats.AnimalCount, stats.MortalityRate, stats.FeedUsage, stats.BiosecurityScore,
		))

		alerts := t.Title.Render(a.T("alerts")) + "\n"
		for _, alert := range seed.Alerts[:3] {
			style := t.Warning
			if alert.Severity == models.SeverityCritical {
				style = t.Danger
			}
			alerts += fmt.Sprintf("  %s %s\n", style.Render("["+string(alert.Severity)+"]"), a.T(alert.TitleKey))
		}

		s := card + "\n" + alerts + "\n"
		if m.loadingTips {
			s += t.Subtle.Render("...") + "\n\n"
		} else if m.tips != "" {
			if m.tipsErrShown {
				s += t.Danger.Render(m.tips) + "\n\n"
			} else {
				s += m.markdown.Render(m.tips) + "\n"
			}
		}
		return s
	}
}
