package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/i18n"
	"farmguard/internal/profile"
)

const (
	setLanguage = iota
	setTheme
	setName
	setEmail
	setEmailNotif
	setPushNotif
	setLogout
	settingsCount
)

// SettingsPage edits profile fields, notification preferences, theme and
// language. Theme and language persist across restarts; the profile is
// session-only, like the original demo accounts.
type SettingsPage struct {
	app     *App
	cursor  int
	editing bool
	input   textinput.Model
}

func InitialSettingsModel(app *App) SettingsPage {
	m := SettingsPage{app: app}
	m.input = textinput.New()
	m.input.CharLimit = 80
	return m
}

func (m SettingsPage) Init() tea.Cmd {
	return nil
}

func (m SettingsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEdit(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			m.cursor = (m.cursor + 1) % settingsCount
		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = settingsCount - 1
			}
		case "left":
			if m.cursor == setLanguage {
				m.cycleLanguage(-1)
				break
			}
			return InitialDashboardModel(m.app), nil
		case "esc":
			return InitialDashboardModel(m.app), nil
		case "right":
			if m.cursor == setLanguage {
				m.cycleLanguage(1)
			}
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			return m.activate()
		}
	}
	return m, nil
}

func (m SettingsPage) activate() (tea.Model, tea.Cmd) {
	a := m.app
	switch m.cursor {
	case setLanguage:
		m.cycleLanguage(1)
	case setTheme:
		if a.Theme.Name == "dark" {
			a.SetTheme("light")
		} else {
			a.SetTheme("dark")
		}
	case setName:
		m.editing = true
		m.input.SetValue(a.Profiles.Current().Name)
		m.input.Focus()
		return m, textinput.Blink
	case setEmail:
		m.editing = true
		m.input.SetValue(a.Profiles.Current().Email)
		m.input.Focus()
		return m, textinput.Blink
	case setEmailNotif:
		v := !a.Profiles.Current().Notifications.Email
		a.Profiles.Update(profile.Updates{EmailNotifications: &v})
	case setPushNotif:
		v := !a.Profiles.Current().Notifications.Push
		a.Profiles.Update(profile.Updates{PushNotifications: &v})
	case setLogout:
		a.Profiles.Logout()
		return InitialLoginModel(a), nil
	}
	return m, nil
}

func (m *SettingsPage) cycleLanguage(dir int) {
	langs := i18n.Languages
	idx := 0
	for i, l := range langs {
		if l.Code == m.app.Lang {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(langs)) % len(langs)
	m.app.SetLanguage(langs[idx].Code)
}

func (m SettingsPage) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.editing = false
			return m, nil
		case "enter":
			m.editing = false
			v := strings.TrimSpace(m.input.Value())
			if m.cursor == setName {
				m.app.Profiles.Update(profile.Updates{Name: &v})
			} else {
				m.app.Profiles.Update(profile.Updates{Email: &v})
			}
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SettingsPage) View() string {
	a := m.app
	t := a.Theme
	user := a.Profiles.Current()

	langName := string(a.Lang)
	for _, l := range i18n.Languages {
		if l.Code == a.Lang {
			langName = l.Name
		}
	}

	onOff := func(v bool) string {
		if v {
			return t.Success.Render("on")
		}
		return t.Subtle.Render("off")
	}

	rows := []string{
		fmt.Sprintf("%-16s ◂ %s ▸", "Language", langName),
		fmt.Sprintf("%-16s %s", "Theme", a.Theme.Name),
		fmt.Sprintf("%-16s %s", "Name", user.Name),
		fmt.Sprintf("%-16s %s", "Email", user.Email),
		fmt.Sprintf("%-16s %s", "Email alerts", onOff(user.Notifications.Email)),
		fmt.Sprintf("%-16s %s", "Push alerts", onOff(user.Notifications.Push)),
		a.T("logout"),
	}

	s := t.Title.Render(a.T("settings")) + "\n\n"
	for i, r := range rows {
		if i == m.cursor && !m.editing {
			s += "\t" + t.Cursor.Render(r) + "\n"
		} else {
			s += "\t" + r + "\n"
		}
	}

	if m.editing {
		s += "\n" + m.input.View() + "\n"
		s += t.Help.Render("enter: save · esc: " + a.T("cancel"))
		return s
	}

	s += "\n" + t.Help.Render("enter: change · esc: "+a.T("home"))
	return s
}
