package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Root hosts the active page and is the model the program runs. Backend
// outcomes are settled here, before the page sees them, so a reply that lands
// after the user has navigated away still resolves the assistant session
// instead of leaving it busy forever.
type Root struct {
	app  *App
	page tea.Model
}

func NewRoot(app *App) Root {
	return Root{app: app, page: InitialLoginModel(app)}
}

func (r Root) Init() tea.Cmd {
	return r.page.Init()
}

func (r Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reply, ok := msg.(assistantReplyMsg); ok {
		r.app.Session.Resolve(reply.text, reply.err)
	}
	next, cmd := r.page.Update(msg)
	r.page = next
	return r, cmd
}

func (r Root) View() string {
	return r.page.View()
}
