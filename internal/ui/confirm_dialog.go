package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/confirm"
)

// confirmRequest builds a gate request whose confirmation yields a tea.Cmd.
// The gate callback is plain func(), so the command is parked on the App and
// collected by handleConfirmKeys right after Confirm.
func confirmRequest(a *App, titleKey, msgKey string, run func() tea.Cmd) confirm.Request {
	return confirm.Request{
		Title:    a.T(titleKey),
		Message:  a.T(msgKey),
		Severity: confirm.Danger,
		OnConfirm: func() {
			a.deferred = run()
		},
	}
}

// handleConfirmKeys drives the dialog while a request is pending. Everything
// except the answer keys is swallowed.
func handleConfirmKeys(a *App, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "y", "enter":
		a.Gate.Confirm()
		cmd := a.deferred
		a.deferred = nil
		return cmd
	case "n", "esc":
		a.Gate.Cancel()
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

func renderConfirmDialog(a *App) string {
	req := a.Gate.Pending()
	if req == nil {
		return ""
	}
	t := a.Theme

	title := t.Title
	switch req.Severity {
	case confirm.Danger:
		title = t.Danger
	case confirm.Warning:
		title = t.Warning
	}

	body := title.Render(req.Title) + "\n\n" + req.Message + "\n\n" +
		t.Help.Render("y/enter: "+a.T("delete")+" · n/esc: "+a.T("cancel"))
	return t.Card.Render(body) + "\n"
}
