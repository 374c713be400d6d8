package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/assistant"
	"farmguard/internal/models"
)

// assistantReplyMsg delivers one backend outcome. Root settles it into the
// session; the chat page only refreshes its transcript view.
type assistantReplyMsg struct {
	text string
	err  error
}

// ChatPage is the symptom checker: transcript viewport on top, draft textarea
// below, with image attach and voice recording.
type ChatPage struct {
	app      *App
	viewport viewport.Model
	textbox  textarea.Model
	spin     spinner.Model
	markdown *markdownCache

	pickingImage bool
	imagePath    textinput.Model
	notice       string
}

func InitialChatModel(app *App) ChatPage {
	m := ChatPage{app: app, markdown: newMarkdownCache()}

	m.viewport = viewport.New(80, 14)

	m.textbox = textarea.New()
	m.textbox.Placeholder = app.T("typeMessage")
	m.textbox.Prompt = "┃ "
	m.textbox.CharLimit = 1000
	m.textbox.ShowLineNumbers = false
	m.textbox.SetHeight(3)
	m.textbox.SetWidth(80)
	m.textbox.SetValue(app.Session.Draft)
	m.textbox.Focus()

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	m.imagePath = textinput.New()
	m.imagePath.Placeholder = "photo.jpg"

	m.refresh()
	return m
}

func (m ChatPage) Init() tea.Cmd {
	return m.spin.Tick
}

// sendCmd runs one analysis turn off the event loop.
func sendCmd(s *assistant.Session, req assistant.Request) tea.Cmd {
	return func() tea.Msg {
		text, err := s.Analyze(context.Background(), req)
		return assistantReplyMsg{text: text, err: err}
	}
}

func (m ChatPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.pickingImage {
		return m.updateImagePicker(msg)
	}

	switch msg := msg.(type) {
	case assistantReplyMsg:
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Leaving the page releases the microphone; the clip is discarded.
			if m.app.Recorder.Recording() {
				m.app.Recorder.Stop()
			}
			m.app.Session.Draft = m.textbox.Value()
			return InitialDashboardModel(m.app), nil
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s", "enter":
			m.app.Session.Draft = m.textbox.Value()
			req, ok := m.app.Session.Send()
			if !ok {
				break
			}
			m.textbox.Reset()
			m.notice = ""
			m.refresh()
			m.viewport.GotoBottom()
			return m, sendCmd(m.app.Session, req)
		case "ctrl+o":
			m.pickingImage = true
			m.imagePath.Reset()
			m.imagePath.Focus()
			return m, textinput.Blink
		case "ctrl+r":
			return m.toggleRecording()
		}
	}

	var (
		tboxCmd tea.Cmd
		vpCmd   tea.Cmd
	)
	m.textbox, tboxCmd = m.textbox.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tboxCmd, vpCmd)
}

func (m ChatPage) toggleRecording() (tea.Model, tea.Cmd) {
	rec := m.app.Recorder
	if rec.Recording() {
		clip, err := rec.Stop()
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.app.Session.AttachAudio(clip)
		m.notice = m.app.T("audioMessage")
		return m, nil
	}
	if err := rec.Start(); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	// Recording displaces a staged image; a turn carries one medium.
	m.app.Session.Image = nil
	m.notice = m.app.T("recording")
	return m, nil
}

func (m ChatPage) updateImagePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.pickingImage = false
			return m, nil
		case "enter":
			m.pickingImage = false
			path := strings.TrimSpace(m.imagePath.Value())
			if path == "" {
				return m, nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.app.Session.AttachImage(&models.Attachment{
				MIMEType: imageMIME(path),
				Data:     data,
			})
			m.notice = filepath.Base(path)
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.imagePath, cmd = m.imagePath.Update(msg)
	return m, cmd
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// refresh rebuilds the transcript shown in the viewport.
func (m *ChatPage) refresh() {
	a := m.app
	t := a.Theme

	var b strings.Builder
	for _, msg := range a.Session.Messages {
		if msg.Sender == models.SenderUser {
			b.WriteString(t.UserMsg.Render(a.Profiles.Current().Name+":") + " " + msg.Text + "\n")
			if msg.Image != nil {
				b.WriteString(t.Subtle.Render("  [image attached]") + "\n")
			}
			if msg.Audio != nil {
				b.WriteString(t.Subtle.Render("  ["+a.T("audioMessage")+"]") + "\n")
			}
		} else {
			b.WriteString(t.BotMsg.Render(m.markdown.Render(msg.Text)))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}

func (m ChatPage) View() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("symptomChecker")) + "\n\n"
	s += m.viewport.View() + "\n"

	if a.Session.Busy {
		s += m.spin.View() + " " + t.Subtle.Render("...") + "\n"
	}
	if m.pickingImage {
		s += "\n" + a.T("title") + ": " + m.imagePath.View() + "\n"
		s += t.Help.Render("enter: attach · esc: "+a.T("cancel")) + "\n"
		return s
	}

	s += m.textbox.View() + "\n"

	status := []string{}
	if a.Session.Image != nil {
		status = append(status, "[image ready]")
	}
	if a.Session.Audio != nil {
		status = append(status, "["+a.T("audioMessage")+"]")
	}
	if a.Recorder.Recording() {
		status = append(status, a.T("recording"))
	}
	if m.notice != "" {
		status = append(status, m.notice)
	}
	if len(status) > 0 {
		s += t.Subtle.Render(strings.Join(status, " · ")) + "\n"
	}

	record := a.T("recordAudio")
	if a.Recorder.Recording() {
		record = a.T("stopRecording")
	}
	s += "\n" + t.Help.Render(fmt.Sprintf("enter: send · ctrl+o: image · ctrl+r: %s · esc: %s", record, a.T("home"))) + "\n"
	return s
}
