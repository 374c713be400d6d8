package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/models"
	"farmguard/internal/store"
)

type communityMode int

const (
	modeBrowse communityMode = iota
	modeReply
	modeCompose
)

// row is one selectable line in the flattened post list: a post, or a comment
// of an expanded post.
type row struct {
	postID    string
	commentID string // empty for post rows
}

// CommunityPage is the discussion hub: browse threads, expand comments,
// reply, start discussions, delete own content behind the confirmation gate.
type CommunityPage struct {
	app    *App
	cursor int
	mode   communityMode

	reply        textinput.Model
	composeTitle textinput.Model
	composeBody  textarea.Model
	composeFocus int // 0 title, 1 body
}

func InitialCommunityModel(app *App) CommunityPage {
	m := CommunityPage{app: app}

	m.reply = textinput.New()
	m.reply.Placeholder = app.T("addReplyPlaceholder")
	m.reply.CharLimit = 500

	m.composeTitle = textinput.New()
	m.composeTitle.Placeholder = app.T("titlePlaceholder")
	m.composeTitle.CharLimit = 120

	m.composeBody = textarea.New()
	m.composeBody.Placeholder = app.T("contentPlaceholder")
	m.composeBody.ShowLineNumbers = false
	m.composeBody.SetHeight(5)
	m.composeBody.SetWidth(76)

	return m
}

func (m CommunityPage) Init() tea.Cmd {
	return nil
}

// rows flattens posts plus the comments of expanded posts, in display order.
func (m CommunityPage) rows() []row {
	var rs []row
	for _, p := range m.app.Posts {
		rs = append(rs, row{postID: p.ID})
		if p.ShowComments {
			for _, c := range p.Comments {
				rs = append(rs, row{postID: p.ID, commentID: c.ID})
			}
		}
	}
	return rs
}

func (m CommunityPage) selected() (row, bool) {
	rs := m.rows()
	if m.cursor < 0 || m.cursor >= len(rs) {
		return row{}, false
	}
	return rs[m.cursor], true
}

func (m *CommunityPage) clampCursor() {
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m CommunityPage) canDelete(authorID string) bool {
	return m.app.Profiles.Role() == models.RoleAdmin || m.app.Profiles.Current().ID == authorID
}

func (m CommunityPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.app.Gate.Pending() != nil {
		return m, handleConfirmKeys(m.app, msg)
	}

	switch m.mode {
	case modeReply:
		return m.updateReply(msg)
	case modeCompose:
		return m.updateCompose(msg)
	}
	return m.updateBrowse(msg)
}

func (m CommunityPage) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			if m.cursor < len(m.rows())-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "left", "esc":
			return InitialDashboardModel(m.app), nil
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			if sel, ok := m.selected(); ok && sel.commentID == "" {
				cmd := m.app.Dispatch(store.ToggleComments{PostID: sel.postID})
				m.clampCursor()
				return m, cmd
			}
		case "r":
			if sel, ok := m.selected(); ok && sel.commentID == "" {
				m.mode = modeReply
				m.reply.SetValue(m.postByID(sel.postID).CommentDraft)
				m.reply.Focus()
				return m, textinput.Blink
			}
		case "n":
			m.mode = modeCompose
			m.composeFocus = 0
			m.composeTitle.Reset()
			m.composeBody.Reset()
			m.composeTitle.Focus()
			m.composeBody.Blur()
			return m, textinput.Blink
		case "d":
			return m, m.askDelete()
		}
	}
	return m, nil
}

// askDelete queues the right confirmation for the selected row.
func (m CommunityPage) askDelete() tea.Cmd {
	sel, ok := m.selected()
	if !ok {
		return nil
	}
	a := m.app

	if sel.commentID == "" {
		post := m.postByID(sel.postID)
		if !m.canDelete(post.AuthorID) {
			return nil
		}
		a.Gate.Ask(confirmRequest(a, "delete", "deletePostConfirm", func() tea.Cmd {
			return a.Dispatch(store.DeletePost{PostID: sel.postID})
		}))
		return nil
	}

	comment := m.commentByID(sel.postID, sel.commentID)
	if comment == nil || !m.canDelete(comment.AuthorID) {
		return nil
	}
	a.Gate.Ask(confirmRequest(a, "delete", "deleteCommentConfirm", func() tea.Cmd {
		return a.Dispatch(store.DeleteComment{PostID: sel.postID, CommentID: sel.commentID})
	}))
	return nil
}

func (m CommunityPage) updateReply(msg tea.Msg) (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok || sel.commentID != "" {
		m.mode = modeBrowse
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = modeBrowse
			m.reply.Blur()
			return m, m.app.Dispatch(store.SetCommentDraft{PostID: sel.postID, Text: m.reply.Value()})
		case "enter":
			draftCmd := m.app.Dispatch(store.SetCommentDraft{PostID: sel.postID, Text: m.reply.Value()})
			postCmd := m.app.Dispatch(store.AddComment{PostID: sel.postID, User: m.app.Profiles.Current()})
			m.mode = modeBrowse
			m.reply.Blur()
			m.reply.Reset()
			return m, tea.Batch(draftCmd, postCmd)
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.reply, cmd = m.reply.Update(msg)
	return m, cmd
}

func (m CommunityPage) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = modeBrowse
			return m, nil
		case "tab":
			m.composeFocus = 1 - m.composeFocus
			if m.composeFocus == 0 {
				m.composeTitle.Focus()
				m.composeBody.Blur()
			} else {
				m.composeTitle.Blur()
				m.composeBody.Focus()
			}
			return m, nil
		case "ctrl+s":
			title := strings.TrimSpace(m.composeTitle.Value())
			body := strings.TrimSpace(m.composeBody.Value())
			if title == "" || body == "" {
				return m, nil
			}
			cmd := m.app.Dispatch(store.AddPost{Title: title, Content: body, User: m.app.Profiles.Current()})
			m.mode = modeBrowse
			m.cursor = 0
			return m, cmd
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.composeFocus == 0 {
		m.composeTitle, cmd = m.composeTitle.Update(msg)
	} else {
		m.composeBody, cmd = m.composeBody.Update(msg)
	}
	return m, cmd
}

func (m CommunityPage) postByID(id string) models.CommunityPost {
	for _, p := range m.app.Posts {
		if p.ID == id {
			return p
		}
	}
	return models.CommunityPost{}
}

func (m CommunityPage) commentByID(postID, commentID string) *models.Comment {
	p := m.postByID(postID)
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

func (m CommunityPage) View() string {
	a := m.app
	t := a.Theme

	if a.Gate.Pending() != nil {
		return renderConfirmDialog(a)
	}
	if m.mode == modeCompose {
		return m.viewCompose()
	}

	s := t.Title.Render(a.T("communityHub")) + "\n\n"

	rs := m.rows()
	for i, r := range rs {
		line := m.renderRow(r)
		if i == m.cursor && m.mode == modeBrowse {
			line = t.Cursor.Render(line)
		}
		s += line + "\n"
		if r.commentID == "" && m.mode == modeReply {
			if sel, ok := m.selected(); ok && sel.postID == r.postID && sel.commentID == "" {
				s += "   " + m.reply.View() + "\n"
			}
		}
	}
	if len(rs) == 0 {
		s += t.Subtle.Render("(no discussions yet)") + "\n"
	}

	switch m.mode {
	case modeReply:
		s += "\n" + t.Help.Render("enter: "+a.T("comment")+" · esc: "+a.T("cancel")) + "\n"
	default:
		s += "\n" + t.Help.Render("enter: "+a.T("replies")+" · r: "+a.T("comment")+" · n: "+a.T("newDiscussion")+" · d: "+a.T("delete")+" · esc: "+a.T("home")) + "\n"
	}
	return s
}

func (m CommunityPage) renderRow(r row) string {
	a := m.app
	t := a.Theme

	if r.commentID == "" {
		p := m.postByID(r.postID)
		marker := "+"
		if p.ShowComments {
			marker = "-"
		}
		meta := fmt.Sprintf("%s %s · %s · %d %s · %d %s",
			a.T("postedBy"), p.Author, p.Date, p.Views, a.T("views"), len(p.Comments), a.T("replies"))
		return fmt.Sprintf("%s %s\n   %s\n   %s", marker, t.Selected.Render(stripHTML(p.Title)), stripHTML(p.Content), t.Subtle.Render(meta))
	}

	c := m.commentByID(r.postID, r.commentID)
	if c == nil {
		return ""
	}
	return fmt.Sprintf("     ↳ %s: %s", t.Selected.Render(c.Author), stripHTML(c.Content))
}

func (m CommunityPage) viewCompose() string {
	a := m.app
	t := a.Theme

	s := t.Title.Render(a.T("createDiscussionTitle")) + "\n\n"
	s += a.T("title") + "\n" + m.composeTitle.View() + "\n\n"
	s += m.composeBody.View() + "\n\n"
	s += t.Help.Render("tab: switch field · ctrl+s: "+a.T("post")+" · esc: "+a.T("cancel")) + "\n"
	return s
}
