package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/assistant"
	"farmguard/internal/audio"
	"farmguard/internal/db"
	"farmguard/internal/i18n"
	"farmguard/internal/models"
	"farmguard/internal/profile"
	"farmguard/internal/seed"
	"farmguard/internal/store"
)

type stubMic struct {
	stopped bool
}

func (d *stubMic) Start(onChunk func([]byte)) error { return nil }

func (d *stubMic) Stop() error {
	d.stopped = true
	return nil
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "hello", stripHTML("<b>hello</b>"))
	assert.Equal(t, "a & b", stripHTML("a &amp; b"))
	assert.Equal(t, "alert('x')", stripHTML("<script>alert('x')</script>"))
	assert.Equal(t, "plain text", stripHTML("plain text"))
}

func TestCommunityRowsFollowExpansion(t *testing.T) {
	app := &App{Posts: seed.CommunityPosts(), Profiles: profile.NewService()}
	m := InitialCommunityModel(app)

	rs := m.rows()
	require.Len(t, rs, 3, "collapsed posts contribute one row each")

	app.Posts = store.Apply(app.Posts, store.ToggleComments{PostID: "P01"})
	rs = m.rows()
	require.Len(t, rs, 5, "expanding P01 exposes its two comments")
	assert.Equal(t, "P01", rs[1].postID)
	assert.Equal(t, "C01-1", rs[1].commentID)
	assert.Equal(t, "C01-2", rs[2].commentID)
	assert.Equal(t, "P02", rs[3].postID)
}

func TestCanDelete(t *testing.T) {
	app := &App{Posts: seed.CommunityPosts(), Profiles: profile.NewService()}
	m := InitialCommunityModel(app)

	app.Profiles.Login(models.RoleFarmer) // rajesh
	assert.True(t, m.canDelete("user-rajesh-patel"))
	assert.False(t, m.canDelete("user-anil-kumar"))

	app.Profiles.Login(models.RoleAdmin)
	assert.True(t, m.canDelete("user-anil-kumar"), "admins moderate everything")
}

func TestMarkdownCacheReturnsStableOutput(t *testing.T) {
	c := newMarkdownCache()
	first := c.Render("**bold** advice")
	second := c.Render("**bold** advice")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "dark", ThemeByName("dark").Name)
	assert.Equal(t, "light", ThemeByName("light").Name)
	assert.Equal(t, "light", ThemeByName("").Name)
}

func TestReplyResolvesAfterLeavingChat(t *testing.T) {
	app := &App{
		Profiles: profile.NewService(),
		Session:  assistant.NewSession(nil, "hello", "error"),
		Lang:     i18n.EN,
		Theme:    ThemeByName("light"),
	}
	app.Profiles.Login(models.RoleFarmer)

	app.Session.Draft = "my hens are sneezing"
	_, ok := app.Session.Send()
	require.True(t, ok)
	require.True(t, app.Session.Busy)

	// User navigates home while the backend call is still in flight.
	root := NewRoot(app)
	root.page = InitialDashboardModel(app)

	_, _ = root.Update(assistantReplyMsg{text: "Check for infectious coryza."})

	assert.False(t, app.Session.Busy, "session must accept new turns again")
	last := app.Session.Messages[len(app.Session.Messages)-1]
	assert.Equal(t, models.SenderAssistant, last.Sender)
	assert.Equal(t, "Check for infectious coryza.", last.Text)
}

func TestLeavingChatStopsRecording(t *testing.T) {
	mic := &stubMic{}
	app := &App{
		Profiles: profile.NewService(),
		Session:  assistant.NewSession(nil, "hello", "error"),
		Recorder: audio.NewRecorder(mic),
		Lang:     i18n.EN,
		Theme:    ThemeByName("light"),
	}
	app.Profiles.Login(models.RoleFarmer)

	m := InitialChatModel(app)
	require.NoError(t, app.Recorder.Start())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.IsType(t, DashboardPage{}, next)
	assert.False(t, app.Recorder.Recording())
	assert.True(t, mic.stopped, "capture device must be released")
}

func TestSetLanguagePersistsChoice(t *testing.T) {
	kv, err := db.Open(":memory:")
	require.NoError(t, err)

	app := &App{KV: kv, Lang: i18n.EN, Theme: ThemeByName("light")}
	app.SetLanguage(i18n.HI)
	app.SetTheme("dark")

	v, ok := kv.Get(db.KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "hi", v)

	v, ok = kv.Get(db.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, "dark", app.Theme.Name)
}

func TestConsumerSeesComplianceList(t *testing.T) {
	app := &App{Profiles: profile.NewService(), Lang: i18n.EN, Theme: ThemeByName("light")}
	app.Profiles.Login(models.RoleConsumer)

	d := InitialDashboardModel(app)
	var keys []string
	for _, e := range d.entries {
		keys = append(keys, e.labelKey)
	}
	assert.Contains(t, keys, "farmComplianceList")

	view := InitialComplianceModel(app).View()
	assert.Contains(t, view, "Green Valley Farms")
	assert.Contains(t, view, "Punjab")
	assert.Contains(t, view, "2023-10-15")
}
