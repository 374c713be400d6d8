// Package ui is the terminal front end: one Bubble Tea page model per screen,
// sharing mutable session state through App.
package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"farmguard/internal/assistant"
	"farmguard/internal/audio"
	"farmguard/internal/config"
	"farmguard/internal/confirm"
	"farmguard/internal/db"
	"farmguard/internal/i18n"
	"farmguard/internal/models"
	"farmguard/internal/profile"
	"farmguard/internal/store"
)

// TipsProvider generates the farmer dashboard's improvement tips.
type TipsProvider interface {
	BiosecurityTips(ctx context.Context, languageName string) (string, error)
}

// App is the state shared by every page. Pages hold a pointer to it and are
// otherwise plain value models, so switching pages never loses session state.
type App struct {
	Cfg      *config.Config
	KV       *db.KV
	Store    *store.Store
	Posts    []models.CommunityPost
	Profiles *profile.Service
	Gate     *confirm.Gate
	Session  *assistant.Session
	Recorder *audio.Recorder
	Tips     TipsProvider // nil when the assistant runs offline

	Lang  i18n.Language
	Theme Theme

	// deferred carries the command produced by a confirmed gate callback
	// until the dialog handler picks it up.
	deferred tea.Cmd
}

// T looks up a translation in the selected language.
func (a *App) T(key string) string {
	return i18n.T(a.Lang, key)
}

// Dispatch applies a community action and schedules the fire-and-forget save.
// The save slot is taken here, on the event loop, so rapid dispatches persist
// in the order they changed the state even when their goroutines race.
func (a *App) Dispatch(action store.Action) tea.Cmd {
	a.Posts = store.Apply(a.Posts, action)
	posts := a.Posts
	seq := a.Store.Begin()
	s := a.Store
	return func() tea.Msg {
		s.SaveOrdered(seq, posts)
		return nil
	}
}

// SetLanguage switches the UI language and persists the choice. A storage
// failure is logged; the in-memory choice still applies for the session.
func (a *App) SetLanguage(lang i18n.Language) {
	a.Lang = lang
	if err := a.KV.Set(db.KeyLanguage, string(lang)); err != nil {
		log.Printf("ui: cannot persist language: %v", err)
	}
}

// SetTheme switches light/dark styling and persists the choice.
func (a *App) SetTheme(name string) {
	a.Theme = ThemeByName(name)
	if err := a.KV.Set(db.KeyTheme, name); err != nil {
		log.Printf("ui: cannot persist theme: %v", err)
	}
}
