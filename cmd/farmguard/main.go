package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"farmguard/internal/assistant"
	"farmguard/internal/audio"
	"farmguard/internal/config"
	"farmguard/internal/confirm"
	"farmguard/internal/db"
	"farmguard/internal/i18n"
	"farmguard/internal/profile"
	"farmguard/internal/seed"
	"farmguard/internal/store"
	"farmguard/internal/ui"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.LoadConfig()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("cannot create data directory %s: %v", dir, err)
		}
	}
	kv, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("cannot open storage at %s: %v", cfg.DBPath, err)
	}

	posts := store.New(kv, seed.CommunityPosts())

	lang := i18n.Parse(cfg.Language)
	if saved, ok := kv.Get(db.KeyLanguage); ok {
		lang = i18n.Parse(saved)
	}
	themeName := "light"
	if saved, ok := kv.Get(db.KeyTheme); ok {
		themeName = saved
	}

	// The assistant degrades to an offline error bubble without an API key.
	var analyzer assistant.Analyzer
	var tips ui.TipsProvider
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("assistant unavailable: %v", err)
		} else {
			analyzer = gemini
			tips = gemini
		}
	} else {
		log.Println("GEMINI_API_KEY not set, symptom checker runs offline")
	}

	// Same for the microphone: chat stays usable with text and images.
	var device audio.Device
	if mic, err := audio.NewMic(); err != nil {
		log.Printf("microphone unavailable: %v", err)
	} else {
		device = mic
		defer mic.Close()
	}

	app := &ui.App{
		Cfg:      cfg,
		KV:       kv,
		Store:    posts,
		Posts:    posts.Load(),
		Profiles: profile.NewService(),
		Gate:     confirm.NewGate(),
		Session:  assistant.NewSession(analyzer, i18n.T(lang, "chatbotGreeting"), i18n.T(lang, "chatbotError")),
		Recorder: audio.NewRecorder(device),
		Tips:     tips,
		Lang:     lang,
		Theme:    ui.ThemeByName(themeName),
	}

	p := tea.NewProgram(ui.NewRoot(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
