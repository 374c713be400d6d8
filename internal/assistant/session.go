// Package assistant drives the vet-assistant chat: an append-only transcript,
// a pending draft with optional media, and calls out to the analysis backend.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmguard/internal/models"
)

// inferenceTimeout bounds a single backend call.
const inferenceTimeout = 60 * time.Second

// Analyzer produces an assistant reply for one user turn.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (string, error)
}

// Request is the user turn handed to the backend: free text plus up to one
// image and one audio clip.
type Request struct {
	Text  string
	Image *models.Attachment
	Audio *models.Attachment
}

// Session holds the chat state for one signed-in user. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Session struct {
	analyzer Analyzer
	errText  string

	Messages []models.ChatMessage
	Draft    string
	Image    *models.Attachment
	Audio    *models.Attachment
	Busy     bool
}

// NewSession starts a transcript with the assistant greeting. errText is the
// localized message shown when the backend fails.
func NewSession(analyzer Analyzer, greeting, errText string) *Session {
	return &Session{
		analyzer: analyzer,
		errText:  errText,
		Messages: []models.ChatMessage{
			{Sender: models.SenderAssistant, Text: greeting},
		},
	}
}

// AttachImage stages an image for the next send, displacing any staged audio.
// A turn carries one kind of media at a time.
func (s *Session) AttachImage(a *models.Attachment) {
	s.Image = a
	s.Audio = nil
}

// AttachAudio stages an audio clip for the next send, displacing any staged
// image.
func (s *Session) AttachAudio(a *models.Attachment) {
	s.Audio = a
	s.Image = nil
}

// Send commits the current draft and staged media as a user turn. It returns
// the request to run against the backend and false when there is nothing to
// send or a turn is already in flight.
func (s *Session) Send() (Request, bool) {
	if s.Busy {
		return Request{}, false
	}
	text := strings.TrimSpace(s.Draft)
	if text == "" && s.Image == nil && s.Audio == nil {
		return Request{}, false
	}

	s.Messages = append(s.Messages, models.ChatMessage{
		Sender: models.SenderUser,
		Text:   text,
		Image:  s.Image,
		Audio:  s.Audio,
	})
	req := Request{Text: text, Image: s.Image, Audio: s.Audio}
	s.Draft = ""
	s.Image = nil
	s.Audio = nil
	s.Busy = true
	return req, true
}

// Analyze runs one request against the backend with the session timeout.
func (s *Session) Analyze(ctx context.Context, req Request) (string, error) {
	if s.analyzer == nil {
		return "", errors.New("assistant: no analysis backend configured")
	}
	ctx, cancel := context.WithTimeout(ctx, inferenceTimeout)
	defer cancel()
	return s.analyzer.Analyze(ctx, req)
}

// Resolve records the backend outcome as the assistant turn. Failures become
// the session's error message so the transcript always answers each user
// turn exactly once.
func (s *Session) Resolve(text string, err error) {
	if err != nil {
		text = s.errText
	}
	s.Messages = append(s.Messages, models.ChatMessage{
		Sender: models.SenderAssistant,
		Text:   text,
	})
	s.Busy = false
}
