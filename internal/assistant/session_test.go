package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/models"
)

type fakeAnalyzer struct {
	reply string
	err   error
	got   Request
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req Request) (string, error) {
	f.got = req
	return f.reply, f.err
}

func newTestSession(a Analyzer) *Session {
	return NewSession(a, "Hello! How can I help?", "Sorry, something went wrong.")
}

func TestSessionStartsWithGreeting(t *testing.T) {
	s := newTestSession(nil)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, models.SenderAssistant, s.Messages[0].Sender)
	assert.Equal(t, "Hello! How can I help?", s.Messages[0].Text)
}

func TestSendAppendsUserTurn(t *testing.T) {
	fake := &fakeAnalyzer{reply: "Keep the pen dry."}
	s := newTestSession(fake)
	s.Draft = "  My hens are lethargic.  "

	req, ok := s.Send()
	require.True(t, ok)
	assert.Equal(t, "My hens are lethargic.", req.Text)
	assert.True(t, s.Busy)
	assert.Empty(t, s.Draft)

	require.Len(t, s.Messages, 2)
	assert.Equal(t, models.SenderUser, s.Messages[1].Sender)
	assert.Equal(t, "My hens are lethargic.", s.Messages[1].Text)

	reply, err := s.Analyze(context.Background(), req)
	s.Resolve(reply, err)

	require.Len(t, s.Messages, 3)
	assert.Equal(t, models.SenderAssistant, s.Messages[2].Sender)
	assert.Equal(t, "Keep the pen dry.", s.Messages[2].Text)
	assert.False(t, s.Busy)
}

func TestFailureBecomesErrorBubble(t *testing.T) {
	fake := &fakeAnalyzer{err: errors.New("quota exceeded")}
	s := newTestSession(fake)
	s.Draft = "help"

	req, ok := s.Send()
	require.True(t, ok)

	reply, err := s.Analyze(context.Background(), req)
	s.Resolve(reply, err)

	require.Len(t, s.Messages, 3, "exactly one assistant turn per user turn")
	assert.Equal(t, "Sorry, something went wrong.", s.Messages[2].Text)
	assert.False(t, s.Busy)
}

func TestEmptySendIsNoOp(t *testing.T) {
	s := newTestSession(&fakeAnalyzer{})
	s.Draft = "   \t "

	_, ok := s.Send()
	assert.False(t, ok)
	assert.Len(t, s.Messages, 1)
	assert.False(t, s.Busy)
}

func TestMediaOnlySendIsAllowed(t *testing.T) {
	fake := &fakeAnalyzer{reply: "Looks like mites."}
	s := newTestSession(fake)
	s.AttachImage(&models.Attachment{MIMEType: "image/jpeg", Data: []byte{0xff}})

	req, ok := s.Send()
	require.True(t, ok)
	assert.Empty(t, req.Text)
	require.NotNil(t, req.Image)
	assert.Nil(t, s.Image, "staged attachment clears on send")
}

func TestAttachmentsAreMutuallyExclusive(t *testing.T) {
	s := newTestSession(nil)

	s.AttachImage(&models.Attachment{MIMEType: "image/jpeg"})
	s.AttachAudio(&models.Attachment{MIMEType: "audio/wav"})
	assert.Nil(t, s.Image)
	require.NotNil(t, s.Audio)

	s.AttachImage(&models.Attachment{MIMEType: "image/png"})
	assert.Nil(t, s.Audio)
	require.NotNil(t, s.Image)
	assert.Equal(t, "image/png", s.Image.MIMEType)
}

func TestSendRefusedWhileBusy(t *testing.T) {
	s := newTestSession(&fakeAnalyzer{reply: "ok"})
	s.Draft = "first"
	_, ok := s.Send()
	require.True(t, ok)

	s.Draft = "second"
	_, ok = s.Send()
	assert.False(t, ok)
	assert.Len(t, s.Messages, 2)
}

func TestAnalyzeWithoutBackendFails(t *testing.T) {
	s := newTestSession(nil)
	_, err := s.Analyze(context.Background(), Request{Text: "hi"})
	assert.Error(t, err)
}
