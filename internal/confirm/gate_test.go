package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskReplacesPending(t *testing.T) {
	g := NewGate()
	var fired []string

	g.Ask(Request{Title: "Delete Post", OnConfirm: func() { fired = append(fired, "a") }})
	g.Ask(Request{Title: "Delete Comment", OnConfirm: func() { fired = append(fired, "b") }})

	require.NotNil(t, g.Pending())
	assert.Equal(t, "Delete Comment", g.Pending().Title)

	g.Confirm()
	assert.Equal(t, []string{"b"}, fired, "only the latest request may fire")
	assert.Nil(t, g.Pending())
}

func TestCancelDropsCallback(t *testing.T) {
	g := NewGate()
	fired := false

	g.Ask(Request{Title: "Delete Post", OnConfirm: func() { fired = true }})
	g.Cancel()

	assert.Nil(t, g.Pending())
	g.Confirm() // nothing pending, nothing fires
	assert.False(t, fired)
}

func TestSeverityDefaultsToDanger(t *testing.T) {
	g := NewGate()
	g.Ask(Request{Title: "Delete Post"})
	assert.Equal(t, Danger, g.Pending().Severity)

	g.Ask(Request{Title: "Sign Out", Severity: Warning})
	assert.Equal(t, Warning, g.Pending().Severity)
}

func TestConfirmAllowsReentrantAsk(t *testing.T) {
	g := NewGate()
	g.Ask(Request{Title: "First", OnConfirm: func() {
		g.Ask(Request{Title: "Second"})
	}})

	g.Confirm()
	require.NotNil(t, g.Pending())
	assert.Equal(t, "Second", g.Pending().Title)
}
