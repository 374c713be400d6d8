package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/db"
	"farmguard/internal/models"
	"farmguard/internal/seed"
)

type fakeKV map[string]string

func (f fakeKV) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func (f fakeKV) Set(key, value string) error {
	f[key] = value
	return nil
}

func TestLoadFallsBackToSeedWhenEmpty(t *testing.T) {
	s := New(fakeKV{}, seed.CommunityPosts())

	posts := s.Load()
	require.Len(t, posts, 3)
	assert.Equal(t, "P01", posts[0].ID)
}

func TestLoadFallsBackToSeedWhenCorrupt(t *testing.T) {
	kv := fakeKV{db.KeyPosts: "{not json"}
	s := New(kv, seed.CommunityPosts())

	posts := s.Load()
	require.Len(t, posts, 3)
}

func TestLoadNormalizesStoredPosts(t *testing.T) {
	stored := []models.CommunityPost{{ID: "P10", Title: "Old thread"}}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	kv := fakeKV{db.KeyPosts: string(raw)}

	posts := New(kv, nil).Load()
	require.Len(t, posts, 1)
	assert.NotNil(t, posts[0].Comments, "comments must come back as an empty slice, not nil")
	assert.False(t, posts[0].ShowComments)
	assert.Empty(t, posts[0].CommentDraft)
}

func TestSaveStripsTransientState(t *testing.T) {
	kv := fakeKV{}
	s := New(kv, nil)

	posts := seed.CommunityPosts()
	posts = Apply(posts, ToggleComments{PostID: "P01"})
	posts = Apply(posts, SetCommentDraft{PostID: "P01", Text: "half-typed reply"})
	s.Save(posts)

	raw := kv[db.KeyPosts]
	require.NotEmpty(t, raw)
	assert.NotContains(t, raw, "showComments")
	assert.NotContains(t, raw, "newCommentText")
	assert.NotContains(t, raw, "half-typed reply")

	// The caller's slice keeps its view state.
	assert.True(t, posts[0].ShowComments)
	assert.Equal(t, "half-typed reply", posts[0].CommentDraft)
}

func TestStaleSnapshotNeverOverwritesNewer(t *testing.T) {
	kv := fakeKV{}
	s := New(kv, nil)

	older := seed.CommunityPosts()
	newer := Apply(older, DeletePost{PostID: "P02"})

	first := s.Begin()
	second := s.Begin()

	// The later snapshot's goroutine finishes first.
	s.SaveOrdered(second, newer)
	s.SaveOrdered(first, older)

	loaded := s.Load()
	require.Len(t, loaded, 2, "the older snapshot must not win")
	assert.Equal(t, "P01", loaded[0].ID)
	assert.Equal(t, "P03", loaded[1].ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := fakeKV{}
	s := New(kv, nil)

	posts := seed.CommunityPosts()
	posts = Apply(posts, DeletePost{PostID: "P02"})
	s.Save(posts)

	loaded := s.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, "P01", loaded[0].ID)
	assert.Equal(t, "P03", loaded[1].ID)
	assert.Len(t, loaded[0].Comments, 2)
}
