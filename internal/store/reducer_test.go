package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/models"
	"farmguard/internal/seed"
)

var rajesh = models.UserProfile{
	ID:     "user-rajesh-patel",
	Name:   "Rajesh Patel",
	Avatar: "https://ui-avatars.com/api/?name=Rajesh+Patel",
}

func TestAddPostPrepends(t *testing.T) {
	posts := seed.CommunityPosts()
	next := Apply(posts, AddPost{Title: "New fencing advice", Content: "What works for you?", User: rajesh})

	require.Len(t, next, len(posts)+1)
	created := next[0]
	assert.True(t, strings.HasPrefix(created.ID, "P"))
	assert.Equal(t, rajesh.ID, created.AuthorID)
	assert.Equal(t, "Rajesh Patel", created.Author)
	assert.Equal(t, "Just now", created.Date)
	assert.Equal(t, "New fencing advice", created.Title)
	assert.Zero(t, created.Views)
	assert.Zero(t, created.Likes)
	assert.Zero(t, created.Dislikes)
	assert.NotNil(t, created.Comments)
	assert.Empty(t, created.Comments)

	// Existing posts follow, untouched.
	assert.Equal(t, posts, next[1:])
}

func TestAddCommentFromDraft(t *testing.T) {
	posts := seed.CommunityPosts()
	before := len(posts[0].Comments)

	posts = Apply(posts, SetCommentDraft{PostID: "P01", Text: "Try raising the feeders."})
	assert.Equal(t, "Try raising the feeders.", posts[0].CommentDraft)

	posts = Apply(posts, AddComment{PostID: "P01", User: rajesh})
	require.Len(t, posts[0].Comments, before+1)
	added := posts[0].Comments[before]
	assert.True(t, strings.HasPrefix(added.ID, "C"))
	assert.Equal(t, "Try raising the feeders.", added.Content)
	assert.Equal(t, rajesh.ID, added.AuthorID)
	assert.Empty(t, posts[0].CommentDraft, "draft should clear after posting")
}

func TestAddCommentIgnoresBlankDraft(t *testing.T) {
	posts := seed.CommunityPosts()
	before := len(posts[0].Comments)

	posts = Apply(posts, SetCommentDraft{PostID: "P01", Text: "   \n\t"})
	next := Apply(posts, AddComment{PostID: "P01", User: rajesh})

	assert.Len(t, next[0].Comments, before)
}

func TestDeletePost(t *testing.T) {
	posts := seed.CommunityPosts()
	next := Apply(posts, DeletePost{PostID: "P02"})

	require.Len(t, next, len(posts)-1)
	for _, p := range next {
		assert.NotEqual(t, "P02", p.ID)
	}
}

func TestDeleteUnknownIDReturnsSameSlice(t *testing.T) {
	posts := seed.CommunityPosts()

	next := Apply(posts, DeletePost{PostID: "P99"})
	assert.Same(t, &posts[0], &next[0], "unmatched delete should return the input slice")

	next = Apply(posts, DeleteComment{PostID: "P01", CommentID: "C99"})
	assert.Equal(t, posts, next)
}

func TestDeleteComment(t *testing.T) {
	posts := seed.CommunityPosts()
	next := Apply(posts, DeleteComment{PostID: "P01", CommentID: "C01-1"})

	require.Len(t, next[0].Comments, 1)
	assert.Equal(t, "C01-2", next[0].Comments[0].ID)
	// Original list is not mutated.
	assert.Len(t, posts[0].Comments, 2)
}

func TestToggleComments(t *testing.T) {
	posts := seed.CommunityPosts()

	posts = Apply(posts, ToggleComments{PostID: "P03"})
	assert.True(t, posts[2].ShowComments)

	posts = Apply(posts, ToggleComments{PostID: "P03"})
	assert.False(t, posts[2].ShowComments)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewPostID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
