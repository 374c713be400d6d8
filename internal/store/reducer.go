package store

import (
	"strings"

	"farmguard/internal/models"
)

// Action is one community-hub state transition. The concrete types below are
// the only implementations; Apply is a pure function over them.
type Action interface {
	isAction()
}

// SetPosts replaces the whole list, e.g. after loading from storage.
type SetPosts struct {
	Posts []models.CommunityPost
}

// AddPost prepends a new thread authored by User.
type AddPost struct {
	Title   string
	Content string
	User    models.UserProfile
}

// AddComment appends a comment to the post's thread, taking its text from
// the post's pending draft.
type AddComment struct {
	PostID string
	User   models.UserProfile
}

// DeletePost removes the post with the given ID.
type DeletePost struct {
	PostID string
}

// DeleteComment removes one comment from one post.
type DeleteComment struct {
	PostID    string
	CommentID string
}

// ToggleComments flips the post's comment visibility.
type ToggleComments struct {
	PostID string
}

// SetCommentDraft records in-progress reply text on a post.
type SetCommentDraft struct {
	PostID string
	Text   string
}

func (SetPosts) isAction()        {}
func (AddPost) isAction()         {}
func (AddComment) isAction()      {}
func (DeletePost) isAction()      {}
func (DeleteComment) isAction()   {}
func (ToggleComments) isAction()  {}
func (SetCommentDraft) isAction() {}

// Apply computes the next post list from the current one. It never mutates
// its input: changed posts are copied. Actions that target an ID not present
// in the list return the input slice unchanged, so deletes are idempotent.
func Apply(posts []models.CommunityPost, action Action) []models.CommunityPost {
	switch a := action.(type) {
	case SetPosts:
		return a.Posts

	case AddPost:
		post := models.CommunityPost{
			ID:       NewPostID(),
			AuthorID: a.User.ID,
			Author:   a.User.Name,
			Avatar:   a.User.Avatar,
			Date:     "Just now",
			Title:    a.Title,
			Content:  a.Content,
			Comments: []models.Comment{},
		}
		next := make([]models.CommunityPost, 0, len(posts)+1)
		next = append(next, post)
		return append(next, posts...)

	case AddComment:
		return updatePost(posts, a.PostID, func(p models.CommunityPost) models.CommunityPost {
			if strings.TrimSpace(p.CommentDraft) == "" {
				return p
			}
			comment := models.Comment{
				ID:       NewCommentID(),
				AuthorID: a.User.ID,
				Author:   a.User.Name,
				Avatar:   a.User.Avatar,
				Content:  p.CommentDraft,
			}
			p.Comments = append(append([]models.Comment{}, p.Comments...), comment)
			p.CommentDraft = ""
			return p
		})

	case DeletePost:
		idx := -1
		for i := range posts {
			if posts[i].ID == a.PostID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return posts
		}
		next := make([]models.CommunityPost, 0, len(posts)-1)
		next = append(next, posts[:idx]...)
		return append(next, posts[idx+1:]...)

	case DeleteComment:
		return updatePost(posts, a.PostID, func(p models.CommunityPost) models.CommunityPost {
			idx := -1
			for i := range p.Comments {
				if p.Comments[i].ID == a.CommentID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return p
			}
			next := make([]models.Comment, 0, len(p.Comments)-1)
			next = append(next, p.Comments[:idx]...)
			p.Comments = append(next, p.Comments[idx+1:]...)
			return p
		})

	case ToggleComments:
		return updatePost(posts, a.PostID, func(p models.CommunityPost) models.CommunityPost {
			p.ShowComments = !p.ShowComments
			return p
		})

	case SetCommentDraft:
		return updatePost(posts, a.PostID, func(p models.CommunityPost) models.CommunityPost {
			p.CommentDraft = a.Text
			return p
		})
	}
	return posts
}

// updatePost maps fn over the post with the given ID, copying the slice. If
// no post matches, the input slice is returned as-is.
func updatePost(posts []models.CommunityPost, id string, fn func(models.CommunityPost) models.CommunityPost) []models.CommunityPost {
	idx := -1
	for i := range posts {
		if posts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return posts
	}
	next := make([]models.CommunityPost, len(posts))
	copy(next, posts)
	next[idx] = fn(posts[idx])
	return next
}
