package models

// CommunityPost is one discussion thread in the community hub. Insertion
// order is meaningful: the post list is kept newest-first.
//
// ShowComments and CommentDraft are transient UI state. The store zeroes
// them before writing the list to durable storage, so with omitempty they
// never reach the serialized form.
type CommunityPost struct {
	ID       string    `json:"id"`
	AuthorID string    `json:"authorId"`
	Author   string    `json:"author"`
	Avatar   string    `json:"avatar"`
	Date     string    `json:"date"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Views    int       `json:"views"`
	Likes    int       `json:"likes"`
	Dislikes int       `json:"dislikes"`
	UserVote VoteKind  `json:"userVote,omitempty"`
	Comments []Comment `json:"comments"`

	ShowComments bool   `json:"showComments,omitempty"`
	CommentDraft string `json:"newCommentText,omitempty"`
}
