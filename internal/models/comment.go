package models

// Comment is a reply owned by exactly one CommunityPost. Comments are kept
// oldest-first within their post.
type Comment struct {
	ID       string   `json:"id"`
	AuthorID string   `json:"authorId"`
	Author   string   `json:"author"`
	Avatar   string   `json:"avatar"`
	Content  string   `json:"content"`
	Likes    int      `json:"likes"`
	Dislikes int      `json:"dislikes"`
	UserVote VoteKind `json:"userVote,omitempty"`
}
