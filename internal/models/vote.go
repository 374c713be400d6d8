package models

// VoteKind is the signed-in user's reaction to a post or comment. The zero
// value means no vote and is omitted from the serialized form.
type VoteKind string

const (
	VoteNone    VoteKind = ""
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)
