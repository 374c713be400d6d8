package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewPostID returns a post identifier unique across rapid successive calls.
// The millisecond timestamp keeps IDs roughly sortable; the uuid suffix
// disambiguates same-millisecond creations.
func NewPostID() string {
	return newID("P")
}

// NewCommentID returns a comment identifier with the same shape as post IDs.
func NewCommentID() string {
	return newID("C")
}

func newID(tag string) string {
	return fmt.Sprintf("%s%d-%s", tag, time.Now().UnixMilli(), uuid.NewString()[:8])
}
