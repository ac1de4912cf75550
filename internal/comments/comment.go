// Package comments formats post comments for display: bylines with the
// original poster marker, relative dates, score badges and selection.
package comments

import (
	"strconv"
	"time"
)

// Comment is a single comment on a gallery post.
type Comment struct {
	ID       int64
	PostID   string
	ParentID int64
	Author   string
	Body     string
	Points   int
	Ups      int
	Downs    int
	Date     time.Time
	Children []Comment
}

// ItemID implements gallery.Item.
func (c Comment) ItemID() string {
	return strconv.FormatInt(c.ID, 10)
}

// HasReplies reports whether the replies indicator should be shown.
func (c Comment) HasReplies() bool {
	return len(c.Children) > 0
}

// Positive reports whether the score badge uses the positive style.
func (c Comment) Positive() bool {
	return c.Points >= 0
}

// TopLevel returns the comments that have no parent, in order.
func TopLevel(all []Comment) []Comment {
	result := make([]Comment, 0, len(all))
	for _, c := range all {
		if c.ParentID == 0 {
			result = append(result, c)
		}
	}
	return result
}
