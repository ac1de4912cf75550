package comments

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	opMarker      = " OP"
	momentsAgo    = "moments ago"
	absoluteAfter = 7 * 24 * time.Hour
	dateLayout    = "Jan 2, 2006"
)

// Byline is the "author: when" line shown above a comment body.
type Byline struct {
	Author string
	OP     bool // author is the original poster of the post
	When   string
}

// NewByline builds the byline for c. op is the original poster of the post;
// an empty op never matches.
func NewByline(c Comment, op string, now time.Time) Byline {
	return Byline{
		Author: c.Author,
		OP:     op != "" && c.Author == op,
		When:   RelativeTime(c.Date, now),
	}
}

// String renders the byline as plain text.
func (b Byline) String() string {
	var sb strings.Builder
	sb.WriteString(b.Author)
	if b.OP {
		sb.WriteString(opMarker)
	}
	sb.WriteString(": ")
	sb.WriteString(b.When)
	return sb.String()
}

// OPSpan returns the byte range [start, end) of the "OP" marker in String(),
// or (0, 0) when the author is not the original poster.
func (b Byline) OPSpan() (start, end int) {
	if !b.OP {
		return 0, 0
	}
	return len(b.Author) + 1, len(b.Author) + len(opMarker)
}

// RelativeTime describes t relative to now.
// Anything from now to one minute ago is "moments ago"; dates older than a
// week are shown as an absolute date.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff >= 0 && diff <= time.Minute:
		return momentsAgo
	case diff > absoluteAfter:
		return t.Format(dateLayout)
	default:
		return humanize.RelTime(t, now, "ago", "from now")
	}
}
