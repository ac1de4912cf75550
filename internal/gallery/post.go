package gallery

import "time"

// Vote is the current user's vote on a post.
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Tint describes how the like counter of a post is coloured.
type Tint int

const (
	TintNeutral Tint = iota
	TintPositive
	TintNegative
)

// Post is a gallery entry: a single image or an album.
type Post struct {
	ID           string
	Title        string
	Link         string
	Type         string // mime type, images only
	IsAlbum      bool
	Cover        string // cover image id, albums only
	MP4          string
	NSFW         bool
	Favorited    bool
	Vote         Vote
	Ups          int
	Downs        int
	Points       int
	HasScore     bool // false for objects that never went through the gallery
	Account      string
	Datetime     time.Time
	CommentCount int
	ImageCount   int
}

// ItemID implements Item.
func (p Post) ItemID() string {
	return p.ID
}

// Tint returns the colour class of the like counter.
// Favorites count as an up vote.
func (p Post) Tint() Tint {
	switch {
	case p.Favorited || p.Vote == VoteUp:
		return TintPositive
	case p.Vote == VoteDown:
		return TintNegative
	default:
		return TintNeutral
	}
}

// IsGIF reports whether the post is an animated gif image.
func (p Post) IsGIF() bool {
	return !p.IsAlbum && p.Type == mimeGIF
}
