package postview

import (
	"github.com/llehouerou/openimg/internal/ui/action"
)

// LoadComments asks the app to fetch the comments of a post.
type LoadComments struct {
	PostID string
}

func (LoadComments) ActionType() string { return "postview.load_comments" }

// PostChanged reports the post now shown, so the gallery cursor can follow.
type PostChanged struct {
	PostID string
}

func (PostChanged) ActionType() string { return "postview.post_changed" }

// Close asks the app to go back to the gallery.
type Close struct{}

func (Close) ActionType() string { return "postview.close" }

// ActionMsg creates an action.Msg for a postview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "postview", Action: a}
}
