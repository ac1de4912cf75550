package gallerygrid

import (
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/ui/action"
)

// OpenPost asks the app to show the detail view on Window[Index].
type OpenPost struct {
	Window []gallery.Post
	Index  int
}

func (OpenPost) ActionType() string { return "gallerygrid.open_post" }

// LoadPage asks the app to fetch a gallery page. Page 0 replaces the list.
type LoadPage struct {
	Section string
	Page    int
}

func (LoadPage) ActionType() string { return "gallerygrid.load_page" }

// NSFWToggled reports the new NSFW thumbnail setting so it can be saved.
type NSFWToggled struct {
	Allow bool
}

func (NSFWToggled) ActionType() string { return "gallerygrid.nsfw_toggled" }

// SelectionChanged reports the post under the cursor.
type SelectionChanged struct {
	PostID string
}

func (SelectionChanged) ActionType() string { return "gallerygrid.selection_changed" }

// ActionMsg creates an action.Msg for a gallerygrid action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "gallerygrid", Action: a}
}
