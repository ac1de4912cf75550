package uploadsview

import (
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui/action"
)

// CopyLink asks the app to put the upload's link on the clipboard.
type CopyLink struct {
	Upload state.Upload
}

func (CopyLink) ActionType() string { return "uploadsview.copy_link" }

// ShowLink asks the app to show the upload's link in a dialog.
type ShowLink struct {
	Upload state.Upload
}

func (ShowLink) ActionType() string { return "uploadsview.show_link" }

// DeleteRequested asks the app to confirm deletion of an upload.
type DeleteRequested struct {
	Upload state.Upload
}

func (DeleteRequested) ActionType() string { return "uploadsview.delete_requested" }

// UploadRequested asks the app to prompt for an image to upload.
type UploadRequested struct{}

func (UploadRequested) ActionType() string { return "uploadsview.upload_requested" }

// ActionMsg creates an action.Msg for an uploadsview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "uploadsview", Action: a}
}
