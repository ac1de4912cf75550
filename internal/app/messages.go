// Package app contains the root model of the TUI and its messages.
package app

import (
	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/state"
)

// GalleryLoadedMsg carries one page of a gallery section.
type GalleryLoadedMsg struct {
	Section string
	Page    int
	Posts   []gallery.Post
	Err     error
}

// CommentsLoadedMsg carries the comments of a post.
type CommentsLoadedMsg struct {
	PostID   string
	Comments []comments.Comment
	Err      error
}

// UploadsLoadedMsg carries the local uploads, newest first.
type UploadsLoadedMsg struct {
	Uploads []state.Upload
	Err     error
}

// UploadDoneMsg is sent when an image upload finishes.
type UploadDoneMsg struct {
	JobID  string
	Path   string
	Upload state.Upload
	Err    error
}

// UploadDeletedMsg is sent when an upload deletion finishes.
type UploadDeletedMsg struct {
	Upload state.Upload
	Remote bool
	Err    error
}

// LinkCopiedMsg is sent after a link was put on the clipboard.
type LinkCopiedMsg struct {
	URL string
	Err error
}
