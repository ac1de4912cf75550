package app

import (
	"context"

	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/state"
)

// GalleryAPI fetches gallery pages and comments from the image host.
type GalleryAPI interface {
	Gallery(ctx context.Context, section, sort string, page int) ([]gallery.Post, error)
	Comments(ctx context.Context, postID, sort string) ([]comments.Comment, error)
}

// UploadService manages the uploads made from this device.
type UploadService interface {
	List() ([]state.Upload, error)
	Upload(ctx context.Context, path string) (state.Upload, error)
	Delete(ctx context.Context, u state.Upload, remote bool) error
	CanDeleteRemote(u state.Upload) bool
}

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter func(text string) error
