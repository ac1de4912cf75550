package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/state"
)

// requestTimeout bounds a single command, retries included.
const requestTimeout = 2 * time.Minute

func (m Model) loadGalleryCmd(section string, page int) tea.Cmd {
	api, sort := m.API, m.Sort
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		posts, err := api.Gallery(ctx, section, sort, page)
		return GalleryLoadedMsg{Section: section, Page: page, Posts: posts, Err: err}
	}
}

func (m Model) loadCommentsCmd(postID string) tea.Cmd {
	api, sort := m.API, m.CommentsSort
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		all, err := api.Comments(ctx, postID, sort)
		return CommentsLoadedMsg{PostID: postID, Comments: all, Err: err}
	}
}

func (m Model) loadUploadsCmd() tea.Cmd {
	svc := m.Uploads
	return func() tea.Msg {
		uploads, err := svc.List()
		return UploadsLoadedMsg{Uploads: uploads, Err: err}
	}
}

func (m Model) uploadCmd(jobID, path string) tea.Cmd {
	svc := m.Uploads
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		u, err := svc.Upload(ctx, path)
		return UploadDoneMsg{JobID: jobID, Path: path, Upload: u, Err: err}
	}
}

func (m Model) deleteUploadCmd(u state.Upload, remote bool) tea.Cmd {
	svc := m.Uploads
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := svc.Delete(ctx, u, remote)
		return UploadDeletedMsg{Upload: u, Remote: remote, Err: err}
	}
}

func (m Model) copyLinkCmd(url string) tea.Cmd {
	write := m.Clipboard
	return func() tea.Msg {
		return LinkCopiedMsg{URL: url, Err: write(url)}
	}
}
