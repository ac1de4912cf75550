// Package uploadsview lists the photos and albums uploaded from this device.
package uploadsview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/action"
	"github.com/llehouerou/openimg/internal/ui/list"
)

// Model is the uploads list view.
type Model struct {
	ui.Base
	uploads gallery.Collection[state.Upload]
	list    list.Model[state.Upload]
	now     func() time.Time
}

// New creates an empty uploads view.
func New() Model {
	return Model{
		list: list.New[state.Upload](ui.ScrollMargin, ui.PanelOverhead),
		now:  time.Now,
	}
}

// SetSize sets the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetUploads replaces the uploads shown.
func (m *Model) SetUploads(uploads []state.Upload) {
	m.uploads.Clear()
	m.uploads.Add(uploads...)
	m.list.SetItems(m.uploads.Items())
}

// RemoveUpload drops the upload with the given id from the list.
// Returns true if it was shown.
func (m *Model) RemoveUpload(id int64) bool {
	if !m.uploads.Remove(state.Upload{ID: id}.ItemID()) {
		return false
	}
	m.list.SetItems(m.uploads.Items())
	return true
}

// Len returns the number of uploads.
func (m Model) Len() int {
	return m.list.Len()
}

// Selected returns the upload under the cursor.
func (m Model) Selected() (state.Upload, bool) {
	return m.list.Selected()
}

// HandleAction handles a resolved key action.
func (m *Model) HandleAction(a keymap.Action) tea.Cmd {
	switch a { //nolint:exhaustive // list actions handled below
	case keymap.ActionUpload:
		return emit(UploadRequested{})
	case keymap.ActionCopyLink:
		if u, ok := m.list.Selected(); ok {
			return emit(CopyLink{Upload: u})
		}
		return nil
	}

	res := m.list.Update(a)
	u, ok := m.list.Selected()
	if !ok {
		return nil
	}
	switch res.Action { //nolint:exhaustive // moves need no reaction
	case list.ActionEnter:
		return emit(ShowLink{Upload: u})
	case list.ActionDelete:
		return emit(DeleteRequested{Upload: u})
	}
	return nil
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}
