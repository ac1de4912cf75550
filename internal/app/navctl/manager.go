package navctl

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui/gallerygrid"
	"github.com/llehouerou/openimg/internal/ui/postview"
	"github.com/llehouerou/openimg/internal/ui/uploadsview"
)

// Keymap contexts of the views.
const (
	ContextGallery = "gallery"
	ContextPost    = "post"
	ContextUploads = "uploads"
)

// Manager manages the view mode and the view models.
type Manager struct {
	viewMode      ViewMode
	gallery       gallerygrid.Model
	post          *postview.Model
	uploads       uploadsview.Model
	width, height int
}

// New creates a manager showing the gallery.
func New(galleryView gallerygrid.Model, uploadsView uploadsview.Model) *Manager {
	n := &Manager{
		viewMode: ViewGallery,
		gallery:  galleryView,
		uploads:  uploadsView,
	}
	n.updateFocus()
	return n
}

// --- View Mode ---

// ViewMode returns the current view mode.
func (n *Manager) ViewMode() ViewMode {
	return n.viewMode
}

// SetViewMode changes the view mode.
func (n *Manager) SetViewMode(mode ViewMode) {
	n.viewMode = mode
	n.updateFocus()
}

// NextView cycles to the next view mode.
func (n *Manager) NextView() {
	i := slices.Index(Modes, n.viewMode)
	n.SetViewMode(Modes[(i+1)%len(Modes)])
}

// Context returns the keymap context of what is shown.
func (n *Manager) Context() string {
	switch {
	case n.viewMode == ViewUploads:
		return ContextUploads
	case n.post != nil:
		return ContextPost
	default:
		return ContextGallery
	}
}

// HelpContexts returns the binding contexts relevant to what is shown.
func (n *Manager) HelpContexts() []string {
	ctx := n.Context()
	if ctx == ContextPost {
		// Comments scroll with the gallery movement keys.
		return []string{"global", ContextPost, ContextGallery}
	}
	return []string{"global", ctx}
}

func (n *Manager) updateFocus() {
	n.gallery.SetFocused(n.viewMode == ViewGallery && n.post == nil)
	n.uploads.SetFocused(n.viewMode == ViewUploads)
	if n.post != nil {
		n.post.SetFocused(n.viewMode == ViewGallery)
	}
}

// --- View Accessors ---

// Gallery returns a pointer to the gallery view.
func (n *Manager) Gallery() *gallerygrid.Model {
	return &n.gallery
}

// Uploads returns a pointer to the uploads view.
func (n *Manager) Uploads() *uploadsview.Model {
	return &n.uploads
}

// Post returns the open post view, or nil.
func (n *Manager) Post() *postview.Model {
	return n.post
}

// OpenPost shows the post at index of window over the gallery.
func (n *Manager) OpenPost(window []gallery.Post, index int) tea.Cmd {
	pv := postview.New(window, index)
	pv.SetSize(n.width, n.height)
	n.post = &pv
	n.viewMode = ViewGallery
	n.updateFocus()
	return n.post.Init()
}

// ClosePost returns to the gallery list.
func (n *Manager) ClosePost() {
	n.post = nil
	n.updateFocus()
}

// SetSize sets the size of the view area.
func (n *Manager) SetSize(width, height int) {
	n.width, n.height = width, height
	n.gallery.SetSize(width, height)
	n.uploads.SetSize(width, height)
	if n.post != nil {
		n.post.SetSize(width, height)
	}
}

// HandleAction sends a key action to the view shown.
func (n *Manager) HandleAction(a keymap.Action) (tea.Cmd, error) {
	switch n.Context() {
	case ContextUploads:
		return n.uploads.HandleAction(a), nil
	case ContextPost:
		return n.post.HandleAction(a), nil
	default:
		return n.gallery.HandleAction(a)
	}
}

// View renders the view shown.
func (n *Manager) View() string {
	switch n.Context() {
	case ContextUploads:
		return n.uploads.View()
	case ContextPost:
		return n.post.View()
	default:
		return n.gallery.View()
	}
}
