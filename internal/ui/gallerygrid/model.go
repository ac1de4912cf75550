// Package gallerygrid shows the gallery as a scrollable list of posts.
package gallerygrid

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/action"
	"github.com/llehouerou/openimg/internal/ui/list"
)

// ErrEmpty is returned when an action needs a post and the gallery is empty.
var ErrEmpty = errors.New("gallery is empty")

// Options configures the view.
type Options struct {
	ThumbnailSize gallery.ThumbnailSize
	WindowSize    int
	AllowNSFW     bool
}

// Model is the gallery list view.
type Model struct {
	ui.Base
	opts    Options
	posts   gallery.Collection[gallery.Post]
	list    list.Model[gallery.Post]
	section string
	page    int
	loading bool
}

// New creates an empty gallery view for section.
func New(section string, opts Options) Model {
	if opts.WindowSize < 2 {
		opts.WindowSize = gallery.MaxItems
	}
	return Model{
		opts:    opts,
		list:    list.New[gallery.Post](1, 0),
		section: section,
	}
}

// Section returns the gallery section shown.
func (m Model) Section() string {
	return m.section
}

// Page returns the last page loaded.
func (m Model) Page() int {
	return m.page
}

// AllowNSFW reports whether NSFW thumbnails are shown.
func (m Model) AllowNSFW() bool {
	return m.opts.AllowNSFW
}

// SetAllowNSFW sets whether NSFW thumbnails are shown.
func (m *Model) SetAllowNSFW(allow bool) {
	m.opts.AllowNSFW = allow
}

// SetLoading marks a page request in flight.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// Loading reports whether a page request is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// SetSection switches to another section and clears the posts.
func (m *Model) SetSection(section string) {
	m.section = section
	m.page = 0
	m.posts.Clear()
	m.sync()
}

// SetSize sets the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, max(height-ui.PanelOverhead, 0)/ui.GalleryRowHeight)
}

// SetPosts replaces the posts with the first page of the section.
func (m *Model) SetPosts(posts []gallery.Post) {
	m.posts.Clear()
	m.posts.Add(posts...)
	m.page = 0
	m.list.Select(0)
	m.sync()
}

// AppendPosts adds a further page. Posts already shown are skipped; the
// number of new posts is returned.
func (m *Model) AppendPosts(page int, posts []gallery.Post) int {
	added := m.posts.Add(posts...)
	m.page = page
	m.sync()
	return added
}

// Remove drops a post, for example after it was deleted or hidden elsewhere.
func (m *Model) Remove(id string) bool {
	if !m.posts.Remove(id) {
		return false
	}
	m.sync()
	return true
}

// Len returns the number of posts.
func (m Model) Len() int {
	return m.posts.Len()
}

// Selected returns the post under the cursor.
func (m Model) Selected() (gallery.Post, bool) {
	return m.list.Selected()
}

// SelectID moves the cursor to the post with the given id, if present.
func (m *Model) SelectID(id string) bool {
	i := m.posts.Index(id)
	if i < 0 {
		return false
	}
	m.list.Select(i)
	return true
}

// OpenSelected builds the detail window around the selected post.
func (m Model) OpenSelected() (OpenPost, error) {
	post, ok := m.list.Selected()
	if !ok {
		return OpenPost{}, ErrEmpty
	}
	window, pos, err := m.posts.WindowAround(post.ID, m.opts.WindowSize)
	if err != nil {
		return OpenPost{}, fmt.Errorf("window around %s: %w", post.ID, err)
	}
	return OpenPost{Window: window, Index: pos}, nil
}

func (m *Model) sync() {
	m.list.SetItems(m.posts.Items())
}

// HandleAction handles a resolved key action.
func (m *Model) HandleAction(a keymap.Action) (tea.Cmd, error) {
	switch a { //nolint:exhaustive // only gallery actions
	case keymap.ActionNextPage:
		if m.loading {
			return nil, nil
		}
		return emit(LoadPage{Section: m.section, Page: m.page + 1}), nil
	case keymap.ActionReload:
		if m.loading {
			return nil, nil
		}
		return emit(LoadPage{Section: m.section, Page: 0}), nil
	case keymap.ActionToggleNSFW:
		m.opts.AllowNSFW = !m.opts.AllowNSFW
		return emit(NSFWToggled{Allow: m.opts.AllowNSFW}), nil
	}

	res := m.list.Update(a)
	switch res.Action { //nolint:exhaustive // delete is not offered on posts
	case list.ActionMoved:
		if post, ok := m.list.Selected(); ok {
			return emit(SelectionChanged{PostID: post.ID}), nil
		}
	case list.ActionEnter:
		open, err := m.OpenSelected()
		if err != nil {
			return nil, err
		}
		return emit(open), nil
	}
	return nil, nil
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}
