// Package postview shows one post of a gallery window with its comments and
// pages through the neighbouring posts.
package postview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/action"
	"github.com/llehouerou/openimg/internal/ui/list"
)

const (
	// infoHeight is the post summary above the comments.
	infoHeight = 3
	// commentHeight is byline plus two body lines.
	commentHeight = 3
)

// thread is one level of the comment tree being browsed.
type thread struct {
	parent   *comments.Comment // nil for the top level
	comments []comments.Comment
	cursor   int
}

// Model is the post detail view.
type Model struct {
	ui.Base
	window    []gallery.Post
	index     int
	threads   []thread
	list      list.Model[comments.Comment]
	selection comments.Selection
	loading   bool
	err       error
	now       func() time.Time
}

// New creates a view on window[index]. The window is owned by the view.
func New(window []gallery.Post, index int) Model {
	index = max(0, min(index, len(window)-1))
	return Model{
		window:    window,
		index:     index,
		list:      list.New[comments.Comment](1, 0),
		selection: comments.NewSelection(),
		now:       time.Now,
	}
}

// Init requests the comments of the first post shown.
func (m *Model) Init() tea.Cmd {
	return m.loadCurrent()
}

// Current returns the post shown.
func (m Model) Current() (gallery.Post, bool) {
	if m.index < 0 || m.index >= len(m.window) {
		return gallery.Post{}, false
	}
	return m.window[m.index], true
}

// Position returns the index of the shown post and the window size.
func (m Model) Position() (index, total int) {
	return m.index, len(m.window)
}

// Loading reports whether comments are being fetched.
func (m Model) Loading() bool {
	return m.loading
}

// Selection returns the selected comment index, -1 for none.
func (m Model) Selection() int {
	return m.selection.Index()
}

// SetSize sets the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	rows := max(height-ui.PanelOverhead-infoHeight, 0) / commentHeight
	m.list.SetSize(width, rows)
}

// SetComments shows the comments of postID. Responses for a post that is no
// longer shown are dropped.
func (m *Model) SetComments(postID string, all []comments.Comment) {
	if post, ok := m.Current(); !ok || post.ID != postID {
		return
	}
	m.loading = false
	m.err = nil
	m.threads = []thread{{comments: distinct(comments.TopLevel(all))}}
	m.showThread()
}

// SetCommentsError records a failed comments request for postID.
func (m *Model) SetCommentsError(postID string, err error) {
	if post, ok := m.Current(); !ok || post.ID != postID {
		return
	}
	m.loading = false
	m.err = err
}

func (m *Model) showThread() {
	top := m.threads[len(m.threads)-1]
	m.list.SetItems(top.comments)
	m.list.Select(top.cursor)
	m.selection.Clear()
}

func (m *Model) loadCurrent() tea.Cmd {
	post, ok := m.Current()
	if !ok {
		return nil
	}
	m.loading = true
	m.err = nil
	m.threads = nil
	m.list.SetItems(nil)
	m.selection.Clear()
	return tea.Batch(
		emit(LoadComments{PostID: post.ID}),
		emit(PostChanged{PostID: post.ID}),
	)
}

// HandleAction handles a resolved key action.
func (m *Model) HandleAction(a keymap.Action) tea.Cmd {
	switch a { //nolint:exhaustive // only post view actions
	case keymap.ActionMoveLeft:
		return m.page(-1)
	case keymap.ActionMoveRight:
		return m.page(1)
	case keymap.ActionToggleSelect:
		if m.list.Len() > 0 {
			m.selection.Toggle(m.list.SelectedIndex())
		}
		return nil
	case keymap.ActionBack:
		if len(m.threads) > 1 {
			m.threads = m.threads[:len(m.threads)-1]
			m.showThread()
			return nil
		}
		return emit(Close{})
	}

	if res := m.list.Update(a); res.Action == list.ActionEnter {
		m.openReplies(res.Index)
	}
	return nil
}

// openReplies descends into the replies of the comment at index i.
func (m *Model) openReplies(i int) {
	c, ok := m.list.Selected()
	if !ok || !c.HasReplies() {
		return
	}
	m.threads[len(m.threads)-1].cursor = i
	m.threads = append(m.threads, thread{parent: &c, comments: distinct(c.Children)})
	m.showThread()
}

// distinct drops comments repeated by id, keeping the first.
func distinct(cs []comments.Comment) []comments.Comment {
	return gallery.NewCollection(cs...).Items()
}

// page moves delta posts through the window. Paging stops at both ends.
func (m *Model) page(delta int) tea.Cmd {
	next := m.index + delta
	if next < 0 || next >= len(m.window) {
		return nil
	}
	m.index = next
	return m.loadCurrent()
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}
