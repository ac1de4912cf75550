// Package list provides a generic scrollable list component.
package list

import (
	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone   Action = iota
	ActionMoved         // cursor moved
	ActionEnter         // item activated
	ActionDelete        // delete requested on the item
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // Which item index the action applies to (-1 if none)
}

// Model is a generic scrollable list. It handles navigation and reports
// activation; the parent renders rows using VisibleRange.
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int // rows of the panel not available to items
}

// New creates a list with the given scroll margin and panel overhead.
func New[T any](margin, overhead int) Model[T] {
	return Model[T]{
		cursor:   cursor.New(margin),
		overhead: overhead,
	}
}

// SetItems replaces all items and clamps the cursor.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.height())
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index i.
func (m *Model[T]) Select(i int) {
	m.cursor.Jump(i, len(m.items), m.height())
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.height())
}

// VisibleRows returns the number of item rows that fit.
func (m Model[T]) VisibleRows() int {
	return m.height()
}

func (m Model[T]) height() int {
	return max(m.ListHeight(m.overhead), 1)
}

// Update applies a resolved key action.
func (m *Model[T]) Update(a keymap.Action) Result {
	if m.cursor.HandleAction(a, len(m.items), m.height()) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if len(m.items) == 0 {
		return Result{Index: -1}
	}
	switch a { //nolint:exhaustive // only list actions
	case keymap.ActionSelect:
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	case keymap.ActionDelete:
		return Result{Action: ActionDelete, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}
