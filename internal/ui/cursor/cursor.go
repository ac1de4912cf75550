// Package cursor provides the cursor and scroll offset shared by list views.
package cursor

import "github.com/llehouerou/openimg/internal/keymap"

// Cursor tracks the selected row and the first visible row of a scrollable
// list. The list length and viewport height are passed to each call since
// both change while the list is shown (pages appended, terminal resized).
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// ClampToBounds keeps the cursor inside a list that shrank. It reports
// whether the position changed.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	old := c.pos
	c.Jump(c.pos, listLen, height)
	return c.pos != old
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the rows to render, [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor back to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleAction applies a navigation action and reports whether it was one.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	switch a { //nolint:exhaustive // only navigation actions
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Jump(0, listLen, height)
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height-1, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height-1, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
