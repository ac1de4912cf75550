package ui

// Base holds the size and focus shared by views and popups.
//
//	type Model struct {
//	    ui.Base
//	    list list.Model[gallery.Post]
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the height left for rows once overhead lines are removed.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
