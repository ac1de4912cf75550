package comments

// Selection tracks the single highlighted comment of a list.
type Selection struct {
	index int
}

// NewSelection returns a selection with nothing selected.
func NewSelection() Selection {
	return Selection{index: -1}
}

// Toggle selects index, or clears the selection if index was already
// selected. Returns true if index was selected before the call.
func (s *Selection) Toggle(index int) bool {
	wasSelected := s.index == index
	if wasSelected {
		s.index = -1
	} else {
		s.index = index
	}
	return wasSelected
}

// Index returns the selected index, or -1.
func (s Selection) Index() int {
	return s.index
}

// IsSelected reports whether index is the selected one.
func (s Selection) IsSelected(index int) bool {
	return s.index >= 0 && s.index == index
}

// Clear removes the selection.
func (s *Selection) Clear() {
	s.index = -1
}
