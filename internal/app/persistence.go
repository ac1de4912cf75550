package app

import (
	"github.com/llehouerou/openimg/internal/state"
)

// SaveNavigationState persists the current navigation state.
func (m *Model) SaveNavigationState() {
	g := m.Navigation.Gallery()
	nav := state.NavigationState{
		ViewMode: string(m.Navigation.ViewMode()),
		Section:  g.Section(),
		Sort:     m.Sort,
	}
	if post, ok := g.Selected(); ok {
		nav.SelectedPostID = post.ID
	} else {
		// Keep the restored selection until the gallery has loaded.
		nav.SelectedPostID = m.PendingSelectID
	}
	m.StateMgr.SaveNavigation(nav)
}
