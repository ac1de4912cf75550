package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the current view. It receives all
// key messages while shown and reports its outcome as an action.Msg.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without border or centering.
	View() string
	SetSize(width, height int)
}
