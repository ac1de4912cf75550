// Package action defines how views report user intents to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an intent emitted by a view or popup. ActionType names it in
// logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it.
type Msg struct {
	Source string // "gallerygrid", "postview", "uploadsview", "confirm", "textinput"
	Action Action
}

var _ tea.Msg = Msg{}
