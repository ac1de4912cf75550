// Package popupctl manages the modal popups drawn over the views.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/ui/confirm"
	"github.com/llehouerou/openimg/internal/ui/helpbindings"
	"github.com/llehouerou/openimg/internal/ui/popup"
	"github.com/llehouerou/openimg/internal/ui/textinput"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups    map[Type]popup.Popup
	inputMode InputMode
	link      string
	errorMsg  string
	width     int
	height    int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Link:
		return p.link != ""
	case TextInput:
		return p.inputMode != InputNone && p.popups[t] != nil
	case Help, Confirm:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Link:
		p.link = ""
	case TextInput:
		p.inputMode = InputNone
		delete(p.popups, t)
	case Help, Confirm:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp displays the key bindings of the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	return p.Show(Help, helpbindings.New(contexts...))
}

// ShowConfirmWithOptions displays a confirmation dialog. The last option
// cancels.
func (p *Manager) ShowConfirmWithOptions(title, message string, options []string, context any) tea.Cmd {
	return p.Show(Confirm, confirm.NewWithOptions(title, message, options, context))
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(mode InputMode, title, value, hint string) tea.Cmd {
	p.inputMode = mode
	return p.Show(TextInput, textinput.New(title, value, hint, mode))
}

// ShowLink displays a link until any key is pressed.
func (p *Manager) ShowLink(url string) {
	p.link = url
}

// ShowError displays an error message until any key is pressed.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// InputMode returns the current input mode.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	switch active {
	case None:
		return false, nil
	case Error, Link:
		// Dismiss on any key
		p.Hide(active)
		return true, nil
	case Help, Confirm, TextInput:
	}

	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		var box string
		switch t {
		case Error:
			box = popup.Dialog{
				Title:   "Error",
				Content: p.errorMsg,
				Footer:  "Press any key to dismiss",
			}.Render(p.width, p.height)
		case Link:
			box = popup.Dialog{
				Title:   "Link",
				Content: p.link,
				Footer:  "y in the list copies it · any key closes",
			}.Render(p.width, p.height)
		default:
			box = popup.Dialog{Content: p.popups[t].View()}.Render(p.width, p.height)
		}
		base = popup.Compose(base, box, p.width)
	}
	return base
}
