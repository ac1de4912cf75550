// Package textinput provides a single-line text input popup.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/popup"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	charLimit = 1024
	// dialogMargin is the room taken by the dialog border and padding.
	dialogMargin = 10
)

// Model is a single-line text input popup.
type Model struct {
	ui.Base
	title   string
	hint    string
	input   textinput.Model
	context any // passed through to Result action
}

// New creates an input with a title, initial text and an optional hint line
// shown under the field.
func New(title, initialText, hint string, context any) *Model {
	ti := textinput.New()
	ti.CharLimit = charLimit
	ti.Width = 50
	ti.SetValue(initialText)
	ti.Focus()

	return &Model{
		title:   title,
		hint:    hint,
		input:   ti,
		context: context,
	}
}

// Text returns the current input.
func (m *Model) Text() string {
	return m.input.Value()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if width > dialogMargin {
		m.input.Width = width - dialogMargin
	}
}

// Init implements popup.Popup. The cursor does not blink.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true, Context: ctx})
		}

	case tea.KeyEnter:
		text := m.input.Value()
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Text: text, Context: ctx})
		}

	case tea.KeyRunes:
		// Pasted control characters would otherwise become spaces.
		keyMsg.Runes = printable(keyMsg.Runes)
		if len(keyMsg.Runes) == 0 {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func printable(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if r >= ' ' {
			out = append(out, r)
		}
	}
	return out
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)

	content := title + "\n\n" + m.input.View()
	if m.hint != "" {
		content += "\n" + t.S().Muted.Render(m.hint)
	}
	return content + "\n\n" + t.S().Subtle.Render("Enter: confirm, Esc: cancel, Ctrl+U: clear")
}
