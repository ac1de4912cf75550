// Package confirm provides a confirmation popup with a list of options. The
// last option always cancels.
package confirm

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/popup"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var yesNo = []string{"Yes", "No"}

// Model is a confirmation popup.
type Model struct {
	ui.Base
	title    string
	message  string
	options  []string
	selected int
	context  any
}

// New creates a yes/no confirmation.
func New(title, message string, context any) *Model {
	return NewWithOptions(title, message, yesNo, context)
}

// NewWithOptions creates a confirmation offering options. At least two
// options are expected, the last one cancels.
func NewWithOptions(title, message string, options []string, context any) *Model {
	if len(options) < 2 {
		options = yesNo
	}
	return &Model{
		title:   title,
		message: message,
		options: options,
		context: context,
	}
}

// Selected returns the highlighted option index.
func (m *Model) Selected() int {
	return m.selected
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j", "tab":
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case "enter":
		return m, m.choose(m.selected)
	case "esc", "q":
		return m, m.choose(len(m.options) - 1)
	case "y", "Y":
		if len(m.options) == len(yesNo) {
			return m, m.choose(0)
		}
	case "n", "N":
		if len(m.options) == len(yesNo) {
			return m, m.choose(1)
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.options) {
			return m, m.choose(n - 1)
		}
	}
	return m, nil
}

func (m *Model) choose(option int) tea.Cmd {
	m.selected = option
	result := Result{
		Confirmed: option < len(m.options)-1,
		Option:    option,
		Context:   m.context,
	}
	return func() tea.Msg {
		return ActionMsg(result)
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	var b strings.Builder
	b.WriteString(t.S().Title.Render(m.title))
	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(t.S().Base.Render(m.message))
	}
	b.WriteString("\n")
	for i, opt := range m.options {
		b.WriteString("\n")
		label := strconv.Itoa(i+1) + ". " + opt
		if i == m.selected {
			b.WriteString(t.S().Cursor.Render("> " + label))
		} else {
			b.WriteString(t.S().Muted.Render("  " + label))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render("↑/↓ select, Enter: confirm, Esc: cancel"))
	return b.String()
}
