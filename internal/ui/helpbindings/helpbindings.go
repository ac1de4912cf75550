// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui"
	"github.com/llehouerou/openimg/internal/ui/popup"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{"global", "gallery", "post", "uploads"}

var categoryLabels = map[string]string{
	"global":  "Global",
	"gallery": "Gallery",
	"post":    "Post",
	"uploads": "Uploads",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup showing the given binding contexts.
func New(contexts ...string) *Model {
	m := &Model{}
	m.SetContexts(contexts)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
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

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	lines := strings.Split(m.buildContent(), "\n")

	// Pad to the widest line so the box keeps its width while scrolling.
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(m.buildFooter()))
	return b.String()
}

func (m *Model) buildContent() string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			current = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		sb.WriteString("  ")
		sb.WriteString(keyStyle.Render(keys))
		sb.WriteString(strings.Repeat(" ", keyWidth-lipgloss.Width(keys)+2))
		sb.WriteString(t.S().Base.Render(b.Description))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m *Model) buildFooter() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the title, footer and dialog border.
func (m *Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m *Model) maxScroll() int {
	total := strings.Count(m.buildContent(), "\n") + 1
	return max(total-m.visibleHeight(), 0)
}
