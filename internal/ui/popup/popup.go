package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/openimg/internal/ui/styles"
)

// Dialog is a bordered box with a title, a body and a hint line.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = fit content
}

// Render returns the dialog centred in a termWidth x termHeight area.
func (d Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	}
	width = min(width, termWidth-4)

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, t.S().Title.Render(d.Title)), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > width-2 {
			line = ansi.Truncate(line, width-2, "...")
		}
		lines = append(lines, line)
	}
	if d.Footer != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, t.S().Subtle.Render(d.Footer)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center places pre-rendered content in the middle of the terminal.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	padTop := max(0, (termHeight-len(lines))/2)
	padLeft := max(0, (termWidth-maxLineWidth(box))/2)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Compose draws overlay on top of base. Blank overlay lines and the leading
// spaces of each overlay line leave the base visible. ANSI sequences in both
// layers are preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		composed := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			composed += suffix
		}
		baseLines[i] = composed
	}

	return strings.Join(baseLines, "\n")
}
