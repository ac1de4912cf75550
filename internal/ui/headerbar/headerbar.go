// Package headerbar renders the top line: application title and view tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Tab is a view that can be switched to.
type Tab struct {
	Key  string
	Name string
	Mode string
}

// Tabs are the views in display order.
var Tabs = []Tab{
	{"F1", "Gallery", "gallery"},
	{"F2", "Uploads", "uploads"},
}

// Render returns the header bar for the given width. currentMode is the Mode
// of the active tab and section the gallery section shown on the right.
func Render(currentMode, section string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	parts := make([]string, 0, len(Tabs))
	for _, tab := range Tabs {
		key, name := t.S().Subtle, t.S().Muted
		if tab.Mode == currentMode {
			key = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
			name = key
		}
		parts = append(parts, key.Render(tab.Key)+" "+name.Render(tab.Name))
	}

	left := styles.AppTitle("openimg") + "  " + strings.Join(parts, t.S().Subtle.Render(" │ "))
	right := ""
	if section != "" {
		right = t.S().Muted.Render(render.Truncate(section, max(width/3, 1)))
	}
	return render.Row(left, right, width)
}
