package uploadsview

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/openimg/internal/icons"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

const emptyMessage = "No uploads yet. Press u to upload an image."

// View renders the uploads panel.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width < 4 || height < 4 {
		return ""
	}
	inner := width - 2
	t := styles.T()

	lines := []string{
		t.S().Title.Render(render.Truncate(fmt.Sprintf("Uploads · %d", m.list.Len()), inner)),
		t.S().Subtle.Render(render.Separator(inner)),
	}

	if m.list.Len() == 0 {
		lines = append(lines, t.S().Muted.Render(render.Truncate(emptyMessage, inner)))
	}

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(items[i], i == m.list.SelectedIndex(), inner))
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(u state.Upload, selected bool, width int) string {
	t := styles.T()

	kind := "photo"
	if u.IsAlbum {
		kind = "album"
	}
	right := kind + " · " + humanize.RelTime(u.CreatedAt, m.now(), "ago", "from now")
	if u.DeleteHash == "" {
		right = "local only · " + right
	} else if r := icons.Remote(); r != "" {
		right = r + " " + right
	}
	right = t.S().Muted.Render(right)

	url := render.TruncateAndPad(u.URL, max(width/2, 1))
	if selected {
		url = t.S().Cursor.Render(url)
	} else {
		url = t.S().Base.Render(url)
	}
	return render.Row(url, right, width)
}
