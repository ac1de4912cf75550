package gallerygrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/icons"
	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

const nsfwPlaceholder = "[NSFW thumbnail hidden, N to show]"

// View renders the gallery panel.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width < 4 || height < 4 {
		return ""
	}
	t := styles.T()
	inner := width - 2

	header := fmt.Sprintf("Gallery · %s · page %d · %d posts", m.section, m.page+1, m.posts.Len())
	if m.loading {
		header += " · loading…"
	}
	lines := []string{
		t.S().Title.Render(render.Truncate(header, inner)),
		t.S().Subtle.Render(render.Separator(inner)),
	}

	if m.posts.Len() == 0 {
		msg := "No posts. Press r to reload."
		if m.loading {
			msg = "Loading…"
		}
		lines = append(lines, t.S().Muted.Render(msg))
	}

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderPost(items[i], i == m.list.SelectedIndex(), inner)...)
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderPost(p gallery.Post, selected bool, width int) []string {
	t := styles.T()

	counters := renderCounters(p)
	title := render.TruncateAndPad(postTitle(p), max(width-lipgloss.Width(counters)-1, 1))
	if selected {
		title = t.S().Cursor.Render(title)
	} else {
		title = t.S().Base.Render(title)
	}
	first := render.Row(title, counters, width)

	thumb := p.Thumbnail(m.opts.ThumbnailSize, m.opts.AllowNSFW)
	detail := thumb.URL
	if thumb.Hidden {
		detail = nsfwPlaceholder
	}
	if p.IsAlbum {
		detail = fmt.Sprintf("album · %d images · %s", p.ImageCount, detail)
	}
	second := t.S().Muted.Render(render.TruncateAndPad("  "+detail, width))

	return []string{first, second}
}

func postTitle(p gallery.Post) string {
	switch {
	case p.IsAlbum:
		return icons.FormatAlbum(p.Title)
	case p.IsGIF():
		return icons.FormatAnimated(p.Title)
	default:
		return icons.FormatImage(p.Title)
	}
}

// renderCounters shows ups, downs and comments. Scores are unknown for some
// posts, their counters are left out.
func renderCounters(p gallery.Post) string {
	t := styles.T()
	var parts []string
	if p.HasScore {
		parts = append(parts,
			t.TintStyle(p.Tint()).Render("▲ "+gallery.FormatCount(p.Ups)),
			t.S().Muted.Render("▼ "+gallery.FormatCount(p.Downs)),
		)
	}
	if p.CommentCount > 0 {
		parts = append(parts, t.S().Muted.Render("✉ "+gallery.FormatCount(p.CommentCount)))
	}
	return strings.Join(parts, " ")
}
