package postview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/errmsg"
	"github.com/llehouerou/openimg/internal/gallery"
	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// View renders the post panel.
func (m Model) View() string {
	width, height := m.Width(), m.Height()
	if width < 4 || height < 4 {
		return ""
	}
	inner := width - 2
	t := styles.T()

	post, ok := m.Current()
	if !ok {
		return styles.PanelStyle(m.IsFocused()).Width(inner).Height(height - 2).
			Render(t.S().Muted.Render("No post"))
	}

	header := fmt.Sprintf("Post %d/%d · %s", m.index+1, len(m.window), post.Title)
	lines := []string{t.S().Title.Render(render.Truncate(header, inner))}
	lines = append(lines, m.renderInfo(post, inner)...)
	lines = append(lines, t.S().Subtle.Render(render.Separator(inner)))
	lines = append(lines, m.renderComments(post, inner)...)

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderInfo(p gallery.Post, width int) []string {
	t := styles.T()

	var meta []string
	if p.Account != "" {
		meta = append(meta, "by "+p.Account)
	}
	if !p.Datetime.IsZero() {
		meta = append(meta, comments.RelativeTime(p.Datetime, m.now()))
	}
	if p.IsAlbum {
		meta = append(meta, fmt.Sprintf("album of %d", p.ImageCount))
	}
	if p.NSFW {
		meta = append(meta, "NSFW")
	}

	score := ""
	if p.HasScore {
		score = t.TintStyle(p.Tint()).Render("▲ "+gallery.FormatCount(p.Ups)) + " " +
			t.S().Muted.Render("▼ "+gallery.FormatCount(p.Downs)) + " " +
			t.S().Base.Render(gallery.FormatCount(p.Points)+" pts")
	}

	return []string{
		render.Row(t.S().Muted.Render(render.Truncate(strings.Join(meta, " · "), width/2)), score, width),
		t.S().Subtle.Render(render.Truncate(p.Link, width)),
	}
}

func (m Model) renderComments(p gallery.Post, width int) []string {
	t := styles.T()

	switch {
	case m.loading:
		return []string{t.S().Muted.Render("Loading comments…")}
	case m.err != nil:
		return []string{t.S().Error.Render(render.Truncate(errmsg.Format(errmsg.OpCommentsLoad, m.err), width))}
	case len(m.threads) == 0:
		return nil
	}

	var lines []string
	if parent := m.threads[len(m.threads)-1].parent; parent != nil {
		lines = append(lines, t.S().Muted.Render(render.Truncate("Replies to "+parent.Author+" (esc to go back)", width)))
	}
	if m.list.Len() == 0 {
		return append(lines, t.S().Muted.Render("No comments"))
	}

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderComment(items[i], p.Account, i, width)...)
	}
	return lines
}

func (m Model) renderComment(c comments.Comment, op string, i, width int) []string {
	t := styles.T()

	badge := t.ScoreBadge(c.Positive(), gallery.FormatCount(c.Points))
	if c.HasReplies() {
		badge = t.S().Muted.Render(fmt.Sprintf("%d replies ", len(c.Children))) + badge
	}
	bylineWidth := max(width-lipgloss.Width(badge)-3, 1)

	marker := "  "
	if i == m.list.SelectedIndex() {
		marker = lipgloss.NewStyle().Foreground(t.Primary).Render("> ")
	}
	first := render.Row(marker+renderByline(comments.NewByline(c, op, m.now()), bylineWidth), badge, width)

	body := render.Wrap(c.Body, width-2)
	if len(body) > commentHeight-1 {
		body = body[:commentHeight-1]
		body[len(body)-1] = render.Truncate(body[len(body)-1]+" …", width-2)
	}
	for len(body) < commentHeight-1 {
		body = append(body, "")
	}

	style := t.S().Base
	if m.selection.IsSelected(i) {
		style = t.S().Selected
	}
	lines := []string{first}
	for _, l := range body {
		lines = append(lines, style.Render(render.TruncateAndPad("  "+l, width)))
	}
	return lines
}

// renderByline tints the OP marker with the positive colour.
func renderByline(b comments.Byline, width int) string {
	t := styles.T()
	text := render.Truncate(b.String(), width)
	start, end := b.OPSpan()
	if end == 0 || end > len(text) || !strings.HasPrefix(b.String(), text[:end]) {
		return t.S().Muted.Render(text)
	}
	return t.S().Muted.Render(text[:start]) +
		t.S().Positive.Bold(true).Render(text[start:end]) +
		t.S().Muted.Render(text[end:])
}
