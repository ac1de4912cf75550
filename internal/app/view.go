package app

import (
	"strings"

	"github.com/llehouerou/openimg/internal/keymap"
	"github.com/llehouerou/openimg/internal/ui/headerbar"
	"github.com/llehouerou/openimg/internal/ui/jobbar"
	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	parts := []string{
		headerbar.Render(string(m.Navigation.ViewMode()), m.Navigation.Gallery().Section(), m.Width),
		m.Navigation.View(),
	}
	if bar := jobbar.Render(m.Jobs, m.Width); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, m.renderStatus())
	return m.Popups.RenderOverlay(strings.Join(parts, "\n"))
}

func (m Model) renderStatus() string {
	t := styles.T()
	if m.StatusMsg == "" {
		return t.S().Subtle.Render(render.Truncate(m.keyHints(), m.Width))
	}
	text := render.Truncate(render.Sanitize(m.StatusMsg, false), m.Width)
	if m.StatusIsErr {
		return t.S().Error.Render(text)
	}
	return t.S().Muted.Render(text)
}

// keyHints lists the first key of the help and quit actions.
func (m Model) keyHints() string {
	var hints []string
	for _, h := range []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	} {
		if keys := m.Keys.KeysFor(h.action); len(keys) > 0 {
			hints = append(hints, keys[0]+" "+h.label)
		}
	}
	return strings.Join(hints, " · ")
}
