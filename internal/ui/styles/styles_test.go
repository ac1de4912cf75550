package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/openimg/internal/gallery"
)

func TestTintStyle(t *testing.T) {
	th := T()
	assert.Equal(t, th.Positive, th.TintStyle(gallery.TintPositive).GetForeground())
	assert.Equal(t, th.Negative, th.TintStyle(gallery.TintNegative).GetForeground())
	assert.Equal(t, th.FgMuted, th.TintStyle(gallery.TintNeutral).GetForeground())
}

func TestScoreBadge_ContainsLabel(t *testing.T) {
	assert.Contains(t, T().ScoreBadge(true, "12 pts"), "12 pts")
	assert.Contains(t, T().ScoreBadge(false, "-3 pts"), "-3 pts")
}

func TestBlend(t *testing.T) {
	colors := blend(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))
	assert.Len(t, colors, 5)
	assert.Equal(t, lipgloss.Color("#000000"), colors[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), colors[4])

	assert.Equal(t, []lipgloss.Color{"#000000"}, blend(1, lipgloss.Color("#000000"), lipgloss.Color("#ffffff")))
	assert.Empty(t, blend(0, lipgloss.Color("#000000"), lipgloss.Color("#ffffff")))
}

func TestBlend_NonHexFallsBackToGray(t *testing.T) {
	assert.Equal(t, neutralGray, parseHex(lipgloss.Color("12")))

	colors := blend(3, lipgloss.Color("12"), lipgloss.Color("12"))
	assert.Equal(t, []lipgloss.Color{
		"12",
		lipgloss.Color(neutralGray.BlendHcl(neutralGray, 0.5).Clamped().Hex()),
		"12",
	}, colors)
}

func TestBlend_KeepsEndpoints(t *testing.T) {
	from, to := lipgloss.Color("#7d56f4"), lipgloss.Color("#04b575")
	colors := blend(4, from, to)
	assert.Equal(t, from, colors[0])
	assert.Equal(t, to, colors[3])
	assert.NotEqual(t, from, colors[1])
}

func TestAppTitle(t *testing.T) {
	assert.Empty(t, AppTitle(""))
	assert.Contains(t, ansi.Strip(AppTitle("openimg")), "openimg")
}
