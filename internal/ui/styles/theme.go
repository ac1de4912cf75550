package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/openimg/internal/gallery"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Green - focused items, active tab
	Secondary lipgloss.Color // Teal - secondary accent, gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Titles, comment bodies
	FgMuted  lipgloss.Color // Bylines, urls
	FgSubtle lipgloss.Color // Placeholders, hints

	// Backgrounds
	BgBase     lipgloss.Color // Panel backgrounds
	BgCursor   lipgloss.Color // Cursor highlight
	BgSelected lipgloss.Color // Selected comment

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Vote colors
	Positive lipgloss.Color // Upvoted, favourited, OP marker, positive score
	Negative lipgloss.Color // Downvoted, negative score

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Cursor   lipgloss.Style // Cursor background highlight
	Selected lipgloss.Style // Selected comment background
	Positive lipgloss.Style
	Negative lipgloss.Style
	Badge    lipgloss.Style // Score badge, colour set per score
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#1bb76e"),
	Secondary: lipgloss.Color("#2cd3e1"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	// Backgrounds
	BgBase:     lipgloss.Color("#1a1a1a"),
	BgCursor:   lipgloss.Color("#303030"),
	BgSelected: lipgloss.Color("#24382c"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#1bb76e"),

	// Votes
	Positive: lipgloss.Color("#85bf25"),
	Negative: lipgloss.Color("#ee4444"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Selected: lipgloss.NewStyle().
			Background(t.BgSelected).
			Foreground(t.FgBase),
		Positive: lipgloss.NewStyle().Foreground(t.Positive),
		Negative: lipgloss.NewStyle().Foreground(t.Negative),
		Badge: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Bold(true).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// TintStyle returns the style used for a post's like count.
func (t *Theme) TintStyle(tint gallery.Tint) lipgloss.Style {
	switch tint {
	case gallery.TintPositive:
		return t.S().Positive
	case gallery.TintNegative:
		return t.S().Negative
	default:
		return t.S().Muted
	}
}

// ScoreBadge renders a comment score as a coloured badge.
func (t *Theme) ScoreBadge(positive bool, label string) string {
	bg := t.Positive
	if !positive {
		bg = t.Negative
	}
	return t.S().Badge.Background(bg).Render(label)
}
