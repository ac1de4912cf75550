package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutralGray stands in for colors that are not #rrggbb (ANSI indexes).
var neutralGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// AppTitle renders the application name bold, blended from the primary to
// the secondary accent one grapheme at a time.
func AppTitle(name string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(name)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	th := T()
	colors := blend(len(clusters), th.Primary, th.Secondary)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colors[i]).Render(cluster))
	}
	return b.String()
}

// blend returns size colors going from one end to the other in HCL space.
func blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	switch size {
	case 0:
		return nil
	case 1:
		return []lipgloss.Color{from}
	}

	c1, c2 := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, size)
	out[0], out[size-1] = from, to
	for i := 1; i < size-1; i++ {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutralGray
	}
	return col
}
