// Package render provides text rendering helpers for rows and comment bodies.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from text returned by
// the API, and turns newlines into spaces unless keepNewlines is set.
func Sanitize(s string, keepNewlines bool) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && keepNewlines:
			return r
		case r == '\n', r == '\t', r == '\u00a0':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate shortens a single-line string to maxWidth columns, adding an
// ellipsis when it was cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s, false), maxWidth, "…")
}

// TruncateAndPad truncates then pads s to exactly width columns.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Wrap breaks text into lines of at most width columns, splitting on spaces
// and hard-cutting words that are longer than a line. Paragraph breaks are
// kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for paragraph := range strings.SplitSeq(Sanitize(s, true), "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Row joins left and right aligned content into a line of width columns.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
