// Package jobbar displays uploads in flight at the bottom of the screen.
package jobbar

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/openimg/internal/ui/render"
	"github.com/llehouerou/openimg/internal/ui/styles"
)

// BorderHeight is the height of borders around the job bar.
const BorderHeight = 2

// Height returns the total height for the given number of active jobs.
func Height(activeCount int) int {
	if activeCount == 0 {
		return 0
	}
	return activeCount + BorderHeight
}

// Job is a single upload in flight.
type Job struct {
	ID    string
	Label string
	Size  int64 // bytes, 0 if unknown
}

// State holds the jobs to display.
type State struct {
	Jobs []Job
}

// Add appends a job.
func (s *State) Add(job Job) {
	s.Jobs = append(s.Jobs, job)
}

// Remove drops the job with the given id.
// Returns true if a job was removed.
func (s *State) Remove(id string) bool {
	i := slices.IndexFunc(s.Jobs, func(j Job) bool { return j.ID == id })
	if i < 0 {
		return false
	}
	s.Jobs = slices.Delete(s.Jobs, i, i+1)
	return true
}

// ActiveCount returns the number of jobs.
func (s State) ActiveCount() int {
	return len(s.Jobs)
}

// HasActiveJobs returns true if there is at least one job.
func (s State) HasActiveJobs() bool {
	return len(s.Jobs) > 0
}

func labelStyle() lipgloss.Style {
	return styles.T().S().Title
}

func sizeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func indicatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

// Render renders the job bar with the given width.
// Returns empty string if there are no active jobs.
func Render(state State, width int) string {
	if !state.HasActiveJobs() {
		return ""
	}

	innerWidth := width - 2 // account for borders

	lines := make([]string, 0, len(state.Jobs))
	for _, job := range state.Jobs {
		lines = append(lines, renderJobLine(job, innerWidth))
	}

	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

// renderJobLine renders: "◦ Uploading cat.png              1.2 MB"
func renderJobLine(job Job, width int) string {
	var size string
	if job.Size > 0 {
		size = humanize.Bytes(uint64(job.Size))
	}

	indicatorWidth := 2 // "◦ "
	spacing := 2
	labelWidth := max(width-indicatorWidth-spacing-lipgloss.Width(size), 10)

	var b strings.Builder
	b.WriteString(indicatorStyle().Render("◦"))
	b.WriteString(" ")
	b.WriteString(labelStyle().Render(render.TruncateAndPad(render.Sanitize(job.Label, false), labelWidth)))
	if size != "" {
		b.WriteString("  ")
		b.WriteString(sizeStyle().Render(size))
	}
	return b.String()
}
