package jobbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/openimg/internal/ui/testutil"
)

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, Height(0))
	assert.Equal(t, 3, Height(1))
	assert.Equal(t, 4, Height(2))
}

func TestState_AddRemove(t *testing.T) {
	var s State
	assert.False(t, s.HasActiveJobs())

	s.Add(Job{ID: "1", Label: "Uploading a.png"})
	s.Add(Job{ID: "2", Label: "Uploading b.png"})
	assert.Equal(t, 2, s.ActiveCount())

	assert.True(t, s.Remove("1"))
	assert.False(t, s.Remove("1"))
	assert.Equal(t, []Job{{ID: "2", Label: "Uploading b.png"}}, s.Jobs)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(State{}, 80))
}

func TestRender_Jobs(t *testing.T) {
	s := State{Jobs: []Job{
		{ID: "1", Label: "Uploading cat.png", Size: 1200000},
		{ID: "2", Label: "Uploading dog.png"},
	}}

	out := Render(s, 60)
	plain := testutil.StripANSI(out)

	assert.Contains(t, plain, "Uploading cat.png")
	assert.Contains(t, plain, "1.2 MB")
	assert.Contains(t, plain, "Uploading dog.png")
	assert.Equal(t, Height(2), strings.Count(out, "\n")+1)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}
