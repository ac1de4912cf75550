package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/ui/action"
)

type testAction struct{ n int }

func (testAction) ActionType() string { return "test" }

func TestKey_StringRoundTrip(t *testing.T) {
	for _, name := range []string{"enter", "esc", "backspace", "up", "down", "left", "right", " ", "ctrl+c", "j", "N", "/"} {
		if got := Key(name).String(); got != name {
			t.Errorf("Key(%q).String() = %q", name, got)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;32mbold green\x1b[0m"); got != "bold green" {
		t.Errorf("StripANSI = %q", got)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[31msecond line\x1b[0m\nthird"
	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine = %q, want empty", got)
	}
}

func TestActionOf(t *testing.T) {
	cmd := func() tea.Msg { return actionMsg(testAction{n: 3}) }
	a, ok := ActionOf[testAction](cmd)
	if !ok || a.n != 3 {
		t.Errorf("ActionOf = %v, %v", a, ok)
	}

	if _, ok := ActionOf[testAction](nil); ok {
		t.Error("ActionOf(nil) should fail")
	}
}

func actionMsg(a testAction) tea.Msg {
	return action.Msg{Source: "test", Action: a}
}
