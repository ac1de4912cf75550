package cursor

import (
	"testing"

	"github.com/llehouerou/openimg/internal/keymap"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"move down within bounds no scroll", 2, 0, 1, 10, 5, 1, 0},
		{"move down triggers scroll with margin", 2, 0, 3, 10, 5, 3, 1},
		{"move up clamps to 0", 2, 2, -5, 10, 5, 0, 0},
		{"move down clamps to len-1", 2, 0, 50, 10, 5, 9, 5},
		{"short list never scrolls", 2, 0, 3, 4, 10, 3, 0},
		{"margin larger than viewport", 5, 0, 2, 10, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.Move(3, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestJump_ScrollsBackUp(t *testing.T) {
	c := New(1)
	c.Jump(9, 10, 4)
	if c.Offset() != 6 {
		t.Fatalf("Offset() = %d, want 6", c.Offset())
	}
	c.Jump(2, 10, 4)
	if c.Offset() != 1 {
		t.Errorf("Offset() = %d, want 1", c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(8, 10, 5)

	if !c.ClampToBounds(4, 5) {
		t.Error("ClampToBounds should report a change")
	}
	if c.Pos() != 3 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 3/0", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(4, 5) {
		t.Error("second ClampToBounds should be a no-op")
	}
	c.ClampToBounds(0, 5)
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0 on empty list", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty list range = [%d,%d)", s, e)
	}
	if s, e := c.VisibleRange(3, 5); s != 0 || e != 3 {
		t.Errorf("short list range = [%d,%d), want [0,3)", s, e)
	}
	c.Jump(7, 10, 5)
	if s, e := c.VisibleRange(10, 5); s != 3 || e != 8 {
		t.Errorf("range = [%d,%d), want [3,8)", s, e)
	}
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		action  keymap.Action
		start   int
		handled bool
		wantPos int
	}{
		{keymap.ActionMoveDown, 0, true, 1},
		{keymap.ActionMoveUp, 3, true, 2},
		{keymap.ActionJumpStart, 5, true, 0},
		{keymap.ActionJumpEnd, 0, true, 19},
		{keymap.ActionPageDown, 0, true, 4},
		{keymap.ActionPageUp, 10, true, 6},
		{keymap.ActionSelect, 3, false, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			c := New(1)
			c.Jump(tt.start, 20, 5)
			if got := c.HandleAction(tt.action, 20, 5); got != tt.handled {
				t.Errorf("HandleAction() = %v, want %v", got, tt.handled)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}
