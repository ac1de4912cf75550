package comments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", now, "moments ago"},
		{"thirty seconds ago", now.Add(-30 * time.Second), "moments ago"},
		{"exactly one minute ago", now.Add(-time.Minute), "moments ago"},
		{"five minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"three hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"two days ago", now.Add(-48 * time.Hour), "2 days ago"},
		{"older than a week", time.Date(2023, time.December, 24, 8, 0, 0, 0, time.UTC), "Dec 24, 2023"},
		{"in the future", now.Add(3 * time.Hour), "3 hours from now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.t, now))
		})
	}
}

func TestNewByline(t *testing.T) {
	c := Comment{Author: "kenny", Date: now.Add(-10 * time.Second)}

	tests := []struct {
		name     string
		op       string
		want     string
		wantOP   bool
		wantSpan [2]int
	}{
		{"author is op", "kenny", "kenny OP: moments ago", true, [2]int{6, 8}},
		{"other op", "someone", "kenny: moments ago", false, [2]int{0, 0}},
		{"no op known", "", "kenny: moments ago", false, [2]int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewByline(c, tt.op, now)
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, tt.wantOP, b.OP)

			start, end := b.OPSpan()
			assert.Equal(t, tt.wantSpan, [2]int{start, end})
			if b.OP {
				assert.Equal(t, "OP", b.String()[start:end])
			}
		})
	}
}

func TestByline_EmptyAuthorNeverOP(t *testing.T) {
	b := NewByline(Comment{Author: "", Date: now}, "", now)
	assert.False(t, b.OP)
	assert.Equal(t, ": moments ago", b.String())
}
