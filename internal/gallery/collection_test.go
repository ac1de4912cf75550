package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_AddDropsDuplicates(t *testing.T) {
	c := NewCollection(Post{ID: "a"}, Post{ID: "b"}, Post{ID: "a", Title: "dup"})
	require.Equal(t, 2, c.Len())

	added := c.Add(Post{ID: "b"}, Post{ID: "c"}, Post{ID: "c"})
	assert.Equal(t, 1, added)
	assert.Equal(t, []Post{{ID: "a"}, {ID: "b"}, {ID: "c"}}, c.Items())
}

func TestCollection_ZeroValueUsable(t *testing.T) {
	var c Collection[Post]
	assert.Equal(t, 1, c.Add(Post{ID: "x"}))
	assert.True(t, c.Contains("x"))
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection(Post{ID: "a"}, Post{ID: "b"}, Post{ID: "c"})

	assert.True(t, c.Remove("b"))
	assert.Equal(t, []Post{{ID: "a"}, {ID: "c"}}, c.Items())
	assert.False(t, c.Contains("b"))

	assert.False(t, c.Remove("b"), "second removal finds nothing")
	assert.False(t, c.Remove("missing"))
	assert.Equal(t, 2, c.Len())

	// A removed id can be added again.
	assert.Equal(t, 1, c.Add(Post{ID: "b"}))
	assert.Equal(t, 2, c.Index("b"))
}

func TestCollection_IndexAndAt(t *testing.T) {
	c := NewCollection(Post{ID: "a"}, Post{ID: "b"})

	assert.Equal(t, 1, c.Index("b"))
	assert.Equal(t, -1, c.Index("z"))

	p, ok := c.At(0)
	assert.True(t, ok)
	assert.Equal(t, "a", p.ID)

	_, ok = c.At(2)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}

func TestCollection_ItemsIsACopy(t *testing.T) {
	c := NewCollection(Post{ID: "a"})
	items := c.Items()
	items[0].ID = "mutated"

	p, _ := c.At(0)
	assert.Equal(t, "a", p.ID)
}

func TestCollection_Clear(t *testing.T) {
	c := NewCollection(Post{ID: "a"}, Post{ID: "b"})
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 1, c.Add(Post{ID: "a"}))
}

func TestCollection_WindowAround(t *testing.T) {
	c := NewCollection(makePosts(500)...)

	tests := []struct {
		id        string
		size      int
		wantFirst string
		wantLen   int
		wantPos   int
	}{
		{"p0", 200, "p0", 100, 0},
		{"p250", 200, "p150", 200, 100},
		{"p499", 200, "p399", 101, 100},
		{"p10", 50, "p0", 35, 10},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, pos, err := c.WindowAround(tt.id, tt.size)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0].ID)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.id, got[pos].ID)
		})
	}
}

func TestCollection_WindowAroundInvalid(t *testing.T) {
	c := NewCollection(makePosts(5)...)

	_, _, err := c.WindowAround("missing", 200)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = c.WindowAround("p1", 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
