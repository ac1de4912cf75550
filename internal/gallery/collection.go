package gallery

import (
	"fmt"
	"slices"
)

// Item is anything with a stable identifier that can live in a Collection.
type Item interface {
	ItemID() string
}

// Collection is an ordered list of items with no two items sharing an id.
// It is not safe for concurrent use.
type Collection[T Item] struct {
	items []T
	ids   map[string]struct{}
}

// NewCollection creates a collection holding items, dropping duplicates.
func NewCollection[T Item](items ...T) *Collection[T] {
	c := &Collection[T]{ids: make(map[string]struct{}, len(items))}
	c.Add(items...)
	return c
}

// Add appends items whose id is not already present and returns how many
// were added.
func (c *Collection[T]) Add(items ...T) int {
	if c.ids == nil {
		c.ids = make(map[string]struct{}, len(items))
	}
	added := 0
	for _, item := range items {
		id := item.ItemID()
		if _, ok := c.ids[id]; ok {
			continue
		}
		c.ids[id] = struct{}{}
		c.items = append(c.items, item)
		added++
	}
	return added
}

// Remove deletes the first item with the given id.
// Returns true if an item was removed.
func (c *Collection[T]) Remove(id string) bool {
	for i, item := range c.items {
		if item.ItemID() == id {
			c.items = slices.Delete(c.items, i, i+1)
			delete(c.ids, id)
			return true
		}
	}
	return false
}

// Contains reports whether an item with the given id is present.
func (c *Collection[T]) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Index returns the position of the item with the given id, or -1.
func (c *Collection[T]) Index(id string) int {
	if !c.Contains(id) {
		return -1
	}
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.ItemID() == id
	})
}

// At returns the item at position i.
func (c *Collection[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in order.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Clear removes every item.
func (c *Collection[T]) Clear() {
	c.items = nil
	c.ids = make(map[string]struct{})
}

// WindowAround returns the window of at most maxSize items centred on the
// item with the given id, along with the item's position inside it.
func (c *Collection[T]) WindowAround(id string, maxSize int) ([]T, int, error) {
	if maxSize < 2 {
		return nil, 0, fmt.Errorf("%w: window size %d cannot hold its centre", ErrInvalidArgument, maxSize)
	}
	center := c.Index(id)
	if center < 0 {
		return nil, 0, fmt.Errorf("%w: unknown item %q", ErrInvalidArgument, id)
	}
	window, err := Window(c.items, center, maxSize)
	if err != nil {
		return nil, 0, err
	}
	start := max(center-maxSize/2, 0)
	return window, center - start, nil
}
