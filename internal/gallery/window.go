// Package gallery holds the gallery item model and the windowed retrieval used
// to hand a bounded slice of posts to the detail view.
package gallery

import (
	"errors"
	"fmt"
	"slices"
)

// MaxItems is the largest window handed to the detail view.
const MaxItems = 200

// ErrInvalidArgument is returned when a window is requested with an index
// outside the collection or a non-positive size.
var ErrInvalidArgument = errors.New("invalid argument")

// Window returns a copy of at most maxSize items around center.
// Up to maxSize/2 items are taken before center and the slice ends at most
// maxSize/2 items after it; both ends are clamped to the bounds of items.
// The result never shares backing storage with items.
func Window[T any](items []T, center, maxSize int) ([]T, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidArgument, maxSize)
	}
	if center < 0 || center >= len(items) {
		return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidArgument, center, len(items))
	}

	half := maxSize / 2
	start := 0
	if center-half >= 0 {
		start = center - half
	}
	end := min(len(items), center+half)

	return slices.Clone(items[start:end]), nil
}
