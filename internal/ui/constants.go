// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the views.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is the vertical space of a panel not available to rows.
	PanelOverhead = BorderHeight + HeaderHeight

	// StatusHeight is the status line under the views.
	StatusHeight = 1

	// GalleryRowHeight is the number of lines per post in the gallery list.
	GalleryRowHeight = 2
)
