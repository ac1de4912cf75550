// Package navctl tracks which view is shown and owns the view models.
package navctl

// ViewMode represents the top-level view.
type ViewMode string

const (
	// ViewGallery shows the gallery, or the open post on top of it.
	ViewGallery ViewMode = "gallery"
	// ViewUploads shows the local uploads.
	ViewUploads ViewMode = "uploads"
)

// Modes lists the view modes in tab order.
var Modes = []ViewMode{ViewGallery, ViewUploads}

// ParseViewMode returns the mode named s, or ViewGallery when unknown.
func ParseViewMode(s string) ViewMode {
	for _, m := range Modes {
		if string(m) == s {
			return m
		}
	}
	return ViewGallery
}
