package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Image    string
	Animated string
	Album    string
	Remote   string
}

var (
	nerdIcons = Icons{
		Image:    "\uf03e ",     // nf-fa-image
		Animated: "\uf1c8 ",     // nf-fa-file_video_o
		Album:    "\U000f024f ", // nf-md-image_multiple
		Remote:   "\uf0c2",      // nf-fa-cloud
	}

	unicodeIcons = Icons{
		Image:    "\U0001f5bc ", // framed picture
		Animated: "\U0001f39e ", // film frames
		Album:    "\U0001f5c2 ", // card index dividers
		Remote:   "\u2601",      // cloud
	}

	noneIcons = Icons{
		Image:    "",
		Animated: "",
		Album:    "",
		Remote:   "[R]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatImage formats a single image title with the appropriate icon.
func FormatImage(name string) string {
	return current.Image + name
}

// FormatAnimated formats an animated image title with the appropriate icon.
func FormatAnimated(name string) string {
	return current.Animated + name
}

// FormatAlbum formats an album title with the appropriate icon.
func FormatAlbum(name string) string {
	return current.Album + name
}

// Remote returns the marker for uploads that can be deleted on the server.
func Remote() string {
	return current.Remote
}
