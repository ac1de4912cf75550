// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "gallery", "post", "uploads"
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionViewGallery, []string{"f1"}, "Gallery view", "global"},
	{ActionViewUploads, []string{"f2"}, "Uploads view", "global"},
	{ActionNextView, []string{"tab"}, "Next view", "global"},
	{ActionChangeSection, []string{"/"}, "Change gallery section", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Gallery
	{ActionMoveDown, []string{"j", "down"}, "Move down", "gallery"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "gallery"},
	{ActionJumpStart, []string{"g", "home"}, "First post", "gallery"},
	{ActionJumpEnd, []string{"G", "end"}, "Last post", "gallery"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "gallery"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "gallery"},
	{ActionSelect, []string{"enter"}, "Open post", "gallery"},
	{ActionNextPage, []string{"n"}, "Load next page", "gallery"},
	{ActionReload, []string{"r"}, "Reload gallery", "gallery"},
	{ActionToggleNSFW, []string{"N"}, "Toggle NSFW thumbnails", "gallery"},

	// Post detail
	{ActionMoveLeft, []string{"h", "left"}, "Previous post", "post"},
	{ActionMoveRight, []string{"l", "right"}, "Next post", "post"},
	{ActionToggleSelect, []string{" "}, "Select comment", "post"},
	{ActionSelect, []string{"enter"}, "Open replies", "post"},
	{ActionBack, []string{"esc", "backspace"}, "Back to gallery", "post"},

	// Uploads
	{ActionSelect, []string{"enter"}, "Show link", "uploads"},
	{ActionCopyLink, []string{"y"}, "Copy link", "uploads"},
	{ActionDelete, []string{"d", "delete"}, "Delete upload", "uploads"},
	{ActionUpload, []string{"u"}, "Upload an image", "uploads"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
