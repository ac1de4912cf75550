// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionBack          Action = "back"
	ActionChangeSection Action = "change_section" // /

	// View switching
	ActionViewGallery Action = "view_gallery"
	ActionViewUploads Action = "view_uploads"
	ActionNextView    Action = "next_view"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect       Action = "select"        // enter - open post / show link
	ActionToggleSelect Action = "toggle_select" // space - select comment

	// Gallery actions
	ActionNextPage   Action = "next_page"   // n
	ActionReload     Action = "reload"      // r
	ActionToggleNSFW Action = "toggle_nsfw" // N

	// Upload actions
	ActionCopyLink Action = "copy_link" // y
	ActionDelete   Action = "delete"    // d/delete
	ActionUpload   Action = "upload"    // u
)
