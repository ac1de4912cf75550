// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Gallery operations
	OpGalleryLoad    Op = "load gallery"
	OpGalleryNext    Op = "load next gallery page"
	OpSectionChange  Op = "switch gallery section"
	OpPostOpen       Op = "open post"
	OpCommentsLoad   Op = "load comments"
	OpPreferenceSave Op = "save preference"

	// Upload operations
	OpUploadsLoad  Op = "load uploads"
	OpUpload       Op = "upload image"
	OpUploadDelete Op = "delete upload"
	OpRemoteDelete Op = "delete upload on server"
	OpLinkCopy     Op = "copy link"

	// Navigation state
	OpNavigationLoad Op = "restore navigation"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
