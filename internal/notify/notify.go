// Package notify provides desktop notifications via D-Bus.
package notify

import "fmt"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const appName = "openimg"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // freedesktop category hint, optional
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// UploadFinished describes a finished upload. The link is the body so it
// can be copied from the notification centre.
func UploadFinished(name, link string, timeout int32) Notification {
	return Notification{
		Title:    "Uploaded " + name,
		Body:     link,
		Icon:     "image-x-generic",
		Timeout:  timeout,
		Urgency:  UrgencyLow,
		Category: "transfer.complete",
	}
}

// UploadFailed describes a failed upload.
func UploadFailed(name string, err error, timeout int32) Notification {
	return Notification{
		Title:    "Upload of " + name + " failed",
		Body:     fmt.Sprint(err),
		Icon:     "dialog-error",
		Timeout:  timeout,
		Urgency:  UrgencyNormal,
		Category: "transfer.error",
	}
}
