package app

import (
	"log"
	"path/filepath"

	"github.com/llehouerou/openimg/internal/notify"
)

// sendUploadNotification reports a finished upload on the desktop.
// Uploads can take a while, so the user may have switched away.
func (m *Model) sendUploadNotification(msg UploadDoneMsg) {
	if m.notifier == nil || m.notificationsConfig.Enabled == nil || !*m.notificationsConfig.Enabled {
		return
	}

	name := filepath.Base(msg.Path)
	timeout := int32(m.notificationsConfig.Timeout) //nolint:gosec // bounded by config

	n := notify.UploadFinished(name, msg.Upload.URL, timeout)
	if msg.Err != nil {
		n = notify.UploadFailed(name, msg.Err, timeout)
	}

	if _, err := m.notifier.Notify(n); err != nil {
		log.Printf("app: upload notification: %v", err)
	}
}
