package app

import (
	"errors"
	"testing"

	"github.com/llehouerou/openimg/internal/config"
	"github.com/llehouerou/openimg/internal/notify"
	"github.com/llehouerou/openimg/internal/state"
)

// mockNotifier records notifications for testing.
type mockNotifier struct {
	notifications []notify.Notification
	lastID        uint32
	err           error
}

func (m *mockNotifier) Notify(n notify.Notification) (uint32, error) {
	m.lastID++
	m.notifications = append(m.notifications, n)
	return m.lastID, m.err
}

func (m *mockNotifier) Close(_ uint32) error {
	return nil
}

func notifyModel(mock *mockNotifier, enabled bool) *Model {
	return &Model{
		notifier: mock,
		notificationsConfig: config.NotificationsConfig{
			Enabled: &enabled,
			Timeout: 5000,
		},
	}
}

func TestSendUploadNotification(t *testing.T) {
	mock := &mockNotifier{}
	m := notifyModel(mock, true)

	m.sendUploadNotification(UploadDoneMsg{
		Path:   "/home/me/pictures/cat.png",
		Upload: state.Upload{URL: "https://i.imgur.com/new.png"},
	})

	if len(mock.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mock.notifications))
	}
	n := mock.notifications[0]
	if n.Title != "Uploaded cat.png" {
		t.Errorf("Title = %q, want %q", n.Title, "Uploaded cat.png")
	}
	if n.Body != "https://i.imgur.com/new.png" {
		t.Errorf("Body = %q, want the link", n.Body)
	}
	if n.Timeout != 5000 {
		t.Errorf("Timeout = %d, want 5000", n.Timeout)
	}
}

func TestSendUploadNotification_Failure(t *testing.T) {
	mock := &mockNotifier{}
	m := notifyModel(mock, true)

	m.sendUploadNotification(UploadDoneMsg{Path: "/tmp/cat.png", Err: errors.New("status 400")})

	if len(mock.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mock.notifications))
	}
	if got := mock.notifications[0].Title; got != "Upload of cat.png failed" {
		t.Errorf("Title = %q", got)
	}
	if got := mock.notifications[0].Urgency; got != notify.UrgencyNormal {
		t.Errorf("Urgency = %d, want UrgencyNormal", got)
	}
}

func TestSendUploadNotification_Disabled(t *testing.T) {
	mock := &mockNotifier{}
	m := notifyModel(mock, false)

	m.sendUploadNotification(UploadDoneMsg{Path: "/tmp/cat.png"})

	if len(mock.notifications) != 0 {
		t.Errorf("expected no notifications, got %d", len(mock.notifications))
	}
}

func TestSendUploadNotification_NilNotifier(t *testing.T) {
	enabled := true
	m := &Model{notificationsConfig: config.NotificationsConfig{Enabled: &enabled}}

	// Must not panic.
	m.sendUploadNotification(UploadDoneMsg{Path: "/tmp/cat.png"})
}

func TestSendUploadNotification_NotifierError(t *testing.T) {
	mock := &mockNotifier{err: errors.New("no session bus")}
	m := notifyModel(mock, true)

	m.sendUploadNotification(UploadDoneMsg{Path: "/tmp/cat.png"})

	if len(mock.notifications) != 1 {
		t.Errorf("expected the notification to be attempted once, got %d", len(mock.notifications))
	}
}

func TestUploadDone_SendsNotification(t *testing.T) {
	f := newFixture()
	mock := &mockNotifier{}
	m := New(Deps{
		Config:   &config.Config{API: config.APIConfig{ClientID: "id"}},
		State:    f.state,
		API:      f.api,
		Uploads:  f.uploads,
		Notifier: mock,
	})

	m, _ = update(m, UploadDoneMsg{Path: "/tmp/cat.png", Upload: state.Upload{URL: "https://i.imgur.com/new.png"}})

	if len(mock.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mock.notifications))
	}
	if m.StatusMsg != "Uploaded https://i.imgur.com/new.png" {
		t.Errorf("StatusMsg = %q", m.StatusMsg)
	}
}
