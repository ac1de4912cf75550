//go:build linux

package notify

import (
	"errors"
	"os"
	"testing"
)

func TestHints(t *testing.T) {
	h := hints(UploadFinished("cat.png", "https://i.imgur.com/abc.png", 1000))

	if got := h["urgency"].Value(); got != byte(UrgencyLow) {
		t.Errorf("urgency = %v, want %d", got, UrgencyLow)
	}
	if got := h["desktop-entry"].Value(); got != appName {
		t.Errorf("desktop-entry = %v, want %q", got, appName)
	}
	if got := h["category"].Value(); got != "transfer.complete" {
		t.Errorf("category = %v, want transfer.complete", got)
	}
}

func TestHints_NoCategory(t *testing.T) {
	h := hints(Notification{Title: "plain"})
	if _, ok := h["category"]; ok {
		t.Error("category hint set without a category")
	}
}

func TestStubNotifier(t *testing.T) {
	var n Notifier = stubNotifier{}
	id, err := n.Notify(UploadFailed("cat.png", errors.New("boom"), -1))
	if id != 0 || err != nil {
		t.Errorf("Notify() = %d, %v; want 0, nil", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestNotify_SessionBus(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	first, err := notifier.Notify(UploadFinished("cat.png", "https://i.imgur.com/abc.png", 2000))
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}

	n := UploadFinished("dog.png", "https://i.imgur.com/def.png", 1000)
	n.ReplacesID = first
	second, err := notifier.Notify(n)
	if err != nil {
		t.Fatalf("replacing Notify() error: %v", err)
	}
	if second != first {
		t.Logf("server assigned new id %d instead of replacing %d", second, first)
	}

	if err := notifier.Close(second); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
