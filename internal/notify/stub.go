//go:build !linux

package notify

// stubNotifier drops notifications on platforms without D-Bus.
type stubNotifier struct{}

// New returns a no-op notifier on non-Linux platforms.
func New() (Notifier, error) {
	return stubNotifier{}, nil
}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
