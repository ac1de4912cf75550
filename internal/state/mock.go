// internal/state/mock.go
package state

import (
	"database/sql"
	"slices"
)

// Mock is a test double for Manager.
type Mock struct {
	navState *NavigationState
	prefs    map[string]bool
	uploads  []Upload
	nextID   int64
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{prefs: make(map[string]bool)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) GetBool(key string, def bool) (bool, error) {
	if v, ok := m.prefs[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Mock) SetBool(key string, value bool) error {
	m.prefs[key] = value
	return nil
}

func (m *Mock) ListUploads(newestFirst bool) ([]Upload, error) {
	result := slices.Clone(m.uploads)
	if newestFirst {
		slices.Reverse(result)
	}
	return result, nil
}

func (m *Mock) SaveUpload(u Upload) (int64, error) {
	m.nextID++
	u.ID = m.nextID
	m.uploads = append(m.uploads, u)
	return u.ID, nil
}

func (m *Mock) DeleteUpload(id int64) error {
	m.uploads = slices.DeleteFunc(m.uploads, func(u Upload) bool { return u.ID == id })
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
