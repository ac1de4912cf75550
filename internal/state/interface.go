// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	GetBool(key string, def bool) (bool, error)
	SetBool(key string, value bool) error
	ListUploads(newestFirst bool) ([]Upload, error)
	SaveUpload(u Upload) (int64, error)
	DeleteUpload(id int64) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
