package state

import (
	"database/sql"
	"errors"
	"strconv"
)

// Preference keys.
const (
	PrefAllowNSFWThumbnails = "allow_nsfw_thumbnails"
)

// GetBool returns the stored boolean preference, or def if unset.
func (m *Manager) GetBool(key string, def bool) (bool, error) {
	return getBool(m.db, key, def)
}

// SetBool stores a boolean preference.
func (m *Manager) SetBool(key string, value bool) error {
	return setPreference(m.db, key, strconv.FormatBool(value))
}

func getBool(db *sql.DB, key string, def bool) (bool, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return def, nil //nolint:nilerr // a corrupt value falls back to the default
	}
	return value, nil
}

func setPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
