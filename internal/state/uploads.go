package state

import (
	"database/sql"
	"strconv"
	"time"

	dbutil "github.com/llehouerou/openimg/internal/db"
)

// Upload is a photo or album the user uploaded from this device.
type Upload struct {
	ID         int64
	URL        string
	DeleteHash string // empty when the upload cannot be deleted remotely
	IsAlbum    bool
	CreatedAt  time.Time
}

// ItemID implements gallery.Item.
func (u Upload) ItemID() string {
	return strconv.FormatInt(u.ID, 10)
}

// ListUploads returns the stored uploads, newest first when newestFirst is set.
func (m *Manager) ListUploads(newestFirst bool) ([]Upload, error) {
	return listUploads(m.db, newestFirst)
}

// SaveUpload stores a new upload and returns its id.
func (m *Manager) SaveUpload(u Upload) (int64, error) {
	return saveUpload(m.db, u)
}

// DeleteUpload removes an upload record. Deleting a missing id is not an error.
func (m *Manager) DeleteUpload(id int64) error {
	_, err := m.db.Exec(`DELETE FROM uploaded_photos WHERE id = ?`, id)
	return err
}

func listUploads(db *sql.DB, newestFirst bool) ([]Upload, error) {
	order := "ASC"
	if newestFirst {
		order = "DESC"
	}

	rows, err := db.Query(`
		SELECT id, url, delete_hash, is_album, created_at
		FROM uploaded_photos
		ORDER BY created_at ` + order + `, id ` + order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		var u Upload
		var deleteHash sql.NullString
		var createdAt int64

		if err := rows.Scan(&u.ID, &u.URL, &deleteHash, &u.IsAlbum, &createdAt); err != nil {
			return nil, err
		}

		u.DeleteHash = dbutil.NullStringValue(deleteHash)
		u.CreatedAt = time.Unix(createdAt, 0)
		uploads = append(uploads, u)
	}

	return uploads, rows.Err()
}

func saveUpload(db *sql.DB, u Upload) (int64, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := db.Exec(`
		INSERT INTO uploaded_photos (url, delete_hash, is_album, created_at)
		VALUES (?, ?, ?, ?)
	`, u.URL, dbutil.NullIfEmpty(u.DeleteHash), u.IsAlbum, createdAt.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
