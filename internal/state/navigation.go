package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/openimg/internal/db"
)

type NavigationState struct {
	ViewMode       string // "gallery" or "uploads"
	Section        string // gallery section, e.g. "hot" or "r/aww"
	Sort           string
	SelectedPostID string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT view_mode, section, sort, selected_post_id
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var sort, selectedPostID sql.NullString

	err := row.Scan(&state.ViewMode, &state.Section, &sort, &selectedPostID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.Sort = dbutil.NullStringValue(sort)
	state.SelectedPostID = dbutil.NullStringValue(selectedPostID)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	viewMode := state.ViewMode
	if viewMode == "" {
		viewMode = "gallery"
	}

	_, err := db.Exec(`
		INSERT INTO navigation_state (id, view_mode, section, sort, selected_post_id)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			view_mode = excluded.view_mode,
			section = excluded.section,
			sort = excluded.sort,
			selected_post_id = excluded.selected_post_id
	`, viewMode, state.Section, state.Sort, state.SelectedPostID)

	return err
}
