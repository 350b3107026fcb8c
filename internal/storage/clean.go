// Package storage performs the two file mutations the CLI applies to a
// resolved installation: removing Augment rows from the state.vscdb key-value
// database and rewriting the telemetry IDs in storage.json. Both operations
// are single-pass and idempotent.
package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const (
	countAugmentRows  = "SELECT COUNT(*) FROM ItemTable WHERE key LIKE '%augment%'"
	deleteAugmentRows = "DELETE FROM ItemTable WHERE key LIKE '%augment%'"
)

// CleanDatabase removes all Augment-related rows from the editor's ItemTable
// and returns how many rows were deleted. A missing database file is not an
// error; there is simply nothing to clean.
func CleanDatabase(dbPath string) (int64, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return 0, nil
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Count first so the caller can report what the delete removed.
	var count int64
	if err := db.QueryRow(countAugmentRows).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	if _, err := db.Exec(deleteAugmentRows); err != nil {
		return 0, fmt.Errorf("failed to delete rows: %w", err)
	}
	return count, nil
}
