package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS areas (
		id         TEXT PRIMARY KEY,
		room_id    TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_areas_room ON areas(room_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		area_id           TEXT NOT NULL REFERENCES areas(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		last_completed    TEXT,
		frequency_days    INTEGER NOT NULL DEFAULT 7,
		forced_incomplete INTEGER NOT NULL DEFAULT 0,
		forced_status     TEXT
		                  CHECK(forced_status IS NULL OR forced_status IN ('soon','due','overdue')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_area ON tasks(area_id)`,
}
