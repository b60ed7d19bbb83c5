package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"rooms", "areas", "tasks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_areas_room", "idx_tasks_area"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForcedStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO rooms (id, name, created_at, updated_at) VALUES ('r1', 'Kitchen', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO areas (id, room_id, name, created_at, updated_at) VALUES ('a1', 'r1', 'Sink', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tasks (id, area_id, name, forced_incomplete, forced_status, created_at, updated_at)
		VALUES ('t1', 'a1', 'Scrub', 1, 'complete', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "complete is not a forceable status")

	_, err = db.Exec(`INSERT INTO tasks (id, area_id, name, forced_incomplete, forced_status, created_at, updated_at)
		VALUES ('t2', 'a1', 'Scrub', 1, 'due', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_CascadeDeletesChildren(t *testing.T) {
	db := openTestDB(t)

	stmts := []string{
		`INSERT INTO rooms (id, name, created_at, updated_at) VALUES ('r1', 'Bath', 'x', 'x')`,
		`INSERT INTO areas (id, room_id, name, created_at, updated_at) VALUES ('a1', 'r1', 'Tub', 'x', 'x')`,
		`INSERT INTO tasks (id, area_id, name, created_at, updated_at) VALUES ('t1', 'a1', 'Scrub', 'x', 'x')`,
		`DELETE FROM rooms WHERE id = 'r1'`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n))
	assert.Zero(t, n)
}
