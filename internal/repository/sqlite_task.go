package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, area_id, name, last_completed, frequency_days,
	forced_incomplete, forced_status, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.AreaID,
		t.Name,
		nullableTimeToString(t.LastCompleted, time.RFC3339),
		t.FrequencyDays,
		boolToInt(t.ForcedIncomplete),
		nullableStatusToValue(t.ForcedStatus),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByArea(ctx context.Context, areaID string) ([]*domain.Task, error) {
	return r.ListByAreas(ctx, []string{areaID})
}

func (r *SQLiteTaskRepo) ListByAreas(ctx context.Context, areaIDs []string) ([]*domain.Task, error) {
	if len(areaIDs) == 0 {
		return nil, nil
	}
	placeholders, args := inClause(areaIDs)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE area_id IN (` + placeholders + `)
		ORDER BY name COLLATE NOCASE, created_at`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET area_id = ?, name = ?, last_completed = ?, frequency_days = ?,
		forced_incomplete = ?, forced_status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.AreaID,
		t.Name,
		nullableTimeToString(t.LastCompleted, time.RFC3339),
		t.FrequencyDays,
		boolToInt(t.ForcedIncomplete),
		nullableStatusToValue(t.ForcedStatus),
		formatTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task", id)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var lastCompleted, forcedStatus sql.NullString
	var forcedIncomplete int
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.AreaID, &t.Name,
		&lastCompleted, &t.FrequencyDays,
		&forcedIncomplete, &forcedStatus,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.LastCompleted = parseNullableTime(lastCompleted, time.RFC3339)
	t.ForcedIncomplete = intToBool(forcedIncomplete)
	t.ForcedStatus = parseNullableStatus(forcedStatus)

	t.CreatedAt, t.UpdatedAt, err = parseTimes(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
