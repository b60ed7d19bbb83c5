package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/domain"
)

// SQLiteAreaRepo implements AreaRepo using a SQLite database.
type SQLiteAreaRepo struct {
	db db.DBTX
}

// NewSQLiteAreaRepo creates a new SQLiteAreaRepo.
func NewSQLiteAreaRepo(conn db.DBTX) *SQLiteAreaRepo {
	return &SQLiteAreaRepo{db: conn}
}

const areaColumns = `id, room_id, name, created_at, updated_at`

func (r *SQLiteAreaRepo) Create(ctx context.Context, a *domain.Area) error {
	query := `INSERT INTO areas (` + areaColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.RoomID,
		a.Name,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE id = ?`
	a, err := scanArea(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("area %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAreaRepo) ListByRoom(ctx context.Context, roomID string) ([]*domain.Area, error) {
	return r.ListByRooms(ctx, []string{roomID})
}

func (r *SQLiteAreaRepo) ListByRooms(ctx context.Context, roomIDs []string) ([]*domain.Area, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	placeholders, args := inClause(roomIDs)
	query := `SELECT ` + areaColumns + ` FROM areas WHERE room_id IN (` + placeholders + `)
		ORDER BY name COLLATE NOCASE, created_at`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating areas: %w", err)
	}
	return areas, nil
}

func (r *SQLiteAreaRepo) Update(ctx context.Context, a *domain.Area) error {
	query := `UPDATE areas SET room_id = ?, name = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, a.RoomID, a.Name, formatTime(a.UpdatedAt), a.ID)
	if err != nil {
		return fmt.Errorf("updating area: %w", err)
	}
	return requireAffected(res, "area", a.ID)
}

func (r *SQLiteAreaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting area: %w", err)
	}
	return requireAffected(res, "area", id)
}

func scanArea(row rowScanner) (*domain.Area, error) {
	var a domain.Area
	var createdAt, updatedAt string
	if err := row.Scan(&a.ID, &a.RoomID, &a.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning area: %w", err)
	}

	var err error
	a.CreatedAt, a.UpdatedAt, err = parseTimes(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
