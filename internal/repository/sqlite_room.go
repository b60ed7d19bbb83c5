package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/domain"
)

// SQLiteRoomRepo implements RoomRepo using a SQLite database.
type SQLiteRoomRepo struct {
	db db.DBTX
}

// NewSQLiteRoomRepo creates a new SQLiteRoomRepo.
func NewSQLiteRoomRepo(conn db.DBTX) *SQLiteRoomRepo {
	return &SQLiteRoomRepo{db: conn}
}

const roomColumns = `id, name, created_at, updated_at`

func (r *SQLiteRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (` + roomColumns + `) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		room.ID,
		room.Name,
		formatTime(room.CreatedAt),
		formatTime(room.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting room: %w", err)
	}
	return nil
}

func (r *SQLiteRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	room, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("room %s: %w", id, ErrNotFound)
	}
	return room, err
}

func (r *SQLiteRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY name COLLATE NOCASE, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}
	return rooms, nil
}

func (r *SQLiteRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET name = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, room.Name, formatTime(room.UpdatedAt), room.ID)
	if err != nil {
		return fmt.Errorf("updating room: %w", err)
	}
	return requireAffected(res, "room", room.ID)
}

func (r *SQLiteRoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	return requireAffected(res, "room", id)
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt string
	if err := row.Scan(&room.ID, &room.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning room: %w", err)
	}

	var err error
	room.CreatedAt, room.UpdatedAt, err = parseTimes(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
