package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that matches no row.
var ErrNotFound = errors.New("not found")

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, id string) error
}

type AreaRepo interface {
	Create(ctx context.Context, a *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Area, error)
	// ListByRooms fetches the areas of many rooms in one query.
	ListByRooms(ctx context.Context, roomIDs []string) ([]*domain.Area, error)
	Update(ctx context.Context, a *domain.Area) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Task, error)
	// ListByAreas fetches the tasks of many areas in one query.
	ListByAreas(ctx context.Context, areaIDs []string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
