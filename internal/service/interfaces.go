package service

import (
	"context"
	"time"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/alexanderramin/homekeep/internal/importer"
)

type RoomService interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type AreaService interface {
	Create(ctx context.Context, a *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Area, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// Complete records a completion at the given instant, or now when at is nil,
	// and clears any forced status.
	Complete(ctx context.Context, id string, at *time.Time) (*domain.Task, error)
	ForceIncomplete(ctx context.Context, id string, s domain.Status) (*domain.Task, error)
	ClearForce(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}

type ImportService interface {
	Import(ctx context.Context, patterns ...string) (*app.ImportResult, error)
	ImportFile(ctx context.Context, file *importer.HouseholdFile) (*app.ImportResult, error)
}
