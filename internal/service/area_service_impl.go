package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/status"
	"github.com/google/uuid"
)

type areaService struct {
	areas    repository.AreaRepo
	rooms    repository.RoomRepo
	clock    status.Clock
	observer UseCaseObserver
}

func NewAreaService(areas repository.AreaRepo, rooms repository.RoomRepo, clock status.Clock, observers ...UseCaseObserver) AreaService {
	return &areaService{areas: areas, rooms: rooms, clock: clockOrSystem(clock), observer: useCaseObserverOrNoop(observers)}
}

func (s *areaService) Create(ctx context.Context, a *domain.Area) (err error) {
	span := startUseCase(s.observer, "create-area", map[string]any{"room_id": a.RoomID, "name": a.Name})
	defer func() { span.end(ctx, err) }()

	if a.Name, err = cleanName("area", a.Name); err != nil {
		return err
	}
	if _, err = s.rooms.GetByID(ctx, a.RoomID); err != nil {
		return fmt.Errorf("area %q: %w", a.Name, err)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := s.clock.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	span.fields["area_id"] = a.ID
	return s.areas.Create(ctx, a)
}

func (s *areaService) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	return s.areas.GetByID(ctx, id)
}

func (s *areaService) ListByRoom(ctx context.Context, roomID string) ([]*domain.Area, error) {
	return s.areas.ListByRoom(ctx, roomID)
}

func (s *areaService) Rename(ctx context.Context, id, name string) (err error) {
	span := startUseCase(s.observer, "rename-area", map[string]any{"area_id": id})
	defer func() { span.end(ctx, err) }()

	if name, err = cleanName("area", name); err != nil {
		return err
	}
	a, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Name = name
	a.UpdatedAt = s.clock.Now().UTC()
	return s.areas.Update(ctx, a)
}

func (s *areaService) Delete(ctx context.Context, id string) (err error) {
	span := startUseCase(s.observer, "delete-area", map[string]any{"area_id": id})
	defer func() { span.end(ctx, err) }()

	return s.areas.Delete(ctx, id)
}
