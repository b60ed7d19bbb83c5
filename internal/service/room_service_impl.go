package service

import (
	"context"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/status"
	"github.com/google/uuid"
)

type roomService struct {
	rooms    repository.RoomRepo
	clock    status.Clock
	observer UseCaseObserver
}

func NewRoomService(rooms repository.RoomRepo, clock status.Clock, observers ...UseCaseObserver) RoomService {
	return &roomService{rooms: rooms, clock: clockOrSystem(clock), observer: useCaseObserverOrNoop(observers)}
}

func (s *roomService) Create(ctx context.Context, r *domain.Room) (err error) {
	span := startUseCase(s.observer, "create-room", map[string]any{"name": r.Name})
	defer func() { span.end(ctx, err) }()

	if r.Name, err = cleanName("room", r.Name); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := s.clock.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	span.fields["room_id"] = r.ID
	return s.rooms.Create(ctx, r)
}

func (s *roomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *roomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *roomService) Rename(ctx context.Context, id, name string) (err error) {
	span := startUseCase(s.observer, "rename-room", map[string]any{"room_id": id})
	defer func() { span.end(ctx, err) }()

	if name, err = cleanName("room", name); err != nil {
		return err
	}
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Name = name
	r.UpdatedAt = s.clock.Now().UTC()
	return s.rooms.Update(ctx, r)
}

func (s *roomService) Delete(ctx context.Context, id string) (err error) {
	span := startUseCase(s.observer, "delete-room", map[string]any{"room_id": id})
	defer func() { span.end(ctx, err) }()

	return s.rooms.Delete(ctx, id)
}

func clockOrSystem(c status.Clock) status.Clock {
	if c == nil {
		return status.SystemClock{}
	}
	return c
}
