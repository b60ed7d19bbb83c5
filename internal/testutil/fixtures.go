package testutil

import (
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/google/uuid"
)

func NewTestRoom(name string) *domain.Room {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Room{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestArea(roomID, name string) *domain.Area {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Area{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithLastCompleted(t time.Time) TaskOption {
	return func(task *domain.Task) {
		completed := t.UTC().Truncate(time.Second)
		task.LastCompleted = &completed
	}
}

func WithFrequencyDays(days int) TaskOption {
	return func(task *domain.Task) {
		task.FrequencyDays = days
	}
}

func WithForcedStatus(s domain.Status) TaskOption {
	return func(task *domain.Task) {
		forced := s
		task.ForcedIncomplete = true
		task.ForcedStatus = &forced
	}
}

func NewTestTask(areaID, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:            uuid.New().String(),
		AreaID:        areaID,
		Name:          name,
		FrequencyDays: domain.DefaultFrequencyDays,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
