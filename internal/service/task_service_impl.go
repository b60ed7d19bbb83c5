package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/status"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	areas    repository.AreaRepo
	uow      db.UnitOfWork
	clock    status.Clock
	observer UseCaseObserver
}

func NewTaskService(
	tasks repository.TaskRepo,
	areas repository.AreaRepo,
	uow db.UnitOfWork,
	clock status.Clock,
	observers ...UseCaseObserver,
) TaskService {
	return &taskService{
		tasks:    tasks,
		areas:    areas,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	span := startUseCase(s.observer, "create-task", map[string]any{"area_id": t.AreaID, "name": t.Name})
	defer func() { span.end(ctx, err) }()

	if t.FrequencyDays == 0 {
		t.FrequencyDays = domain.DefaultFrequencyDays
	}
	if err = validateTask(t); err != nil {
		return err
	}
	if _, err = s.areas.GetByID(ctx, t.AreaID); err != nil {
		return fmt.Errorf("task %q: %w", t.Name, err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := s.clock.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	span.fields["task_id"] = t.ID
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByArea(ctx context.Context, areaID string) ([]*domain.Task, error) {
	return s.tasks.ListByArea(ctx, areaID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (err error) {
	span := startUseCase(s.observer, "update-task", map[string]any{"task_id": t.ID})
	defer func() { span.end(ctx, err) }()

	if t.FrequencyDays == 0 {
		return fmt.Errorf("task %q frequency must be positive, got 0: %w", t.Name, ErrInvalidInput)
	}
	if err = validateTask(t); err != nil {
		return err
	}
	t.UpdatedAt = s.clock.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Complete(ctx context.Context, id string, at *time.Time) (task *domain.Task, err error) {
	span := startUseCase(s.observer, "complete-task", map[string]any{"task_id": id, "backdated": at != nil})
	defer func() { span.end(ctx, err) }()

	now := s.clock.Now()
	completedAt := now
	if at != nil {
		if at.After(now) {
			return nil, fmt.Errorf("completion time %s is in the future: %w", at.Format(time.RFC3339), ErrInvalidInput)
		}
		completedAt = *at
	}

	task, err = s.mutate(ctx, id, func(t *domain.Task) error {
		t.MarkCompleted(completedAt.UTC())
		t.UpdatedAt = now.UTC()
		return nil
	})
	return task, err
}

func (s *taskService) ForceIncomplete(ctx context.Context, id string, st domain.Status) (task *domain.Task, err error) {
	span := startUseCase(s.observer, "force-task", map[string]any{"task_id": id, "status": string(st)})
	defer func() { span.end(ctx, err) }()

	if !st.IsForceable() {
		return nil, fmt.Errorf("cannot force task into status %q: %w", st, ErrInvalidInput)
	}
	task, err = s.mutate(ctx, id, func(t *domain.Task) error {
		return t.Force(st, s.clock.Now().UTC())
	})
	return task, err
}

func (s *taskService) ClearForce(ctx context.Context, id string) (task *domain.Task, err error) {
	span := startUseCase(s.observer, "clear-force", map[string]any{"task_id": id})
	defer func() { span.end(ctx, err) }()

	task, err = s.mutate(ctx, id, func(t *domain.Task) error {
		t.ClearForce(s.clock.Now().UTC())
		return nil
	})
	return task, err
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	span := startUseCase(s.observer, "delete-task", map[string]any{"task_id": id})
	defer func() { span.end(ctx, err) }()

	return s.tasks.Delete(ctx, id)
}

// mutate reads, changes and writes one task inside a transaction.
func (s *taskService) mutate(ctx context.Context, id string, change func(*domain.Task) error) (*domain.Task, error) {
	var out *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(t); err != nil {
			return err
		}
		if err := txTasks.Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
