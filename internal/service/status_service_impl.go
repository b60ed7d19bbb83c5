package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/status"
)

type statusService struct {
	uow      db.UnitOfWork
	engine   *status.Engine
	observer UseCaseObserver
}

// NewStatusService reads through uow so a report never mixes rows from
// before and after a concurrent write.
func NewStatusService(uow db.UnitOfWork, engine *status.Engine, observers ...UseCaseObserver) StatusService {
	if engine == nil {
		engine = status.Default()
	}
	return &statusService{
		uow:      uow,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

// GetStatus loads the household with three queries (rooms, their areas,
// their tasks) in one read transaction and evaluates every room and area
// against one reading of the clock.
func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	span := startUseCase(s.observer, "status", map[string]any{"scope": len(req.RoomScope)})
	defer func() { span.end(ctx, err) }()

	now := s.engine.Now()
	if req.Now != nil {
		now = *req.Now
	}

	var rooms []*domain.Room
	var areas []*domain.Area
	var tasks []*domain.Task
	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var lerr error
		rooms, areas, tasks, lerr = loadHousehold(ctx, tx, req.RoomScope)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	h := groupHousehold(rooms, areas, tasks)
	roomEvals := s.engine.EvaluateRoomsAt(h.roomSnapshots(), now)
	areaEvals := s.engine.EvaluateAreasAt(h.areaSnapshots(), now)

	views := make([]app.RoomStatusView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, s.buildRoomView(r, h, roomEvals[r.ID], areaEvals, req.IncludeTasks, now))
	}
	sortRoomViews(views)

	span.fields["rooms"] = len(rooms)
	span.fields["areas"] = len(areas)
	span.fields["tasks"] = len(tasks)

	return &app.StatusResponse{
		Summary: buildStatusSummary(views, len(areas), h.taskStatuses(s.engine, now), now),
		Rooms:   views,
	}, nil
}

func loadHousehold(ctx context.Context, tx db.DBTX, scope []string) ([]*domain.Room, []*domain.Area, []*domain.Task, error) {
	rooms, err := repository.NewSQLiteRoomRepo(tx).List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading rooms: %w", err)
	}
	rooms, missing := filterRoomsByScope(rooms, scope)
	if len(missing) > 0 {
		return nil, nil, nil, &app.StatusError{
			Code:    app.StatusErrInvalidScope,
			Message: "unknown room(s): " + strings.Join(missing, ", "),
		}
	}

	roomIDs := make([]string, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.ID
	}
	areas, err := repository.NewSQLiteAreaRepo(tx).ListByRooms(ctx, roomIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading areas: %w", err)
	}

	areaIDs := make([]string, len(areas))
	for i, a := range areas {
		areaIDs[i] = a.ID
	}
	tasks, err := repository.NewSQLiteTaskRepo(tx).ListByAreas(ctx, areaIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tasks: %w", err)
	}
	return rooms, areas, tasks, nil
}

func (s *statusService) buildRoomView(
	r *domain.Room,
	h *household,
	eval status.Evaluation,
	areaEvals map[string]status.Evaluation,
	includeTasks bool,
	now time.Time,
) app.RoomStatusView {
	view := app.RoomStatusView{
		RoomID:    r.ID,
		RoomName:  r.Name,
		Status:    eval.Status,
		Score:     eval.Score,
		HasSignal: eval.HasSignal,
	}
	for _, a := range h.areasByRoom[r.ID] {
		aeval := areaEvals[a.ID]
		av := app.AreaStatusView{
			AreaID:    a.ID,
			AreaName:  a.Name,
			Status:    aeval.Status,
			Score:     aeval.Score,
			HasSignal: aeval.HasSignal,
			TaskCount: aeval.Total,
			Counts:    aeval.Counts,
		}
		if includeTasks {
			for _, t := range h.tasksByArea[a.ID] {
				av.Tasks = append(av.Tasks, s.buildTaskView(t, now))
			}
			sortTaskViews(av.Tasks)
		}
		view.Areas = append(view.Areas, av)
	}
	sortAreaViews(view.Areas)
	return view
}

func (s *statusService) buildTaskView(t domain.Task, now time.Time) app.TaskStatusView {
	tv := app.TaskStatusView{
		TaskID:        t.ID,
		TaskName:      t.Name,
		Status:        s.engine.ClassifyTaskAt(t, now),
		Forced:        t.ForcedIncomplete,
		FrequencyDays: t.FrequencyDays,
		LastCompleted: t.LastCompleted,
		NextDue:       status.NextDueIn(t, now.Location()),
	}
	if t.LastCompleted != nil {
		days := status.DaysSinceCompletion(*t.LastCompleted, now)
		pct := status.PercentElapsed(*t.LastCompleted, t.FrequencyDays, now)
		tv.DaysSince = &days
		tv.PercentElapsed = &pct
	}
	return tv
}

// household indexes one batch fetch by parent ID, preserving repository order.
type household struct {
	rooms       []*domain.Room
	areas       []*domain.Area
	areasByRoom map[string][]*domain.Area
	tasksByArea map[string][]domain.Task
}

func groupHousehold(rooms []*domain.Room, areas []*domain.Area, tasks []*domain.Task) *household {
	h := &household{
		rooms:       rooms,
		areas:       areas,
		areasByRoom: make(map[string][]*domain.Area, len(rooms)),
		tasksByArea: make(map[string][]domain.Task, len(areas)),
	}
	for _, a := range areas {
		h.areasByRoom[a.RoomID] = append(h.areasByRoom[a.RoomID], a)
	}
	for _, t := range tasks {
		h.tasksByArea[t.AreaID] = append(h.tasksByArea[t.AreaID], *t)
	}
	return h
}

func (h *household) areaSnapshot(a *domain.Area) status.AreaSnapshot {
	return status.AreaSnapshot{ID: a.ID, Tasks: h.tasksByArea[a.ID]}
}

func (h *household) areaSnapshots() []status.AreaSnapshot {
	out := make([]status.AreaSnapshot, len(h.areas))
	for i, a := range h.areas {
		out[i] = h.areaSnapshot(a)
	}
	return out
}

func (h *household) roomSnapshots() []status.RoomSnapshot {
	out := make([]status.RoomSnapshot, len(h.rooms))
	for i, r := range h.rooms {
		snap := status.RoomSnapshot{ID: r.ID}
		for _, a := range h.areasByRoom[r.ID] {
			snap.Areas = append(snap.Areas, h.areaSnapshot(a))
		}
		out[i] = snap
	}
	return out
}

func (h *household) taskStatuses(engine *status.Engine, now time.Time) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.AllStatuses))
	for _, tasks := range h.tasksByArea {
		for _, t := range tasks {
			counts[engine.ClassifyTaskAt(t, now)]++
		}
	}
	return counts
}

func sortRoomViews(views []app.RoomStatusView) {
	sort.SliceStable(views, func(i, j int) bool {
		return lessByUrgency(views[i].Status, views[j].Status, views[i].RoomName, views[j].RoomName)
	})
}

func sortAreaViews(views []app.AreaStatusView) {
	sort.SliceStable(views, func(i, j int) bool {
		return lessByUrgency(views[i].Status, views[j].Status, views[i].AreaName, views[j].AreaName)
	})
}

func sortTaskViews(views []app.TaskStatusView) {
	sort.SliceStable(views, func(i, j int) bool {
		return lessByUrgency(views[i].Status, views[j].Status, views[i].TaskName, views[j].TaskName)
	})
}

func lessByUrgency(a, b domain.Status, nameA, nameB string) bool {
	pa, pb := status.Priority(a), status.Priority(b)
	if pa != pb {
		return pa < pb
	}
	return strings.ToLower(nameA) < strings.ToLower(nameB)
}

func buildStatusSummary(views []app.RoomStatusView, areaCount int, taskCounts map[domain.Status]int, now time.Time) app.StatusSummary {
	summary := app.StatusSummary{
		GeneratedAt:   now,
		RoomCount:     len(views),
		AreaCount:     areaCount,
		RoomsByStatus: make(map[domain.Status]int, len(domain.AllStatuses)),
		TasksByStatus: taskCounts,
	}
	for _, v := range views {
		summary.RoomsByStatus[v.Status]++
	}
	for _, n := range taskCounts {
		summary.TaskCount += n
	}
	return summary
}
