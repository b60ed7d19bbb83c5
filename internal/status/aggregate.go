package status

import (
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// AreaSnapshot is an area's tasks as fetched by the caller.
type AreaSnapshot struct {
	ID    string
	Tasks []domain.Task
}

// RoomSnapshot is a room's areas as fetched by the caller.
type RoomSnapshot struct {
	ID    string
	Areas []AreaSnapshot
}

func (e *Engine) AggregateArea(tasks []domain.Task) domain.Status {
	return e.EvaluateAreaAt(tasks, e.clock.Now()).Status
}

func (e *Engine) EvaluateArea(tasks []domain.Task) Evaluation {
	return e.EvaluateAreaAt(tasks, e.clock.Now())
}

// EvaluateAreaAt scores an area's tasks as of now.
func (e *Engine) EvaluateAreaAt(tasks []domain.Task, now time.Time) Evaluation {
	return weighted(tasks, func(t domain.Task) (domain.Status, bool) {
		return e.ClassifyTaskAt(t, now), t.HasSignal()
	}, e.agg)
}

func (e *Engine) AggregateRoom(areas []AreaSnapshot) domain.Status {
	return e.EvaluateRoomAt(areas, e.clock.Now()).Status
}

func (e *Engine) EvaluateRoom(areas []AreaSnapshot) Evaluation {
	return e.EvaluateRoomAt(areas, e.clock.Now())
}

// EvaluateRoomAt scores a room's areas as of now. Areas without tasks count
// as neutral and contribute no signal; any area with tasks does.
func (e *Engine) EvaluateRoomAt(areas []AreaSnapshot, now time.Time) Evaluation {
	return weighted(areas, func(a AreaSnapshot) (domain.Status, bool) {
		if len(a.Tasks) == 0 {
			return domain.StatusNeutral, false
		}
		return e.EvaluateAreaAt(a.Tasks, now).Status, true
	}, e.agg)
}

// AggregateAreas computes the status of many areas with a single reading of
// the clock. Results match AggregateArea for each area.
func (e *Engine) AggregateAreas(areas []AreaSnapshot) map[string]domain.Status {
	return statusesOf(e.EvaluateAreasAt(areas, e.clock.Now()))
}

// AggregateRooms computes the status of many rooms with a single reading of
// the clock. Results match AggregateRoom for each room.
func (e *Engine) AggregateRooms(rooms []RoomSnapshot) map[string]domain.Status {
	return statusesOf(e.EvaluateRoomsAt(rooms, e.clock.Now()))
}

func (e *Engine) EvaluateAreasAt(areas []AreaSnapshot, now time.Time) map[string]Evaluation {
	out := make(map[string]Evaluation, len(areas))
	for _, a := range areas {
		out[a.ID] = e.EvaluateAreaAt(a.Tasks, now)
	}
	return out
}

func (e *Engine) EvaluateRoomsAt(rooms []RoomSnapshot, now time.Time) map[string]Evaluation {
	out := make(map[string]Evaluation, len(rooms))
	for _, r := range rooms {
		out[r.ID] = e.EvaluateRoomAt(r.Areas, now)
	}
	return out
}

func statusesOf(evals map[string]Evaluation) map[string]domain.Status {
	out := make(map[string]domain.Status, len(evals))
	for id, ev := range evals {
		out[id] = ev.Status
	}
	return out
}
