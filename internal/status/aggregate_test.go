package status

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	assert.Equal(t, 1.0, Weight(domain.StatusComplete))
	assert.Equal(t, 0.75, Weight(domain.StatusSoon))
	assert.Equal(t, 0.5, Weight(domain.StatusDue))
	assert.Equal(t, 0.0, Weight(domain.StatusOverdue))
	assert.Equal(t, 0.5, Weight(domain.StatusNeutral))
}

func TestAggregateArea_Empty(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, domain.StatusNeutral, e.AggregateArea(nil))
	assert.Equal(t, domain.StatusNeutral, e.AggregateArea([]domain.Task{}))
}

func TestAggregateArea_AllNeverCompletedStaysNeutral(t *testing.T) {
	e := newTestEngine(t)
	ev := e.EvaluateArea([]domain.Task{neverDone(), neverDone(), neverDone()})
	assert.Equal(t, domain.StatusNeutral, ev.Status)
	assert.False(t, ev.HasSignal)
	assert.Equal(t, 3, ev.Counts[domain.StatusNeutral])
	assert.Zero(t, ev.Score)
}

func TestAggregateArea_MixedScoresDue(t *testing.T) {
	e := newTestEngine(t)
	tasks := []domain.Task{
		taskWithStatus(domain.StatusComplete),
		taskWithStatus(domain.StatusComplete),
		forced(domain.StatusDue),
		forced(domain.StatusOverdue),
	}

	ev := e.EvaluateArea(tasks)
	assert.InDelta(t, 62.5, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusDue, ev.Status)
	assert.Equal(t, 2, ev.Counts[domain.StatusComplete])
	assert.Equal(t, 1, ev.Counts[domain.StatusDue])
	assert.Equal(t, 1, ev.Counts[domain.StatusOverdue])
	assert.Equal(t, 4, ev.Total)
}

func TestAggregateArea_SingleOverdueInLargeAreaDoesNotDominate(t *testing.T) {
	e := newTestEngine(t)
	tasks := make([]domain.Task, 0, 20)
	for i := 0; i < 19; i++ {
		tasks = append(tasks, taskWithStatus(domain.StatusComplete))
	}
	tasks = append(tasks, taskWithStatus(domain.StatusOverdue))

	ev := e.EvaluateArea(tasks)
	assert.InDelta(t, 95.0, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusComplete, ev.Status)
}

func TestAggregateArea_MostlyOverdueIsOverdue(t *testing.T) {
	e := newTestEngine(t)
	tasks := []domain.Task{
		taskWithStatus(domain.StatusOverdue),
		taskWithStatus(domain.StatusOverdue),
		taskWithStatus(domain.StatusOverdue),
		taskWithStatus(domain.StatusComplete),
	}
	assert.Equal(t, domain.StatusOverdue, e.AggregateArea(tasks))
}

func TestAggregateArea_NeutralTasksWeighHalf(t *testing.T) {
	e := newTestEngine(t)
	ev := e.EvaluateArea([]domain.Task{taskWithStatus(domain.StatusComplete), neverDone(), neverDone()})
	assert.True(t, ev.HasSignal)
	assert.InDelta(t, 200.0/3, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusDue, ev.Status)
}

func TestAggregateArea_BandBoundaries(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		name  string
		tasks []domain.Task
		want  domain.Status
	}{
		// (1+1+1+0.75+1)/5 = 95%
		{"complete", []domain.Task{
			taskWithStatus(domain.StatusComplete), taskWithStatus(domain.StatusComplete),
			taskWithStatus(domain.StatusComplete), taskWithStatus(domain.StatusSoon),
			taskWithStatus(domain.StatusComplete),
		}, domain.StatusComplete},
		// 0.75 = 75%
		{"soon", []domain.Task{taskWithStatus(domain.StatusSoon)}, domain.StatusSoon},
		// 0.5 = 50%
		{"due", []domain.Task{taskWithStatus(domain.StatusDue)}, domain.StatusDue},
		// (0.5+0)/2 = 25%
		{"overdue", []domain.Task{taskWithStatus(domain.StatusDue), taskWithStatus(domain.StatusOverdue)}, domain.StatusOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.AggregateArea(tc.tasks))
		})
	}
}

func TestAggregateArea_InjectedThresholds(t *testing.T) {
	strict := newTestEngine(t, WithAggregateThresholds(AggregateThresholds{Complete: 100, Soon: 99, Due: 98}))
	tasks := []domain.Task{taskWithStatus(domain.StatusComplete), taskWithStatus(domain.StatusSoon)}
	// 87.5% would be soon under the defaults.
	assert.Equal(t, domain.StatusOverdue, strict.AggregateArea(tasks))
	assert.Equal(t, domain.StatusSoon, newTestEngine(t).AggregateArea(tasks))
}

func TestAggregateRoom_Empty(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, domain.StatusNeutral, e.AggregateRoom(nil))
	assert.Equal(t, domain.StatusNeutral, e.AggregateRoom([]AreaSnapshot{}))
}

func TestAggregateRoom_OnlyEmptyAreasIsNeutral(t *testing.T) {
	e := newTestEngine(t)
	ev := e.EvaluateRoom([]AreaSnapshot{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, domain.StatusNeutral, ev.Status)
	assert.False(t, ev.HasSignal)
}

func TestAggregateRoom_CompleteAreaPlusEmptyAreaIsSoon(t *testing.T) {
	e := newTestEngine(t)
	healthy := AreaSnapshot{ID: "kitchen-counters", Tasks: []domain.Task{
		taskWithStatus(domain.StatusComplete), taskWithStatus(domain.StatusComplete),
		taskWithStatus(domain.StatusComplete), taskWithStatus(domain.StatusComplete),
		taskWithStatus(domain.StatusSoon),
	}}
	areaEv := e.EvaluateArea(healthy.Tasks)
	require.InDelta(t, 95.0, areaEv.Score, 1e-9)
	require.Equal(t, domain.StatusComplete, areaEv.Status)

	ev := e.EvaluateRoom([]AreaSnapshot{healthy, {ID: "pantry"}})
	assert.InDelta(t, 75.0, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusSoon, ev.Status)
	assert.Equal(t, 1, ev.Counts[domain.StatusComplete])
	assert.Equal(t, 1, ev.Counts[domain.StatusNeutral])
}

func TestAggregateRoom_AreaWithOnlyNeutralTasksCarriesSignal(t *testing.T) {
	e := newTestEngine(t)
	// The area itself is neutral, but it has tasks, so the room scores it at 50%.
	ev := e.EvaluateRoom([]AreaSnapshot{{ID: "a", Tasks: []domain.Task{neverDone(), neverDone()}}})
	assert.True(t, ev.HasSignal)
	assert.InDelta(t, 50.0, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusDue, ev.Status)
}

func TestAggregateRoom_UsesAreaStatusNotRawTasks(t *testing.T) {
	e := newTestEngine(t)
	areas := []AreaSnapshot{
		{ID: "a", Tasks: []domain.Task{taskWithStatus(domain.StatusOverdue)}},
		{ID: "b", Tasks: []domain.Task{taskWithStatus(domain.StatusComplete)}},
		{ID: "c", Tasks: []domain.Task{taskWithStatus(domain.StatusComplete)}},
	}
	ev := e.EvaluateRoom(areas)
	assert.InDelta(t, 200.0/3, ev.Score, 1e-9)
	assert.Equal(t, domain.StatusDue, ev.Status)
}

func TestBatch_MatchesSingleEntity(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(42))

	var rooms []RoomSnapshot
	var allAreas []AreaSnapshot
	for r := 0; r < 40; r++ {
		room := RoomSnapshot{ID: fmt.Sprintf("room-%d", r)}
		areaCount := rng.Intn(5)
		for a := 0; a < areaCount; a++ {
			area := AreaSnapshot{ID: fmt.Sprintf("area-%d-%d", r, a)}
			taskCount := rng.Intn(8)
			for i := 0; i < taskCount; i++ {
				area.Tasks = append(area.Tasks, randomTask(rng))
			}
			room.Areas = append(room.Areas, area)
			allAreas = append(allAreas, area)
		}
		rooms = append(rooms, room)
	}

	areaStatuses := e.AggregateAreas(allAreas)
	require.Len(t, areaStatuses, len(allAreas))
	for _, a := range allAreas {
		assert.Equal(t, e.AggregateArea(a.Tasks), areaStatuses[a.ID], a.ID)
	}

	roomStatuses := e.AggregateRooms(rooms)
	require.Len(t, roomStatuses, len(rooms))
	for _, r := range rooms {
		assert.Equal(t, e.AggregateRoom(r.Areas), roomStatuses[r.ID], r.ID)
	}
}

func TestBatch_Empty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.AggregateAreas(nil))
	assert.Empty(t, e.AggregateRooms(nil))
}

func randomTask(rng *rand.Rand) domain.Task {
	switch rng.Intn(4) {
	case 0:
		return neverDone()
	case 1:
		statuses := []domain.Status{domain.StatusSoon, domain.StatusDue, domain.StatusOverdue}
		return forced(statuses[rng.Intn(len(statuses))])
	default:
		return completedDaysAgo(rng.Intn(40)-3, rng.Intn(30)+1)
	}
}
