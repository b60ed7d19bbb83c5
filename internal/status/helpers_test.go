package status

import (
	"testing"
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithClock(FixedClock{At: testNow})}, opts...)
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func completedDaysAgo(days, freq int) domain.Task {
	completed := testNow.AddDate(0, 0, -days)
	return domain.Task{ID: "t", LastCompleted: &completed, FrequencyDays: freq}
}

func forced(s domain.Status) domain.Task {
	return domain.Task{ID: "f", FrequencyDays: 7, ForcedIncomplete: true, ForcedStatus: &s}
}

func neverDone() domain.Task {
	return domain.Task{ID: "n", FrequencyDays: 7}
}

// taskWithStatus builds a task that classifies as s under the default thresholds.
func taskWithStatus(s domain.Status) domain.Task {
	switch s {
	case domain.StatusComplete:
		return completedDaysAgo(0, 7)
	case domain.StatusSoon:
		return completedDaysAgo(6, 7) // 85.7%
	case domain.StatusDue:
		return completedDaysAgo(19, 20) // 95%
	case domain.StatusOverdue:
		return completedDaysAgo(10, 7)
	default:
		return neverDone()
	}
}
