package domain

import (
	"fmt"
	"time"
)

// DefaultFrequencyDays is used when a task is created without a frequency.
const DefaultFrequencyDays = 7

type Task struct {
	ID     string
	AreaID string
	Name   string

	// LastCompleted is nil when the task has never been completed.
	LastCompleted *time.Time
	FrequencyDays int

	// Manual override. ForcedStatus is only meaningful while ForcedIncomplete is set.
	ForcedIncomplete bool
	ForcedStatus     *Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSignal reports whether the task carries any information beyond "never done".
func (t *Task) HasSignal() bool {
	return t.ForcedIncomplete || t.LastCompleted != nil
}

// MarkCompleted records a completion at now and drops any manual override.
func (t *Task) MarkCompleted(now time.Time) {
	completed := now
	t.LastCompleted = &completed
	t.ForcedIncomplete = false
	t.ForcedStatus = nil
	t.UpdatedAt = now
}

// Force pins the task to status s regardless of its completion history.
func (t *Task) Force(s Status, now time.Time) error {
	if !s.IsForceable() {
		return fmt.Errorf("cannot force task into status %q", s)
	}
	forced := s
	t.ForcedIncomplete = true
	t.ForcedStatus = &forced
	t.UpdatedAt = now
	return nil
}

// ClearForce removes the manual override, if any.
func (t *Task) ClearForce(now time.Time) {
	t.ForcedIncomplete = false
	t.ForcedStatus = nil
	t.UpdatedAt = now
}
