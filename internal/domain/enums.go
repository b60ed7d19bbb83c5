package domain

import "fmt"

// Status is the urgency classification shared by tasks, areas and rooms.
type Status string

const (
	StatusComplete Status = "complete"
	StatusSoon     Status = "soon"
	StatusDue      Status = "due"
	StatusOverdue  Status = "overdue"
	StatusNeutral  Status = "neutral"
)

// AllStatuses lists every status in urgency order, most urgent first.
var AllStatuses = []Status{
	StatusOverdue,
	StatusDue,
	StatusSoon,
	StatusComplete,
	StatusNeutral,
}

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusComplete, StatusSoon, StatusDue, StatusOverdue, StatusNeutral:
		return true
	}
	return false
}

// IsForceable reports whether s may be pinned on a task through a manual override.
func (s Status) IsForceable() bool {
	switch s {
	case StatusSoon, StatusDue, StatusOverdue:
		return true
	}
	return false
}

// ParseStatus converts a lower-case status name into a Status.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q (want complete, soon, due, overdue or neutral)", v)
	}
	return s, nil
}

// ParseForcedStatus is ParseStatus restricted to the statuses a task can be forced into.
func ParseForcedStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsForceable() {
		return "", fmt.Errorf("status %q cannot be forced (want soon, due or overdue)", v)
	}
	return s, nil
}
