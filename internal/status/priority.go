package status

import "github.com/alexanderramin/homekeep/internal/domain"

// Priority ranks a status for sorting; lower is more urgent.
// overdue < due < soon < complete < neutral.
func Priority(s domain.Status) int {
	switch s {
	case domain.StatusOverdue:
		return 0
	case domain.StatusDue:
		return 1
	case domain.StatusSoon:
		return 2
	case domain.StatusComplete:
		return 3
	default:
		return 4
	}
}

// MoreUrgent reports whether a should sort before b.
func MoreUrgent(a, b domain.Status) bool {
	return Priority(a) < Priority(b)
}
