package status

import "github.com/alexanderramin/homekeep/internal/domain"

// Weight maps a child status to its contribution to a parent score.
func Weight(s domain.Status) float64 {
	switch s {
	case domain.StatusComplete:
		return 1.0
	case domain.StatusSoon:
		return 0.75
	case domain.StatusDue:
		return 0.5
	case domain.StatusOverdue:
		return 0.0
	default:
		return 0.5
	}
}

// Evaluation is the detailed result of aggregating a collection.
type Evaluation struct {
	Status domain.Status
	// Score is the weighted health percentage (0-100). It is zero when the
	// collection is empty or carries no signal.
	Score     float64
	HasSignal bool
	Total     int
	Counts    map[domain.Status]int
}

// weighted averages the weights of the children's statuses and classifies
// the result. eval returns a child's status and whether the child carries a
// meaningful signal; with no signal anywhere the result stays neutral.
func weighted[C any](children []C, eval func(C) (domain.Status, bool), th AggregateThresholds) Evaluation {
	ev := Evaluation{
		Status: domain.StatusNeutral,
		Total:  len(children),
		Counts: make(map[domain.Status]int, len(domain.AllStatuses)),
	}
	if len(children) == 0 {
		return ev
	}

	var sum float64
	for _, c := range children {
		s, signal := eval(c)
		sum += Weight(s)
		ev.Counts[s]++
		if signal {
			ev.HasSignal = true
		}
	}
	if !ev.HasSignal {
		return ev
	}

	ev.Score = sum / float64(len(children)) * 100
	ev.Status = th.classify(ev.Score)
	return ev
}
