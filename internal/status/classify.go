package status

import (
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// ClassifyTask classifies t against the engine's clock.
func (e *Engine) ClassifyTask(t domain.Task) domain.Status {
	return e.ClassifyTaskAt(t, e.clock.Now())
}

// ClassifyTaskAt classifies t as of now.
//
// A forced task keeps its forced status (overdue when the forced value is
// missing or not forceable). A task that was never completed is neutral.
// Otherwise the elapsed share of the recurrence interval, counted in whole
// calendar days, is compared against the task thresholds.
func (e *Engine) ClassifyTaskAt(t domain.Task, now time.Time) domain.Status {
	if t.ForcedIncomplete {
		if t.ForcedStatus != nil && t.ForcedStatus.IsForceable() {
			return *t.ForcedStatus
		}
		return domain.StatusOverdue
	}
	if t.LastCompleted == nil {
		return domain.StatusNeutral
	}
	return e.task.classify(PercentElapsed(*t.LastCompleted, t.FrequencyDays, now))
}

// DaysSinceCompletion counts calendar-day boundaries between completed and
// now, in now's location. Two instants on the same calendar day give 0; a
// completion after now gives a negative count.
func DaysSinceCompletion(completed, now time.Time) int {
	cy, cm, cd := completed.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	from := time.Date(cy, cm, cd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// PercentElapsed is the share of the recurrence interval that has passed
// since completed. Non-positive frequencies are treated as one day.
func PercentElapsed(completed time.Time, frequencyDays int, now time.Time) float64 {
	freq := effectiveFrequency(frequencyDays)
	return float64(DaysSinceCompletion(completed, now)) / float64(freq) * 100
}

// NextDue returns the calendar date on which t reaches 100% of its interval,
// or nil if it was never completed. The date is taken in the completion
// timestamp's own location.
func NextDue(t domain.Task) *time.Time {
	if t.LastCompleted == nil {
		return nil
	}
	return NextDueIn(t, t.LastCompleted.Location())
}

// NextDueIn is NextDue with the completion date read in loc, matching how
// ClassifyTaskAt counts days for a "now" in loc.
func NextDueIn(t domain.Task, loc *time.Location) *time.Time {
	if t.LastCompleted == nil {
		return nil
	}
	y, m, d := t.LastCompleted.In(loc).Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, effectiveFrequency(t.FrequencyDays))
	return &due
}

func effectiveFrequency(days int) int {
	if days < 1 {
		return 1
	}
	return days
}
