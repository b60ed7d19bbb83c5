package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/domain"
)

func FormatRoomList(rooms []*domain.Room) string {
	if len(rooms) == 0 {
		return Dim("No rooms.") + "\n"
	}
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{TruncID(r.ID), Bold(r.Name), Dim(r.CreatedAt.Local().Format("2006-01-02"))})
	}
	return RenderTable([]string{"ID", "NAME", "CREATED"}, rows)
}

func FormatAreaList(areas []*domain.Area) string {
	if len(areas) == 0 {
		return Dim("No areas.") + "\n"
	}
	rows := make([][]string, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, []string{TruncID(a.ID), Bold(a.Name), TruncID(a.RoomID)})
	}
	return RenderTable([]string{"ID", "NAME", "ROOM"}, rows)
}

// FormatTaskList renders tasks with the status each one classifies to.
// statuses is keyed by task ID; missing entries render as neutral.
func FormatTaskList(tasks []*domain.Task, statuses map[string]domain.Status, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Name),
			StatusPill(statuses[t.ID]),
			Every(t.FrequencyDays),
			lastDone(t, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "STATUS", "EVERY", "LAST DONE"}, rows)
}

// FormatTaskDetail renders a single task with its derived status fields.
func FormatTaskDetail(t *domain.Task, view app.TaskStatusView, now time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-14s", label)), value)
	}

	line("Status", StatusPill(view.Status))
	line("Frequency", Every(t.FrequencyDays))
	line("Last done", lastDone(t, now))
	if view.PercentElapsed != nil {
		line("Elapsed", fmt.Sprintf("%.0f%%", *view.PercentElapsed))
	}
	if view.NextDue != nil {
		line("Next due", fmt.Sprintf("%s (%s)", view.NextDue.Format("2006-01-02"), RelativeDay(*view.NextDue, now)))
	}
	if t.ForcedIncomplete {
		forced := domain.StatusOverdue
		if t.ForcedStatus != nil && t.ForcedStatus.IsForceable() {
			forced = *t.ForcedStatus
		}
		line("Forced", StatusColor(forced).Render(string(forced)))
	}
	line("ID", Dim(t.ID))

	return RenderBox(t.Name, b.String())
}

func lastDone(t *domain.Task, now time.Time) string {
	if t.LastCompleted == nil {
		return Dim("never")
	}
	return RelativeDay(*t.LastCompleted, now)
}
