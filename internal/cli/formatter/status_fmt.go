package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/domain"
)

const scoreBarWidth = 12

// urgency order used for count summaries
var summaryOrder = []domain.Status{
	domain.StatusOverdue,
	domain.StatusDue,
	domain.StatusSoon,
	domain.StatusComplete,
	domain.StatusNeutral,
}

// FormatStatus renders the household status report: one row per room,
// followed by per-status task counts.
func FormatStatus(resp *app.StatusResponse) string {
	if resp == nil || len(resp.Rooms) == 0 {
		return RenderBox("Status", Dim("No rooms yet. Add one with `homekeep room add <name>`."))
	}

	headers := []string{"ROOM", "STATUS", "HEALTH", "AREAS", "TASKS", "ID"}
	rows := make([][]string, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		taskCount := 0
		for _, a := range r.Areas {
			taskCount += a.TaskCount
		}
		rows = append(rows, []string{
			Bold(r.RoomName),
			StatusPill(r.Status),
			ScoreBar(r.Score, r.Status, r.HasSignal, scoreBarWidth),
			fmt.Sprintf("%d", len(r.Areas)),
			fmt.Sprintf("%d", taskCount),
			TruncID(r.RoomID),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatCounts("Tasks", resp.Summary.TasksByStatus))
	return RenderBox("Status", b.String())
}

// FormatStatusTree renders the full room, area and task hierarchy.
func FormatStatusTree(resp *app.StatusResponse) string {
	if resp == nil || len(resp.Rooms) == 0 {
		return Dim("No rooms yet.") + "\n"
	}
	items := make([]TreeItem, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		items = append(items, roomTreeItem(r, resp.Summary.GeneratedAt))
	}
	return RenderTree(items)
}

// FormatRoomDetail renders one room's header line followed by its area tree.
func FormatRoomDetail(r app.RoomStatusView, now time.Time) string {
	var b strings.Builder
	b.WriteString(Bold(r.RoomName) + "\n")
	b.WriteString(StatusPill(r.Status) + "  " + ScoreBar(r.Score, r.Status, r.HasSignal, scoreBarWidth) + "\n\n")
	if len(r.Areas) == 0 {
		b.WriteString(Dim("No areas in this room.") + "\n")
		return b.String()
	}
	b.WriteString(RenderTree(roomTreeItem(r, now).Children))
	return b.String()
}

func roomTreeItem(r app.RoomStatusView, now time.Time) TreeItem {
	room := TreeItem{
		Label:  r.RoomName,
		Status: r.Status,
		Badge:  scoreBadge(r.Score, r.HasSignal),
	}
	for _, a := range r.Areas {
		area := TreeItem{
			Label:  a.AreaName,
			Status: a.Status,
			Badge:  scoreBadge(a.Score, a.HasSignal),
		}
		for _, t := range a.Tasks {
			area.Children = append(area.Children, TreeItem{
				Label:  t.TaskName,
				Status: t.Status,
				Badge:  taskBadge(t, now),
			})
		}
		room.Children = append(room.Children, area)
	}
	return room
}

// FormatCounts renders "Tasks: 2 overdue · 1 due · 4 complete", skipping zeros.
func FormatCounts(label string, counts map[domain.Status]int) string {
	parts := make([]string, 0, len(summaryOrder))
	for _, s := range summaryOrder {
		if n := counts[s]; n > 0 {
			parts = append(parts, StatusColor(s).Render(fmt.Sprintf("%d %s", n, s)))
		}
	}
	if len(parts) == 0 {
		return Dim(label+": none") + "\n"
	}
	return Bold(label+":") + " " + strings.Join(parts, Dim(" · ")) + "\n"
}

func scoreBadge(score float64, hasSignal bool) string {
	if !hasSignal {
		return Dim("no signal")
	}
	return Dim(fmt.Sprintf("%.0f%%", score))
}

func taskBadge(t app.TaskStatusView, now time.Time) string {
	var parts []string
	if t.Forced {
		parts = append(parts, "forced")
	}
	if t.DaysSince != nil {
		parts = append(parts, DaysAgo(*t.DaysSince))
	} else if !t.Forced {
		parts = append(parts, "never done")
	}
	parts = append(parts, Every(t.FrequencyDays))
	if t.NextDue != nil && !t.Forced {
		parts = append(parts, "due "+strings.ToLower(RelativeDay(*t.NextDue, now)))
	}
	return Dim(strings.Join(parts, " · "))
}
