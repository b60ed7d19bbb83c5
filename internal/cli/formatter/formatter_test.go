package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "█████░░░░░", RenderProgress(0.5, 10))
	assert.Equal(t, "░░░░", RenderProgress(-1, 4))
	assert.Equal(t, "████", RenderProgress(3, 4))
	assert.Equal(t, "", RenderProgress(0.5, 0))
}

func TestScoreBar_NoSignal(t *testing.T) {
	out := stripANSI(ScoreBar(0, domain.StatusNeutral, false, 4))
	assert.Equal(t, "····    -", out)
}

func TestScoreBar_ShowsPercent(t *testing.T) {
	out := stripANSI(ScoreBar(75, domain.StatusSoon, true, 4))
	assert.Equal(t, "███░  75%", out)
}

func TestStatusPill(t *testing.T) {
	assert.Equal(t, "▲ OVERDUE", stripANSI(StatusPill(domain.StatusOverdue)))
	assert.Equal(t, "✔ COMPLETE", stripANSI(StatusPill(domain.StatusComplete)))
	assert.Equal(t, "· NEUTRAL", stripANSI(StatusPill("")))
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(10 * time.Hour), "Today"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, -1), "Yesterday"},
		{now.AddDate(0, 0, 5), "In 5d"},
		{now.AddDate(0, 0, 21), "In 3w"},
		{now.AddDate(0, 0, -10), "10d ago"},
		{now.AddDate(0, 0, -28), "4w ago"},
		{now.AddDate(0, 0, -90), "3mo ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeDay(tt.t, now), tt.t.String())
	}
}

func TestEveryAndDaysAgo(t *testing.T) {
	assert.Equal(t, "daily", Every(1))
	assert.Equal(t, "weekly", Every(7))
	assert.Equal(t, "every 30d", Every(30))
	assert.Equal(t, "today", DaysAgo(0))
	assert.Equal(t, "1 day ago", DaysAgo(1))
	assert.Equal(t, "4 days ago", DaysAgo(4))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleRed.Render("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Label: "Kitchen", Status: domain.StatusDue, Children: []TreeItem{
			{Label: "Sink", Status: domain.StatusOverdue},
			{Label: "Floor", Status: domain.StatusComplete},
		}},
		{Label: "Attic", Status: domain.StatusNeutral},
	}))
	assert.Equal(t, "├─ ● Kitchen\n│  ├─ ▲ Sink\n│  └─ ✔ Floor\n└─ · Attic\n", out)
}

func sampleStatus() *app.StatusResponse {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	days := 3
	pct := 42.9
	next := time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)
	return &app.StatusResponse{
		Summary: app.StatusSummary{
			GeneratedAt:   now,
			RoomCount:     1,
			AreaCount:     1,
			TaskCount:     2,
			TasksByStatus: map[domain.Status]int{domain.StatusComplete: 1, domain.StatusNeutral: 1},
		},
		Rooms: []app.RoomStatusView{{
			RoomID: "11111111-2222", RoomName: "Kitchen", Status: domain.StatusSoon, Score: 75, HasSignal: true,
			Areas: []app.AreaStatusView{{
				AreaID: "a1", AreaName: "Counters", Status: domain.StatusSoon, Score: 75, HasSignal: true, TaskCount: 2,
				Tasks: []app.TaskStatusView{
					{TaskID: "t1", TaskName: "Wipe", Status: domain.StatusComplete, FrequencyDays: 7, DaysSince: &days, PercentElapsed: &pct, NextDue: &next},
					{TaskID: "t2", TaskName: "Descale", Status: domain.StatusNeutral, FrequencyDays: 30},
				},
			}},
		}},
	}
}

func TestFormatStatus(t *testing.T) {
	out := stripANSI(FormatStatus(sampleStatus()))
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "◐ SOON")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "11111111")
	assert.NotContains(t, out, "11111111-2222")
	assert.Contains(t, out, "Tasks: 1 complete · 1 neutral")
}

func TestFormatStatus_Empty(t *testing.T) {
	out := stripANSI(FormatStatus(&app.StatusResponse{}))
	assert.Contains(t, out, "No rooms yet")
}

func TestFormatStatusTree(t *testing.T) {
	out := stripANSI(FormatStatusTree(sampleStatus()))
	assert.Contains(t, out, "└─ ◐ Kitchen")
	assert.Contains(t, out, "└─ ◐ Counters")
	assert.Contains(t, out, "✔ Wipe")
	assert.Contains(t, out, "3 days ago · weekly · due in 4d")
	assert.Contains(t, out, "never done · every 30d")
}

func TestFormatCounts_None(t *testing.T) {
	assert.Equal(t, "Rooms: none\n", stripANSI(FormatCounts("Rooms", nil)))
}

func TestFormatTaskList(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	done := now.AddDate(0, 0, -2)
	tasks := []*domain.Task{
		{ID: "task-0001-xyz", Name: "Vacuum", FrequencyDays: 7, LastCompleted: &done},
		{ID: "task-0002-xyz", Name: "Windows", FrequencyDays: 90},
	}
	out := stripANSI(FormatTaskList(tasks, map[string]domain.Status{"task-0001-xyz": domain.StatusComplete}, now))
	assert.Contains(t, out, "Vacuum")
	assert.Contains(t, out, "✔ COMPLETE")
	assert.Contains(t, out, "2d ago")
	assert.Contains(t, out, "· NEUTRAL")
	assert.Contains(t, out, "never")
}

func TestFormatTaskDetail_ForcedWithoutStatusShowsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	task := &domain.Task{ID: "t1", Name: "Mop", FrequencyDays: 7, ForcedIncomplete: true}
	out := stripANSI(FormatTaskDetail(task, app.TaskStatusView{Status: domain.StatusOverdue, Forced: true}, now))
	assert.Contains(t, out, "MOP")
	assert.Contains(t, out, "▲ OVERDUE")
	assert.Contains(t, out, "overdue")
}

func TestFormatRoomDetail(t *testing.T) {
	resp := sampleStatus()
	out := stripANSI(FormatRoomDetail(resp.Rooms[0], resp.Summary.GeneratedAt))
	assert.True(t, strings.HasPrefix(out, "Kitchen\n◐ SOON"))
	assert.Contains(t, out, "└─ ◐ Counters")
	assert.Contains(t, out, "   ├─ ✔ Wipe")
	assert.Contains(t, out, "   └─ · Descale")
}

func TestFormatRoomDetail_NoAreas(t *testing.T) {
	out := stripANSI(FormatRoomDetail(app.RoomStatusView{RoomName: "Hall", Status: domain.StatusNeutral}, time.Now()))
	assert.Contains(t, out, "No areas in this room.")
}
