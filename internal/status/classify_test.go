package status

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTask_ForcedIgnoresHistory(t *testing.T) {
	e := newTestEngine(t)

	for _, s := range []domain.Status{domain.StatusSoon, domain.StatusDue, domain.StatusOverdue} {
		for _, days := range []int{-3, 0, 1, 30, 400} {
			for _, freq := range []int{-1, 0, 1, 7, 365} {
				task := completedDaysAgo(days, freq)
				task.ForcedIncomplete = true
				fs := s
				task.ForcedStatus = &fs
				assert.Equal(t, s, e.ClassifyTask(task), "forced=%s days=%d freq=%d", s, days, freq)
			}
		}
	}
}

func TestClassifyTask_ForcedWithoutStatusIsOverdue(t *testing.T) {
	e := newTestEngine(t)

	task := completedDaysAgo(0, 7)
	task.ForcedIncomplete = true
	assert.Equal(t, domain.StatusOverdue, e.ClassifyTask(task))

	complete := domain.StatusComplete
	task.ForcedStatus = &complete
	assert.Equal(t, domain.StatusOverdue, e.ClassifyTask(task), "non-forceable value falls back to overdue")

	bogus := domain.Status("later")
	task.ForcedStatus = &bogus
	assert.Equal(t, domain.StatusOverdue, e.ClassifyTask(task))
}

func TestClassifyTask_ForcedDueNeverCompleted(t *testing.T) {
	e := newTestEngine(t)
	due := domain.StatusDue
	task := domain.Task{ForcedIncomplete: true, ForcedStatus: &due, FrequencyDays: 7}
	assert.Equal(t, domain.StatusDue, e.ClassifyTask(task))
}

func TestClassifyTask_NeverCompletedIsNeutral(t *testing.T) {
	e := newTestEngine(t)
	for _, freq := range []int{-5, 0, 1, 7, 90} {
		assert.Equal(t, domain.StatusNeutral, e.ClassifyTask(domain.Task{FrequencyDays: freq}))
	}
}

func TestClassifyTask_FiveOfSevenDays(t *testing.T) {
	task := completedDaysAgo(5, 7)
	assert.InDelta(t, 71.43, PercentElapsed(*task.LastCompleted, 7, testNow), 0.01)

	// 71.4% is inside the default complete band (<= 75%).
	assert.Equal(t, domain.StatusComplete, newTestEngine(t).ClassifyTask(task))

	// A tighter curve moves the same task into soon.
	tight := newTestEngine(t, WithTaskThresholds(TaskThresholds{Complete: 70, Soon: 90, Due: 95}))
	assert.Equal(t, domain.StatusSoon, tight.ClassifyTask(task))
}

func TestClassifyTask_EightOfSevenDaysIsOverdue(t *testing.T) {
	task := completedDaysAgo(8, 7)
	assert.InDelta(t, 114.29, PercentElapsed(*task.LastCompleted, 7, testNow), 0.01)
	assert.Equal(t, domain.StatusOverdue, newTestEngine(t).ClassifyTask(task))
}

func TestClassifyTask_BandBoundaries(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		days int
		want domain.Status
	}{
		{0, domain.StatusComplete},
		{15, domain.StatusComplete}, // 75%
		{16, domain.StatusSoon},     // 80%
		{18, domain.StatusSoon},     // 90%
		{19, domain.StatusDue},      // 95%
		{20, domain.StatusOverdue},  // 100%
		{45, domain.StatusOverdue},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.ClassifyTask(completedDaysAgo(tc.days, 20)), "days=%d", tc.days)
	}
}

func TestClassifyTask_FutureCompletionIsComplete(t *testing.T) {
	e := newTestEngine(t)
	task := completedDaysAgo(-10, 7)
	assert.Equal(t, -10, DaysSinceCompletion(*task.LastCompleted, testNow))
	assert.Equal(t, domain.StatusComplete, e.ClassifyTask(task))
}

func TestClassifyTask_NonPositiveFrequencyClampedToOneDay(t *testing.T) {
	e := newTestEngine(t)
	for _, freq := range []int{0, -7} {
		assert.Equal(t, domain.StatusComplete, e.ClassifyTask(completedDaysAgo(0, freq)), "freq=%d", freq)
		assert.Equal(t, domain.StatusOverdue, e.ClassifyTask(completedDaysAgo(1, freq)), "freq=%d", freq)
	}
}

func TestDaysSinceCompletion_SameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 3, 15, 0, 5, 0, 0, time.UTC)
	night := time.Date(2025, 3, 15, 23, 55, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysSinceCompletion(morning, night))
	assert.Equal(t, 0, DaysSinceCompletion(night, morning))
}

func TestDaysSinceCompletion_CrossesMidnight(t *testing.T) {
	late := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysSinceCompletion(late, early))
}

func TestDaysSinceCompletion_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 15th is 21:00 on the 14th in UTC-5.
	completed := time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysSinceCompletion(completed, now))
}

func TestClassifyTask_MonotonicInElapsedDays(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		freq := rng.Intn(60) + 1
		prev := e.ClassifyTask(completedDaysAgo(-5, freq))
		for days := -4; days <= freq*2; days++ {
			cur := e.ClassifyTask(completedDaysAgo(days, freq))
			require.LessOrEqual(t, Priority(cur), Priority(prev),
				"freq=%d days=%d moved from %s back to %s", freq, days, prev, cur)
			prev = cur
		}
	}
}

func TestClassifyTask_ReadsInjectedClock(t *testing.T) {
	completed := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	task := domain.Task{LastCompleted: &completed, FrequencyDays: 10}

	early, err := NewEngine(WithClock(FixedClock{At: completed.AddDate(0, 0, 2)}))
	require.NoError(t, err)
	late, err := NewEngine(WithClock(FixedClock{At: completed.AddDate(0, 0, 12)}))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusComplete, early.ClassifyTask(task))
	assert.Equal(t, domain.StatusOverdue, late.ClassifyTask(task))
}

func TestNextDue(t *testing.T) {
	assert.Nil(t, NextDue(neverDone()))

	completed := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	due := NextDue(domain.Task{LastCompleted: &completed, FrequencyDays: 7})
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), *due)

	clamped := NextDue(domain.Task{LastCompleted: &completed, FrequencyDays: 0})
	require.NotNil(t, clamped)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *clamped)
}

func TestNextDueIn_UsesRequestedLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 18:30 UTC on the 10th is already the 11th in Tokyo.
	completed := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	task := domain.Task{LastCompleted: &completed, FrequencyDays: 2}

	due := NextDueIn(task, tokyo)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, tokyo), *due)

	assert.Nil(t, NextDueIn(neverDone(), tokyo))
}
