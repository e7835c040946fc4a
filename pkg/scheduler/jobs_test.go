package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-03-02 10:30 UTC.
func monday() time.Time {
	return time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
}

func TestDailyJobSchedule(t *testing.T) {
	j := &Job{Name: "standup", Kind: JobDaily, Hour: 9, Minute: 0, Enabled: true}
	j.seed(monday())

	// 09:00 already passed today, so next run is tomorrow.
	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), j.NextRun)

	evening := &Job{Name: "compliance", Kind: JobDaily, Hour: 18, Minute: 0, Enabled: true}
	evening.seed(monday())
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), evening.NextRun)
}

func TestWeeklyJobSchedule(t *testing.T) {
	j := &Job{Name: "board", Kind: JobWeekly, Day: time.Friday, Hour: 16, Minute: 0, Enabled: true}
	j.seed(monday())
	assert.Equal(t, time.Date(2026, 3, 6, 16, 0, 0, 0, time.UTC), j.NextRun)

	// Seeding on Friday after 16:00 rolls to next week.
	fridayEvening := time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)
	j.seed(fridayEvening)
	assert.Equal(t, time.Date(2026, 3, 13, 16, 0, 0, 0, time.UTC), j.NextRun)
}

func TestIntervalJobRuns(t *testing.T) {
	runs := 0
	j := &Job{
		Name: "health", Kind: JobInterval, Every: 5 * time.Minute, Enabled: true,
		Handler: func(time.Time) { runs++ },
	}
	now := monday()
	j.seed(now)

	assert.False(t, j.runIfDue(now.Add(time.Minute)), "not due yet")
	require.True(t, j.runIfDue(now.Add(6*time.Minute)))
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, j.RunCount)
	assert.Equal(t, now.Add(11*time.Minute), j.NextRun)
}

func TestDisabledJobNeverRuns(t *testing.T) {
	j := &Job{Name: "off", Kind: JobInterval, Every: time.Minute, Enabled: false,
		Handler: func(time.Time) { t.Fatal("disabled job ran") }}
	j.seed(monday())
	assert.False(t, j.runIfDue(monday().Add(time.Hour)))
}

func TestDailyJobRunsOncePerDay(t *testing.T) {
	runs := 0
	j := &Job{
		Name: "standup", Kind: JobDaily, Hour: 9, Minute: 0, Enabled: true,
		Handler: func(time.Time) { runs++ },
	}
	j.seed(monday().Add(-2 * time.Hour)) // 08:30, before 09:00

	require.True(t, j.runIfDue(monday())) // 10:30, past due
	assert.False(t, j.runIfDue(monday().Add(time.Hour)), "already ran today")
	assert.Equal(t, 1, runs)
	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), j.NextRun)
}
