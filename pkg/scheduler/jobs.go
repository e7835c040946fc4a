package scheduler

import (
	"sync"
	"time"
)

// JobKind is the recurrence pattern of a scheduled job.
type JobKind string

// Job kinds.
const (
	JobInterval JobKind = "interval"
	JobDaily    JobKind = "daily"
	JobWeekly   JobKind = "weekly"
)

// Job is one scheduled unit of work with its recurrence state.
type Job struct {
	Name    string
	Kind    JobKind
	Handler func(now time.Time)

	// Interval jobs.
	Every time.Duration

	// Daily and weekly jobs.
	Hour   int
	Minute int
	Day    time.Weekday // weekly only

	mu       sync.Mutex
	Enabled  bool
	LastRun  time.Time
	NextRun  time.Time
	RunCount int
}

// seed computes the first next-run time from now.
func (j *Job) seed(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.NextRun = j.nextAfter(now)
}

// runIfDue executes the job when its next-run time has passed, then advances
// the schedule. Returns whether the job ran.
func (j *Job) runIfDue(now time.Time) bool {
	j.mu.Lock()
	if !j.Enabled || now.Before(j.NextRun) {
		j.mu.Unlock()
		return false
	}
	j.LastRun = now
	j.RunCount++
	j.NextRun = j.nextAfter(now)
	handler := j.Handler
	j.mu.Unlock()

	if handler != nil {
		handler(now)
	}
	return true
}

// nextAfter computes the next firing time strictly after now. Callers hold
// the job lock.
func (j *Job) nextAfter(now time.Time) time.Time {
	switch j.Kind {
	case JobInterval:
		return now.Add(j.Every)
	case JobDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(), j.Hour, j.Minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next
	case JobWeekly:
		next := time.Date(now.Year(), now.Month(), now.Day(), j.Hour, j.Minute, 0, 0, now.Location())
		for next.Weekday() != j.Day || !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next
	}
	return now
}

// JobStatus is a snapshot of one job's schedule state.
type JobStatus struct {
	Name     string    `json:"name"`
	Kind     JobKind   `json:"kind"`
	Enabled  bool      `json:"enabled"`
	LastRun  time.Time `json:"last_run"`
	NextRun  time.Time `json:"next_run"`
	RunCount int       `json:"run_count"`
}

func (j *Job) status() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobStatus{
		Name:     j.Name,
		Kind:     j.Kind,
		Enabled:  j.Enabled,
		LastRun:  j.LastRun,
		NextRun:  j.NextRun,
		RunCount: j.RunCount,
	}
}
