// Package agent implements the per-agent runtime: the priority task queue,
// the cooperative agent loop that drains the mailbox and executes tasks, and
// the role-specific behavior extensions.
package agent

import (
	"time"

	"github.com/google/uuid"
)

// TaskKind identifies the work a task carries.
type TaskKind string

// Common task kinds handled by every runtime.
const (
	TaskThink   TaskKind = "think"
	TaskRespond TaskKind = "respond"
	TaskReview  TaskKind = "review"
	TaskReport  TaskKind = "report"
	TaskMeeting TaskKind = "meeting"
	TaskExecute TaskKind = "execute"
)

// Role-specific task kinds.
const (
	TaskFindOpportunity  TaskKind = "find_research_opportunity"
	TaskValidateIdea     TaskKind = "validate_idea"
	TaskObserveMarket    TaskKind = "observe_market"
	TaskRunBacktest      TaskKind = "run_backtest"
	TaskReviewProposal   TaskKind = "review_proposal"
	TaskComplianceReview TaskKind = "compliance_review"
	TaskEvaluateTriggers TaskKind = "evaluate_triggers"
	TaskScanIntel        TaskKind = "scan_intelligence"
	TaskPlanExecution    TaskKind = "plan_execution"
)

// Priority orders task execution. Higher pops first; ties break FIFO.
type Priority int

// Task priorities.
const (
	PriorityLow    Priority = 0
	PriorityNormal Priority = 1
	PriorityHigh   Priority = 2
	PriorityUrgent Priority = 3
)

// Task is one unit of agent work. A task belongs to exactly one agent's
// queue.
type Task struct {
	ID         string
	Kind       TaskKind
	Payload    map[string]any
	Priority   Priority
	Deadline   *time.Time
	Retries    int
	MaxRetries int
	CreatedAt  time.Time

	seq uint64 // assigned by the queue for FIFO tie-breaking
}

// NewTask creates a task with a fresh id.
func NewTask(kind TaskKind, payload map[string]any, priority Priority) *Task {
	return &Task{
		ID:        uuid.New().String(),
		Kind:      kind,
		Payload:   payload,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}

// WithDeadline sets an absolute deadline. A task whose deadline passes before
// it starts is failed without execution.
func (t *Task) WithDeadline(d time.Time) *Task {
	t.Deadline = &d
	return t
}

// WithMaxRetries sets the transient-failure retry budget.
func (t *Task) WithMaxRetries(n int) *Task {
	t.MaxRetries = n
	return t
}

// Expired reports whether the deadline has passed.
func (t *Task) Expired(now time.Time) bool {
	return t.Deadline != nil && now.After(*t.Deadline)
}

// payloadString extracts a string payload field, empty when absent.
func (t *Task) payloadString(key string) string {
	if t.Payload == nil {
		return ""
	}
	s, _ := t.Payload[key].(string)
	return s
}
