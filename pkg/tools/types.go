// Package tools implements the tool registry and router: tool contracts are
// declared once at startup, and every invocation passes through permission
// checks, budget accounting and audit logging before reaching a handler.
package tools

import (
	"context"
	"time"

	"github.com/NoAme666/aiquant/pkg/config"
)

// Schema is the runtime form of a tool contract.
type Schema struct {
	Name                  string
	Description           string
	Category              config.ToolCategory
	Parameters            map[string]any
	BaseCost              int
	CostPerUnit           float64
	CostUnit              string // rows | indicators | params | ""
	RequiresApprovalAbove int
	AllowedDepartments    []string
}

// Request is a single tool invocation as seen by the router and handlers.
type Request struct {
	Agent      string
	Department string
	Tool       string
	Args       map[string]any

	// Optional invocation context.
	MeetingID string
	CycleID   string
}

// Result is what a handler returns. Success gates budget deduction.
type Result struct {
	Success         bool           `json:"success"`
	Data            any            `json:"data,omitempty"`
	Error           string         `json:"error,omitempty"`
	DataVersionHash string         `json:"data_version_hash,omitempty"`
	ExperimentID    string         `json:"experiment_id,omitempty"`
	ArtifactIDs     []string       `json:"artifact_ids,omitempty"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     time.Time      `json:"completed_at"`
	Meta            map[string]any `json:"meta,omitempty"`
}

// Handler executes tools of one category. Handlers are an open set,
// registered at startup; adding one must not require touching the router.
type Handler interface {
	// Execute runs the tool. A returned error means the handler itself
	// failed; tool-level failures are reported through Result.Success.
	Execute(ctx context.Context, req Request) (*Result, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, req Request) (*Result, error)

// Execute implements Handler.
func (f HandlerFunc) Execute(ctx context.Context, req Request) (*Result, error) {
	return f(ctx, req)
}

// CallStatus is the audit lifecycle of a tool call.
type CallStatus string

// Call statuses.
const (
	StatusRequested CallStatus = "requested"
	StatusRejected  CallStatus = "rejected"
	StatusExecuting CallStatus = "executing"
	StatusCompleted CallStatus = "completed"
	StatusFailed    CallStatus = "failed"
)

// AuditRecord is one append-only row in the tool-call audit trail.
type AuditRecord struct {
	ID              string         `json:"id"`
	Agent           string         `json:"agent"`
	Tool            string         `json:"tool"`
	Args            map[string]any `json:"args,omitempty"`
	EstimatedCost   int            `json:"estimated_cost"`
	ActualCost      int            `json:"actual_cost"`
	Status          CallStatus     `json:"status"`
	Error           string         `json:"error,omitempty"`
	DataVersionHash string         `json:"data_version_hash,omitempty"`
	ExperimentID    string         `json:"experiment_id,omitempty"`
	MeetingID       string         `json:"meeting_id,omitempty"`
	CycleID         string         `json:"cycle_id,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}

// AuditSink receives audit rows. Rows must be durable before the tool result
// is returned to the caller.
type AuditSink interface {
	Record(ctx context.Context, rec AuditRecord) error
}
