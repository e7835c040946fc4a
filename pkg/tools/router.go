package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/google/uuid"
)

// Router drives every tool invocation through the same pipeline:
// schema lookup → permission check → cost estimate → budget check →
// approval gate → audit "requested" → handler dispatch → deduct on success →
// terminal audit row.
//
// Budget is deducted iff the handler reported success. Concurrent calls from
// the same agent serialize on the account-deduction step inside the budget
// manager.
type Router struct {
	registry    *Registry
	permissions *Permissions
	budgets     *budget.Manager
	audit       AuditSink
}

// NewRouter wires the router. audit must not be nil: the audit trail is part
// of the router's contract.
func NewRouter(registry *Registry, permissions *Permissions, budgets *budget.Manager, audit AuditSink) *Router {
	if registry == nil {
		panic("NewRouter: registry must not be nil")
	}
	if audit == nil {
		panic("NewRouter: audit sink must not be nil")
	}
	return &Router{
		registry:    registry,
		permissions: permissions,
		budgets:     budgets,
		audit:       audit,
	}
}

// Registry returns the underlying tool registry.
func (r *Router) Registry() *Registry { return r.registry }

// Execute runs one tool call through the full pipeline.
func (r *Router) Execute(ctx context.Context, req Request) (*Result, error) {
	log := slog.With("agent", req.Agent, "tool", req.Tool)

	// 1. Schema lookup.
	schema, err := r.registry.Get(req.Tool)
	if err != nil {
		r.recordRejection(ctx, req, 0, err)
		return nil, err
	}

	// 2. Permission check.
	if err := r.permissions.Check(schema, req); err != nil {
		r.recordRejection(ctx, req, 0, err)
		return nil, err
	}

	// 3. Cost estimate and budget resolution.
	cost := EstimateCost(schema, req.Args)
	if maxCost := r.permissions.MaxCost(req.Tool); maxCost > 0 && cost > maxCost {
		err := fmt.Errorf("%w: estimated cost %d exceeds max_cost %d",
			ErrPermissionDenied, cost, maxCost)
		r.recordRejection(ctx, req, cost, err)
		return nil, err
	}

	account, err := r.budgets.Resolve(req.Agent)
	if err != nil {
		r.recordRejection(ctx, req, cost, err)
		return nil, err
	}
	if !r.budgets.CanAfford(account, cost) {
		err := fmt.Errorf("%w: account %s has %d points, call costs %d",
			budget.ErrInsufficientBudget, account.ID, r.budgets.Remaining(account), cost)
		r.recordRejection(ctx, req, cost, err)
		return nil, err
	}

	// 4. Approval threshold.
	if threshold, approvers := r.permissions.ApprovalThreshold(schema, req.Tool); threshold > 0 && cost > threshold {
		err := &ApprovalRequiredError{
			Tool:      req.Tool,
			Cost:      cost,
			Threshold: threshold,
			Approvers: approvers,
		}
		// Approval-gated calls are logged as requested, not rejected: the
		// call may be retried once approved.
		r.record(ctx, AuditRecord{
			ID:            uuid.New().String(),
			Agent:         req.Agent,
			Tool:          req.Tool,
			Args:          req.Args,
			EstimatedCost: cost,
			Status:        StatusRequested,
			Error:         err.Error(),
			MeetingID:     req.MeetingID,
			CycleID:       req.CycleID,
			Timestamp:     time.Now(),
		})
		return nil, err
	}

	// 5. Audit "requested", then dispatch.
	callID := uuid.New().String()
	r.record(ctx, AuditRecord{
		ID:            callID,
		Agent:         req.Agent,
		Tool:          req.Tool,
		Args:          req.Args,
		EstimatedCost: cost,
		Status:        StatusRequested,
		MeetingID:     req.MeetingID,
		CycleID:       req.CycleID,
		Timestamp:     time.Now(),
	})

	handler, err := r.registry.HandlerFor(schema)
	if err != nil {
		r.recordTerminal(ctx, callID, req, cost, 0, StatusFailed, err.Error(), nil)
		return nil, err
	}

	started := time.Now()
	result, err := handler.Execute(ctx, req)
	if err != nil {
		wrapped := fmt.Errorf("%w: %s: %w", ErrHandlerFailure, req.Tool, err)
		r.recordTerminal(ctx, callID, req, cost, 0, StatusFailed, wrapped.Error(), nil)
		return nil, wrapped
	}
	if result == nil {
		result = &Result{Success: false, Error: "handler returned no result"}
	}
	if result.StartedAt.IsZero() {
		result.StartedAt = started
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	// 6. Deduct on success only.
	actualCost := 0
	if result.Success {
		if err := r.budgets.Deduct(ctx, account, cost); err != nil {
			// Lost the race to a concurrent spender.
			r.recordTerminal(ctx, callID, req, cost, 0, StatusRejected, err.Error(), result)
			return nil, err
		}
		actualCost = cost
	}

	// 7. Terminal audit row.
	status := StatusCompleted
	if !result.Success {
		status = StatusFailed
	}
	r.recordTerminal(ctx, callID, req, cost, actualCost, status, result.Error, result)

	log.Debug("Tool call finished",
		"status", status,
		"cost", actualCost,
		"duration", result.CompletedAt.Sub(result.StartedAt))
	return result, nil
}

func (r *Router) recordRejection(ctx context.Context, req Request, cost int, cause error) {
	r.record(ctx, AuditRecord{
		ID:            uuid.New().String(),
		Agent:         req.Agent,
		Tool:          req.Tool,
		Args:          req.Args,
		EstimatedCost: cost,
		Status:        StatusRejected,
		Error:         cause.Error(),
		MeetingID:     req.MeetingID,
		CycleID:       req.CycleID,
		Timestamp:     time.Now(),
	})
}

func (r *Router) recordTerminal(ctx context.Context, callID string, req Request, estimated, actual int, status CallStatus, errMsg string, result *Result) {
	rec := AuditRecord{
		ID:            callID,
		Agent:         req.Agent,
		Tool:          req.Tool,
		Args:          req.Args,
		EstimatedCost: estimated,
		ActualCost:    actual,
		Status:        status,
		Error:         errMsg,
		MeetingID:     req.MeetingID,
		CycleID:       req.CycleID,
		Timestamp:     time.Now(),
	}
	if result != nil {
		rec.DataVersionHash = result.DataVersionHash
		rec.ExperimentID = result.ExperimentID
	}
	r.record(ctx, rec)
}

func (r *Router) record(ctx context.Context, rec AuditRecord) {
	if err := r.audit.Record(ctx, rec); err != nil {
		slog.Error("Failed to write audit record",
			"tool", rec.Tool,
			"agent", rec.Agent,
			"status", rec.Status,
			"error", err)
	}
}
