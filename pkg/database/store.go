package database

import (
	"context"
	"fmt"

	"github.com/NoAme666/aiquant/ent"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
	"github.com/NoAme666/aiquant/ent/toolcall"
	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/tools"
)

// Store adapts the Ent client to the runtime's persistence interfaces: it is
// the budget account store and the tool-call audit sink.
type Store struct {
	client *Client
}

// NewStore wires the persistence adapter.
func NewStore(client *Client) *Store {
	if client == nil {
		panic("NewStore: client must not be nil")
	}
	return &Store{client: client}
}

// SaveAccount upserts one budget account snapshot. Deductions call this
// synchronously, so the row always reflects the last committed spend.
func (s *Store) SaveAccount(ctx context.Context, snap budget.Snapshot) error {
	err := s.client.BudgetAccount.UpdateOneID(snap.ID).
		SetAccountType(budgetaccount.AccountType(snap.Type)).
		SetBaseWeeklyPoints(snap.BaseWeeklyPoints).
		SetCurrentPeriodStart(snap.PeriodStart).
		SetPointsSpent(snap.PointsSpent).
		Exec(ctx)
	if ent.IsNotFound(err) {
		err = s.client.BudgetAccount.Create().
			SetID(snap.ID).
			SetAccountType(budgetaccount.AccountType(snap.Type)).
			SetBaseWeeklyPoints(snap.BaseWeeklyPoints).
			SetCurrentPeriodStart(snap.PeriodStart).
			SetPointsSpent(snap.PointsSpent).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("saving budget account %s: %w", snap.ID, err)
	}
	return nil
}

// Record writes one audit row. The router reuses the call id when a call
// moves from requested to its terminal status, so an existing row is updated
// in place rather than duplicated.
func (s *Store) Record(ctx context.Context, rec tools.AuditRecord) error {
	create := s.client.ToolCall.Create().
		SetID(rec.ID).
		SetAgent(rec.Agent).
		SetTool(rec.Tool).
		SetEstimatedCost(rec.EstimatedCost).
		SetActualCost(rec.ActualCost).
		SetStatus(toolcall.Status(rec.Status)).
		SetCreatedAt(rec.Timestamp)
	if rec.Args != nil {
		create.SetArgs(rec.Args)
	}
	if rec.Error != "" {
		create.SetErrorMessage(rec.Error)
	}
	if rec.DataVersionHash != "" {
		create.SetDataVersionHash(rec.DataVersionHash)
	}
	if rec.ExperimentID != "" {
		create.SetExperimentID(rec.ExperimentID)
	}
	if rec.MeetingID != "" {
		create.SetMeetingID(rec.MeetingID)
	}
	if rec.CycleID != "" {
		create.SetCycleID(rec.CycleID)
	}

	err := create.Exec(ctx)
	if ent.IsConstraintError(err) {
		err = s.client.ToolCall.UpdateOneID(rec.ID).
			SetStatus(toolcall.Status(rec.Status)).
			SetActualCost(rec.ActualCost).
			SetErrorMessage(rec.Error).
			SetDataVersionHash(rec.DataVersionHash).
			SetExperimentID(rec.ExperimentID).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("recording tool call %s: %w", rec.ID, err)
	}
	return nil
}
