package database

import (
	"context"
	"testing"
	"time"

	"github.com/NoAme666/aiquant/ent/toolcall"
	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/database"
	"github.com/NoAme666/aiquant/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAccountUpsert(t *testing.T) {
	client := NewTestClient(t)
	store := database.NewStore(client)
	ctx := context.Background()

	periodStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// First write creates the row.
	err := store.SaveAccount(ctx, budget.Snapshot{
		ID:               "team_research",
		Type:             budget.AccountTeam,
		BaseWeeklyPoints: 1000,
		PeriodStart:      periodStart,
		PointsSpent:      0,
	})
	require.NoError(t, err)

	row, err := client.BudgetAccount.Get(ctx, "team_research")
	require.NoError(t, err)
	assert.Equal(t, "team", string(row.AccountType))
	assert.Equal(t, 1000, row.BaseWeeklyPoints)
	assert.Equal(t, 0, row.PointsSpent)

	// Subsequent writes update the same row.
	err = store.SaveAccount(ctx, budget.Snapshot{
		ID:               "team_research",
		Type:             budget.AccountTeam,
		BaseWeeklyPoints: 1000,
		PeriodStart:      periodStart,
		PointsSpent:      42,
	})
	require.NoError(t, err)

	row, err = client.BudgetAccount.Get(ctx, "team_research")
	require.NoError(t, err)
	assert.Equal(t, 42, row.PointsSpent)

	count, err := client.BudgetAccount.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_RecordToolCallLifecycle(t *testing.T) {
	client := NewTestClient(t)
	store := database.NewStore(client)
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// Requested row, as written before dispatch.
	err := store.Record(ctx, tools.AuditRecord{
		ID:            "call-1",
		Agent:         "quant_1",
		Tool:          "market.get_ohlcv",
		Args:          map[string]any{"symbol": "BTC-USD", "limit": float64(100)},
		EstimatedCost: 2,
		Status:        tools.StatusRequested,
		CycleID:       "cycle-1",
		Timestamp:     now,
	})
	require.NoError(t, err)

	// Terminal row reuses the call id and updates in place.
	err = store.Record(ctx, tools.AuditRecord{
		ID:              "call-1",
		Agent:           "quant_1",
		Tool:            "market.get_ohlcv",
		EstimatedCost:   2,
		ActualCost:      2,
		Status:          tools.StatusCompleted,
		DataVersionHash: "a1b2c3d4e5f6",
		CycleID:         "cycle-1",
		Timestamp:       now.Add(50 * time.Millisecond),
	})
	require.NoError(t, err)

	row, err := client.ToolCall.Get(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, toolcall.StatusCompleted, row.Status)
	assert.Equal(t, 2, row.ActualCost)
	assert.Equal(t, "a1b2c3d4e5f6", row.DataVersionHash)
	assert.Equal(t, "cycle-1", row.CycleID)

	count, err := client.ToolCall.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Rejected calls get their own row.
	err = store.Record(ctx, tools.AuditRecord{
		ID:            "call-2",
		Agent:         "quant_1",
		Tool:          "trading.paper_order",
		EstimatedCost: 5,
		Status:        tools.StatusRejected,
		Error:         "permission denied: department research",
		Timestamp:     now,
	})
	require.NoError(t, err)

	rejected, err := client.ToolCall.Query().
		Where(toolcall.StatusEQ(toolcall.StatusRejected)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "call-2", rejected.ID)
	assert.Contains(t, rejected.ErrorMessage, "permission denied")
}

func TestFullTextSearch_BusMessages(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()

	_, err := client.BusMessage.Create().
		SetID("msg-1").
		SetChannelKind("direct").
		SetFromAgent("quant_1").
		SetToAgent("lead_1").
		SetContent("Momentum strategy drawdown exceeded the risk limit in backtest").
		SetKind("text").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.BusMessage.Create().
		SetID("msg-2").
		SetChannelKind("broadcast").
		SetFromAgent("intel_1").
		SetContent("Funding rates normalized across major venues").
		SetKind("text").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT message_id FROM bus_messages
		WHERE to_tsvector('english', content) @@ to_tsquery('english', $1)`,
		"drawdown & risk",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	require.Len(t, results, 1)
	assert.Equal(t, "msg-1", results[0])
}

func TestToolRequestDedup_PartialUniqueIndex(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()

	_, err := client.ToolRequest.Create().
		SetID("req-1").
		SetToolName("options.chain").
		SetRequesters([]string{"quant_1"}).
		SetUrgency(0.7).
		SetFeasibility(0.5).
		Save(ctx)
	require.NoError(t, err)

	// A second undeployed request for the same tool violates the partial
	// unique index; aggregation must update the existing row instead.
	_, err = client.ToolRequest.Create().
		SetID("req-2").
		SetToolName("options.chain").
		SetRequesters([]string{"quant_2"}).
		SetUrgency(0.9).
		SetFeasibility(0.5).
		Save(ctx)
	require.Error(t, err)

	// Once deployed, a new request row for the same name may open again.
	err = client.ToolRequest.UpdateOneID("req-1").SetDeployed(true).Exec(ctx)
	require.NoError(t, err)

	_, err = client.ToolRequest.Create().
		SetID("req-3").
		SetToolName("options.chain").
		SetRequesters([]string{"quant_3"}).
		SetUrgency(0.4).
		SetFeasibility(0.8).
		Save(ctx)
	require.NoError(t, err)
}

func TestDatabaseHealth(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}
