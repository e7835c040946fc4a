package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToolConfigs() map[string]*config.ToolSchemaConfig {
	return map[string]*config.ToolSchemaConfig{
		"market.get_ohlcv": {
			Description: "ohlcv",
			Category:    config.CategoryMarket,
			BaseCost:    1,
			CostPerUnit: 0.01,
			CostUnit:    "rows",
		},
		"backtest.run": {
			Description: "backtest",
			Category:    config.CategoryBacktest,
			BaseCost:    10,
		},
	}
}

type routerFixture struct {
	router  *Router
	budgets *budget.Manager
	account *budget.Account
	audit   *MemoryAuditSink
	perms   *Permissions
}

func newRouterFixture(t *testing.T, teamPoints int, permTable map[string]*config.ToolPermission) *routerFixture {
	t.Helper()
	budgets := budget.NewManager(nil)
	account, err := budgets.RegisterAccount("alpha_a", budget.AccountTeam, teamPoints)
	require.NoError(t, err)
	budgets.LinkAgentTeam("R1", "alpha_a")

	audit := NewMemoryAuditSink()
	perms := NewPermissions(permTable)
	registry := NewRegistry(testToolConfigs())
	registry.BindHandler(config.CategoryMarket, HandlerFunc(func(_ context.Context, req Request) (*Result, error) {
		return &Result{Success: true, Data: "candles", DataVersionHash: "dv-1"}, nil
	}))

	return &routerFixture{
		router:  NewRouter(registry, perms, budgets, audit),
		budgets: budgets,
		account: account,
		audit:   audit,
		perms:   perms,
	}
}

// S1: agent R1 in team alpha_a with remaining=3 calls market.get_ohlcv with
// limit=500 (the cost unit is rows). Cost = 1 + 500*0.01 = 6 > 3.
func TestBudgetExhaustionRejectsCall(t *testing.T) {
	fx := newRouterFixture(t, 3, nil)

	_, err := fx.router.Execute(context.Background(), Request{
		Agent:      "R1",
		Department: "research",
		Tool:       "market.get_ohlcv",
		Args:       map[string]any{"limit": 500},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrInsufficientBudget)
	assert.Equal(t, 3, fx.budgets.Remaining(fx.account), "no charge on rejection")

	recs := fx.audit.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, StatusRejected, recs[0].Status)
	assert.Equal(t, 6, recs[0].EstimatedCost)
	assert.Equal(t, 0, recs[0].ActualCost)
}

func TestSuccessfulCallDeductsAndAudits(t *testing.T) {
	fx := newRouterFixture(t, 100, nil)

	res, err := fx.router.Execute(context.Background(), Request{
		Agent:      "R1",
		Department: "research",
		Tool:       "market.get_ohlcv",
		Args:       map[string]any{"rows": 100},
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 98, fx.budgets.Remaining(fx.account)) // 100 - (1 + 100*0.01)

	recs := fx.audit.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, StatusRequested, recs[0].Status)
	assert.Equal(t, StatusCompleted, recs[1].Status)
	assert.Equal(t, recs[0].ID, recs[1].ID, "terminal row carries the call id")
	assert.Equal(t, 2, recs[1].ActualCost)
	assert.Equal(t, "dv-1", recs[1].DataVersionHash)
}

func TestHandlerFailureChargesNothing(t *testing.T) {
	fx := newRouterFixture(t, 100, nil)
	fx.router.registry.BindHandler(config.CategoryMarket, HandlerFunc(func(context.Context, Request) (*Result, error) {
		return &Result{Success: false, Error: "upstream feed down"}, nil
	}))

	res, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
	})

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 100, fx.budgets.Remaining(fx.account))

	recs := fx.audit.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, StatusFailed, recs[1].Status)
	assert.Equal(t, 0, recs[1].ActualCost)
}

func TestHandlerErrorIsWrapped(t *testing.T) {
	fx := newRouterFixture(t, 100, nil)
	fx.router.registry.BindHandler(config.CategoryMarket, HandlerFunc(func(context.Context, Request) (*Result, error) {
		return nil, errors.New("connection reset")
	}))

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandlerFailure)
	assert.Equal(t, 100, fx.budgets.Remaining(fx.account))
}

func TestUnknownToolRejected(t *testing.T) {
	fx := newRouterFixture(t, 100, nil)

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.does_not_exist",
	})

	assert.ErrorIs(t, err, ErrUnknownTool)
	recs := fx.audit.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, StatusRejected, recs[0].Status)
}

func TestUnboundCategoryFails(t *testing.T) {
	fx := newRouterFixture(t, 100, nil)

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "backtest.run",
	})

	assert.ErrorIs(t, err, ErrToolNotInitialized)
}

func TestDepartmentAllowList(t *testing.T) {
	fx := newRouterFixture(t, 100, map[string]*config.ToolPermission{
		"market.get_ohlcv": {AllowedDepartments: []string{"research", "trading"}},
	})

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "hr", Tool: "market.get_ohlcv",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
	})
	assert.NoError(t, err)
}

func TestAgentGlobAllowList(t *testing.T) {
	fx := newRouterFixture(t, 100, map[string]*config.ToolPermission{
		"market.get_ohlcv": {AllowedAgents: []string{"R*", "chairman"}},
	})

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "T9", Department: "research", Tool: "market.get_ohlcv",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
	})
	assert.NoError(t, err)
}

func TestParameterCaps(t *testing.T) {
	fx := newRouterFixture(t, 100, map[string]*config.ToolPermission{
		"market.get_ohlcv": {
			MaxLimit:          200,
			AllowedTimeframes: []string{"1h", "1d"},
		},
	})

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
		Args: map[string]any{"limit": 500},
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
		Args: map[string]any{"limit": 100, "timeframe": "5m"},
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
		Args: map[string]any{"limit": 100, "timeframe": "1h"},
	})
	assert.NoError(t, err)
}

func TestApprovalThreshold(t *testing.T) {
	fx := newRouterFixture(t, 1000, map[string]*config.ToolPermission{
		"market.get_ohlcv": {
			RequiresApprovalAbove: 5,
			Approvers:             []string{"chairman", "cio"},
		},
	})

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
		Args: map[string]any{"rows": 1000}, // cost 11 > 5
	})

	require.Error(t, err)
	ar, ok := IsApprovalRequired(err)
	require.True(t, ok)
	assert.Equal(t, 11, ar.Cost)
	assert.Equal(t, []string{"chairman", "cio"}, ar.Approvers)

	// No budget is charged for approval-gated calls.
	assert.Equal(t, 1000, fx.budgets.Remaining(fx.account))
	recs := fx.audit.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, StatusRequested, recs[0].Status)
}

// Budget conservation: total deductions equal the sum of actual_cost over
// completed audit rows; rejected rows never deduct.
func TestBudgetConservation(t *testing.T) {
	fx := newRouterFixture(t, 20, nil)

	calls := []map[string]any{
		{"rows": 100},  // cost 2, ok
		{"rows": 400},  // cost 5, ok
		{"rows": 2000}, // cost 21, rejected
		{"rows": 0},    // cost 1, ok
	}
	for _, args := range calls {
		_, _ = fx.router.Execute(context.Background(), Request{
			Agent: "R1", Department: "research", Tool: "market.get_ohlcv", Args: args,
		})
	}

	total := 0
	for _, rec := range fx.audit.Records() {
		if rec.Status == StatusCompleted {
			total += rec.ActualCost
		} else {
			assert.Equal(t, 0, rec.ActualCost)
		}
	}
	assert.Equal(t, 8, total)
	assert.Equal(t, 20-total, fx.budgets.Remaining(fx.account))
}

func TestEstimateCostIsPure(t *testing.T) {
	schema := &Schema{BaseCost: 1, CostPerUnit: 0.01, CostUnit: "rows"}

	for i := 0; i < 3; i++ {
		assert.Equal(t, 6, EstimateCost(schema, map[string]any{"rows": 500}))
		assert.Equal(t, 6, EstimateCost(schema, map[string]any{"rows": 500.0}))
	}
	// Missing cost unit argument falls back to base cost.
	assert.Equal(t, 1, EstimateCost(schema, nil))
	// Fractional units round up.
	assert.Equal(t, 2, EstimateCost(schema, map[string]any{"rows": 50}))

	tests := []struct {
		name string
		s    Schema
		args map[string]any
		want int
	}{
		{"no unit", Schema{BaseCost: 10}, map[string]any{"rows": 99}, 10},
		{"int arg", Schema{BaseCost: 0, CostPerUnit: 0.5, CostUnit: "params"}, map[string]any{"params": 3}, 2},
		{"int64 arg", Schema{BaseCost: 2, CostPerUnit: 1, CostUnit: "indicators"}, map[string]any{"indicators": int64(4)}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateCost(&tt.s, tt.args))
		})
	}
}

func TestPermissionsSwap(t *testing.T) {
	fx := newRouterFixture(t, 100, map[string]*config.ToolPermission{
		"market.get_ohlcv": {AllowedDepartments: []string{"research"}},
	})

	_, err := fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "trading", Tool: "market.get_ohlcv",
	})
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Hot reload opens the tool to trading.
	fx.perms.Swap(map[string]*config.ToolPermission{
		"market.get_ohlcv": {AllowedDepartments: []string{"research", "trading"}},
	})

	_, err = fx.router.Execute(context.Background(), Request{
		Agent: "R1", Department: "trading", Tool: "market.get_ohlcv",
	})
	assert.NoError(t, err)
}

func TestConcurrentCallsSerializeOnBudget(t *testing.T) {
	fx := newRouterFixture(t, 10, nil)

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := fx.router.Execute(context.Background(), Request{
				Agent: "R1", Department: "research", Tool: "market.get_ohlcv",
				Args: map[string]any{"rows": 0}, // cost 1
			})
			done <- err
		}()
	}

	granted := 0
	for i := 0; i < 20; i++ {
		if err := <-done; err == nil {
			granted++
		} else {
			require.True(t, errors.Is(err, budget.ErrInsufficientBudget),
				fmt.Sprintf("unexpected error: %v", err))
		}
	}
	assert.Equal(t, 10, granted)
	assert.Equal(t, 0, fx.budgets.Remaining(fx.account))
}
