package intention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func researchScopes() map[string]config.AutonomousScope {
	return map[string]config.AutonomousScope{
		"research": {
			AllowedActions: []string{"run_backtest", "fetch_data"},
			BudgetLimitCP:  intPtr(100),
		},
		"trading": {
			AllowedActions:       []string{"adjust_position"},
			MaxPositionChangePct: floatPtr(5),
		},
	}
}

func TestAutonomousActionWithinBudgetApproved(t *testing.T) {
	s := New(nil, researchScopes(), nil)

	in := s.Express("quant_1", KindAutonomousAction, 1,
		ActionContext{Action: "run_backtest", ComputePoints: 80}, nil, "research", 0)

	assert.True(t, in.AutonomousApproved)
	assert.Equal(t, StatusApproved, in.Status)
}

func TestAutonomousActionOverBudgetRejected(t *testing.T) {
	s := New(nil, researchScopes(), nil)

	in := s.Express("quant_1", KindAutonomousAction, 1,
		ActionContext{Action: "run_backtest", ComputePoints: 120}, nil, "research", 0)

	assert.False(t, in.AutonomousApproved)
	assert.Equal(t, StatusRejected, in.Status)
	assert.Contains(t, in.RejectReason, "compute points")
}

func TestAutonomousActionUnknownScope(t *testing.T) {
	s := New(nil, researchScopes(), nil)

	in := s.Express("quant_1", KindAutonomousAction, 1,
		ActionContext{Action: "run_backtest"}, nil, "ops", 0)

	assert.False(t, in.AutonomousApproved)
	assert.Contains(t, in.RejectReason, "not declared")
}

func TestAutonomousActionDisallowedAction(t *testing.T) {
	s := New(nil, researchScopes(), nil)

	in := s.Express("quant_1", KindAutonomousAction, 1,
		ActionContext{Action: "adjust_position"}, nil, "research", 0)

	assert.False(t, in.AutonomousApproved)
	assert.Contains(t, in.RejectReason, "not allowed")
}

func TestPositionChangeLimitAbsolute(t *testing.T) {
	s := New(nil, researchScopes(), nil)

	in := s.Express("trader_1", KindAutonomousAction, 1,
		ActionContext{Action: "adjust_position", PositionChangePct: -4}, nil, "trading", 0)
	assert.True(t, in.AutonomousApproved)

	in = s.Express("trader_1", KindAutonomousAction, 1,
		ActionContext{Action: "adjust_position", PositionChangePct: -6}, nil, "trading", 0)
	assert.False(t, in.AutonomousApproved, "limit applies to the absolute change")
}

func TestNonAutonomousIntentionStaysPending(t *testing.T) {
	s := New(nil, nil, nil)

	in := s.Express("quant_1", KindMeetingRequest, 1, ActionContext{}, []string{"lead_1"}, "", 0)
	assert.Equal(t, StatusPending, in.Status)
	assert.False(t, in.AutonomousApproved)
}

func TestExpireStale(t *testing.T) {
	s := New(nil, nil, nil)
	now := time.Now()
	s.now = func() time.Time { return now }

	in := s.Express("quant_1", KindDataRequest, 1, ActionContext{}, nil, "", time.Hour)
	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.ExpireStale())

	got, _ := s.Get(in.ID)
	assert.Equal(t, StatusExpired, got.Status)
}

func TestTriggerFiresAndNotifies(t *testing.T) {
	b := bus.New()
	b.RegisterMailbox("risk_1")
	b.RegisterMailbox("trader_1")

	s := New(b, nil, []config.RiskTriggerConfig{
		{
			ID: "dd-5", Metric: "drawdown_pct", Operator: ">", Threshold: 5,
			Action: "reduce_exposure", TargetAgents: []string{"risk_1", "trader_1"},
		},
	})

	fired := s.EvaluateTriggers(map[string]float64{"drawdown_pct": 7.2})
	require.Equal(t, []string{"dd-5"}, fired)
	assert.Equal(t, 1, s.TriggerCount("dd-5"))

	msgs := b.PeekMessages("risk_1", 10)
	require.Len(t, msgs, 1)
	assert.Equal(t, bus.KindSystem, msgs[0].Kind)
	assert.Equal(t, "dd-5", msgs[0].Metadata["trigger_id"])
	assert.Len(t, b.PeekMessages("trader_1", 10), 1)

	alerts := s.List("system")
	require.Len(t, alerts, 1)
	assert.Equal(t, KindRiskAlert, alerts[0].Kind)
}

func TestTriggerBelowThresholdSilent(t *testing.T) {
	s := New(nil, nil, []config.RiskTriggerConfig{
		{ID: "dd-5", Metric: "drawdown_pct", Operator: ">", Threshold: 5},
	})

	assert.Empty(t, s.EvaluateTriggers(map[string]float64{"drawdown_pct": 3}))
	assert.Empty(t, s.EvaluateTriggers(map[string]float64{"other": 10}))
	assert.Zero(t, s.TriggerCount("dd-5"))
}

func TestDisabledTriggerSkipped(t *testing.T) {
	disabled := false
	s := New(nil, nil, []config.RiskTriggerConfig{
		{ID: "dd-5", Metric: "drawdown_pct", Operator: ">", Threshold: 5, Enabled: &disabled},
	})

	assert.Empty(t, s.EvaluateTriggers(map[string]float64{"drawdown_pct": 9}))
}

func TestCompareOperators(t *testing.T) {
	cases := []struct {
		op     string
		v, th  float64
		expect bool
	}{
		{">", 2, 1, true},
		{"<", 2, 1, false},
		{">=", 1, 1, true},
		{"<=", 1, 1, true},
		{"==", 1, 1, true},
		{"!=", 1, 1, false},
		{"bogus", 1, 1, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, compare(c.op, c.v, c.th), "%v %s %v", c.v, c.op, c.th)
	}
}
