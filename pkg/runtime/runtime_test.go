package runtime

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/governance"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/tools"
	"github.com/NoAme666/aiquant/pkg/tools/sim"
	"github.com/NoAme666/aiquant/pkg/topics"
)

func testConfig() *config.Config {
	toolTable := make(map[string]*config.ToolSchemaConfig)
	for name, t := range config.BuiltinTools() {
		tc := t
		toolTable[name] = &tc
	}
	budgetLimit := 100
	return &config.Config{
		Agents: map[string]*config.AgentConfig{
			"quant_1": {Name: "quant_1", Department: "research", Team: "alpha_a", Role: config.RoleResearcher, ReportsTo: "lead_1"},
			"lead_1":  {Name: "lead_1", Department: "research", Role: config.RoleLead, IsLead: true},
			"solo":    {Name: "solo", Department: "intelligence", Role: config.RoleIntelligence},
		},
		Teams: map[string]config.TeamConfig{
			"alpha_a": {Department: "research", WeeklyBudget: 1000},
		},
		Permissions: map[string]*config.ToolPermission{},
		Tools:       toolTable,
		Keywords:    config.DefaultKeywords(),
		Scopes: map[string]config.AutonomousScope{
			"research": {AllowedActions: []string{"run_backtest"}, BudgetLimitCP: &budgetLimit},
		},
		Triggers: []config.RiskTriggerConfig{
			{ID: "dd_breach", Metric: "max_drawdown", Operator: ">", Threshold: 0.2,
				Action: "reduce_exposure", TargetAgents: []string{"lead_1"}},
		},
		Scheduler:  config.DefaultSchedulerConfig(),
		Governance: config.DefaultGovernance(),
	}
}

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	r, err := New(testConfig(), Options{
		LLM: llm.NewStubClient("ok"),
		Handlers: map[config.ToolCategory]tools.Handler{
			config.CategoryMarket:   sim.NewMarketHandler(),
			config.CategoryBacktest: sim.NewBacktestHandler(),
		},
	})
	require.NoError(t, err)
	return r
}

func TestNewWiresComponents(t *testing.T) {
	r := newTestRuntime(t)

	assert.Len(t, r.Sched.GetAgentStatuses(), 3)

	// Team member resolves to the team account, unattached agents get their
	// own default allowance.
	acc, err := r.Budgets.Resolve("quant_1")
	require.NoError(t, err)
	assert.Equal(t, "alpha_a", acc.ID)
	assert.Equal(t, 1000, r.Budgets.Remaining(acc))

	solo, err := r.Budgets.Resolve("solo")
	require.NoError(t, err)
	assert.Equal(t, "solo", solo.ID)
	assert.Equal(t, defaultAgentBudget, r.Budgets.Remaining(solo))
}

func TestToolCallThroughRouter(t *testing.T) {
	r := newTestRuntime(t)

	res, err := r.Router.Execute(t.Context(), tools.Request{
		Agent: "quant_1", Department: "research", Tool: "market.get_ohlcv",
		Args: map[string]any{"symbol": "BTC/USDT", "limit": 100},
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.DataVersionHash)

	acc, _ := r.Budgets.Resolve("quant_1")
	assert.Equal(t, 998, r.Budgets.Remaining(acc), "1 + 100*0.01 = 2 points deducted")
}

func TestMemoryHandlerBound(t *testing.T) {
	r := newTestRuntime(t)

	res, err := r.Router.Execute(t.Context(), tools.Request{
		Agent: "quant_1", Department: "research", Tool: "memory.write",
		Args: map[string]any{
			"content":       "Momentum decays fast on low-liquidity pairs",
			"scope":         "private",
			"confidence":    0.8,
			"experiment_id": "exp-1",
		},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestExplicitTopicDetectedFromTraffic(t *testing.T) {
	r := newTestRuntime(t)

	r.Bus.Broadcast("quant_1", "proposal",
		"[PROPOSE_TOPIC]\ntitle: Refresh the data pipeline\nkind: data\nurgency: high",
		bus.KindText, nil, 1)

	list := r.Topics.List("")
	require.Len(t, list, 1)
	assert.Equal(t, topics.KindData, list[0].Kind)
	assert.Equal(t, "quant_1", list[0].Proposer)
	assert.Equal(t, topics.PriorityUrgent, list[0].Priority)
}

func TestKeywordTopicDetectedFromDirectMessage(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.RegisterMailbox("lead_1")

	r.Bus.SendDirect("quant_1", "lead_1", "concern",
		"The drawdown on the momentum book breaches our risk exposure limits",
		bus.KindText, nil, 1)

	list := r.Topics.List("")
	require.Len(t, list, 1)
	assert.Equal(t, topics.KindRisk, list[0].Kind)
}

func TestSystemTrafficIgnoredByDetector(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.RegisterMailbox("lead_1")

	r.Bus.SendSystem("lead_1", "note",
		"risk exposure drawdown leverage keywords everywhere", nil)
	assert.Empty(t, r.Topics.List(""))
}

func TestCycleTransitionsNotifyOwner(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.RegisterMailbox("quant_1")

	c := r.Cycles.Open("BTC momentum", "quant_1")
	_, err := r.Cycles.Advance(c.ID, "lead_1", "review-1", "")
	require.NoError(t, err)

	msgs := r.Bus.PeekMessages("quant_1", 10)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Subject, "advanced")
	assert.Equal(t, c.ID, msgs[0].Metadata["cycle_id"])
}

func TestEvaluateTriggersNotifiesTargets(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.RegisterMailbox("lead_1")

	fired := r.EvaluateTriggers(map[string]float64{"max_drawdown": 0.25})
	require.Len(t, fired, 1)
	assert.Equal(t, "dd_breach", fired[0])
	assert.Equal(t, 1, r.Bus.MailboxSize("lead_1"))
}

func TestComplianceViolationsReported(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.RegisterMailbox(r.Cfg.Scheduler.GovernanceAgentID)

	rule, err := r.Governance.Propose(governance.KindConcentration, "Max single asset 30%",
		"", "risk_chief", map[string]float64{"max_single_asset_pct": 0.30})
	require.NoError(t, err)
	_, err = r.Governance.CastVote(rule.ID, "risk_chief", "risk_officer", governance.VoteApprove, "")
	require.NoError(t, err)
	_, err = r.Governance.CastVote(rule.ID, "pm_1", "portfolio_manager", governance.VoteApprove, "")
	require.NoError(t, err)
	require.NoError(t, r.Governance.Activate(rule.ID))

	result := r.RunComplianceCheck(governance.Position{
		AssetShares: map[string]float64{"BTC": 0.5, "USDT": 0.5},
	})
	assert.False(t, result.Compliant)
	assert.Equal(t, 2, r.Bus.MailboxSize(r.Cfg.Scheduler.GovernanceAgentID))
}

func TestGenerateBoardReport(t *testing.T) {
	r := newTestRuntime(t)
	r.Bus.CreateMeetingRoom("board-w10", "Board meeting", "chairman", nil)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	rep, err := r.GenerateBoardReport(path, "board-w10")
	require.NoError(t, err)
	assert.False(t, rep.GeneratedAt.IsZero())
	assert.FileExists(t, path)

	room, ok := r.Bus.GetMeetingRoom("board-w10")
	require.True(t, ok)
	assert.Len(t, room.Artifacts, 1)
}

func TestStartStop(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler.TickInterval = 10 * time.Millisecond
	cfg.Scheduler.AgentInterval = 10 * time.Millisecond
	cfg.Scheduler.MailboxTimeout = 5 * time.Millisecond

	r, err := New(cfg, Options{LLM: llm.NewStubClient("ok")})
	require.NoError(t, err)

	require.NoError(t, r.Start(t.Context()))
	time.Sleep(30 * time.Millisecond)
	r.Stop()
	r.Stop()
}
