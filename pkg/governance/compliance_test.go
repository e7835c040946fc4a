package governance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activateRule drives a rule through voting and activation.
func activateRule(t *testing.T, g *Governance, kind RuleKind, params map[string]float64) string {
	t.Helper()
	r, err := g.Propose(kind, string(kind)+" rule", "", "risk_1", params)
	require.NoError(t, err)
	for _, role := range r.RequiredVoters {
		_, err := g.CastVote(r.ID, "voter_"+role, role, VoteApprove, "")
		require.NoError(t, err)
	}
	require.NoError(t, g.Activate(r.ID))
	return r.ID
}

func TestConcentrationViolation(t *testing.T) {
	g := newGovernance()
	ruleID := activateRule(t, g, KindConcentration, map[string]float64{"max_single_asset_pct": 30})

	res := g.CheckCompliance(Position{
		AssetShares: map[string]float64{"BTC": 0.35, "ETH": 0.20, "USDT": 0.45},
	})

	assert.False(t, res.Compliant)
	btc, usdt := 0, 0
	for _, v := range res.Violations {
		require.Equal(t, ruleID, v.RuleID)
		assert.Equal(t, "high", v.Severity)
		if strings.Contains(v.Message, "BTC") {
			btc++
			assert.InDelta(t, 0.35, v.Value, 1e-9)
		}
		if strings.Contains(v.Message, "USDT") {
			usdt++
		}
	}
	assert.Equal(t, 1, btc, "BTC at 35%% breaches the 30%% cap")
	assert.Equal(t, 1, usdt, "USDT at 45%% also breaches")
}

func TestConcentrationWarningBand(t *testing.T) {
	g := newGovernance()
	activateRule(t, g, KindConcentration, map[string]float64{"max_single_asset_pct": 30})

	res := g.CheckCompliance(Position{
		AssetShares: map[string]float64{"BTC": 0.28},
	})

	assert.True(t, res.Compliant)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "warning", res.Warnings[0].Severity)
	assert.Contains(t, res.Warnings[0].Message, "approaching")
}

func TestLossViolationIsCritical(t *testing.T) {
	g := newGovernance()
	activateRule(t, g, KindLoss, map[string]float64{"max_daily_loss_pct": 5})

	res := g.CheckCompliance(Position{DailyPnLPct: -0.07})
	assert.False(t, res.Compliant)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "critical", res.Violations[0].Severity)

	res = g.CheckCompliance(Position{DailyPnLPct: -0.045})
	assert.True(t, res.Compliant)
	require.Len(t, res.Warnings, 1)

	res = g.CheckCompliance(Position{DailyPnLPct: 0.01})
	assert.True(t, res.Compliant)
	assert.Empty(t, res.Warnings)
}

func TestLeverageBands(t *testing.T) {
	g := newGovernance()
	activateRule(t, g, KindRisk, map[string]float64{
		"max_leverage":         3,
		"margin_call_leverage": 2,
	})

	res := g.CheckCompliance(Position{Leverage: 3.5})
	assert.False(t, res.Compliant)

	res = g.CheckCompliance(Position{Leverage: 2.5})
	assert.True(t, res.Compliant)
	require.Len(t, res.Warnings, 1)

	res = g.CheckCompliance(Position{Leverage: 1.5})
	assert.True(t, res.Compliant)
	assert.Empty(t, res.Warnings)
}

func TestSuspendedRuleExcluded(t *testing.T) {
	g := newGovernance()
	ruleID := activateRule(t, g, KindConcentration, map[string]float64{"max_single_asset_pct": 30})
	require.NoError(t, g.Suspend(ruleID, "regime change", "chairman"))

	res := g.CheckCompliance(Position{
		AssetShares: map[string]float64{"BTC": 0.9},
	})
	assert.True(t, res.Compliant)
	assert.Zero(t, res.RuleCount)
}
