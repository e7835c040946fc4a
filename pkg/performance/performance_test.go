package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/config"
)

func TestResearcherScorecard(t *testing.T) {
	s := NewSystem()

	// 5 validated ideas, 10 backtests, one rejection, 5 memories: all at or
	// better than target.
	for i := 0; i < 5; i++ {
		s.Increment("quant_1", "ideas_validated")
		s.Increment("quant_1", "memories_written")
	}
	for i := 0; i < 10; i++ {
		s.Increment("quant_1", "backtests_run")
	}
	s.Record("quant_1", "cycle_rejections", 1)

	card, err := s.Scorecard("quant_1", config.RoleResearcher)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, card.Overall, 1e-9)
	assert.True(t, card.PromotionEligible())
	assert.False(t, card.DemotionCandidate())
	assert.Len(t, card.Metrics, 4)
}

func TestScorecardPartialPerformance(t *testing.T) {
	s := NewSystem()

	// Half the idea target, nothing else.
	s.Record("quant_2", "ideas_validated", 1)
	s.Record("quant_2", "ideas_validated", 1)
	s.Record("quant_2", "ideas_validated", 0.5)

	card, err := s.Scorecard("quant_2", config.RoleResearcher)
	require.NoError(t, err)

	// ideas sum 2.5 of target 5 scores 0.5 on weight 0.3; zero recorded
	// rejections score 1.0 on weight 0.2; everything else 0.
	assert.InDelta(t, 0.35, card.Overall, 1e-9)
	assert.False(t, card.PromotionEligible())
	assert.False(t, card.DemotionCandidate())
}

func TestLowerBetterMetric(t *testing.T) {
	s := NewSystem()
	for i := 0; i < 10; i++ {
		s.Increment("trader_1", "orders_planned")
	}
	for i := 0; i < 5; i++ {
		s.Increment("trader_1", "plan_approvals")
	}
	s.Record("trader_1", "slippage_bps", 20)
	s.Record("trader_1", "slippage_bps", 20)

	card, err := s.Scorecard("trader_1", config.RoleTrader)
	require.NoError(t, err)

	var slippage MetricScore
	for _, m := range card.Metrics {
		if m.Metric == "slippage_bps" {
			slippage = m
		}
	}
	assert.InDelta(t, 20, slippage.Mean, 1e-9)
	assert.InDelta(t, 0.5, slippage.Score, 1e-9, "mean 20 against target 10")
	assert.InDelta(t, 0.4*1+0.3*0.5+0.3*1, card.Overall, 1e-9)
}

func TestLowerBetterAtOrUnderTargetIsPerfect(t *testing.T) {
	s := NewSystem()
	s.Record("risk_1", "missed_violations", 0)

	card, err := s.Scorecard("risk_1", config.RoleRisk)
	require.NoError(t, err)
	for _, m := range card.Metrics {
		if m.Metric == "missed_violations" {
			assert.InDelta(t, 1.0, m.Score, 1e-9)
		}
	}
}

func TestScorecardNoTemplate(t *testing.T) {
	s := NewSystem()
	_, err := s.Scorecard("x", config.RoleExecutive)
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestMinSamplesGate(t *testing.T) {
	s := NewSystem()
	s.Record("quant_1", "ideas_validated", 10)

	card, err := s.Scorecard("quant_1", config.RoleResearcher)
	require.NoError(t, err)
	assert.False(t, card.PromotionEligible(), "one sample is not enough evidence")
}

func TestReset(t *testing.T) {
	s := NewSystem()
	s.Increment("quant_1", "ideas_validated")
	s.Reset("quant_1")

	card, err := s.Scorecard("quant_1", config.RoleResearcher)
	require.NoError(t, err)
	assert.Zero(t, card.SampleCount)
	// Only the zero-rejections metric scores after a reset.
	assert.InDelta(t, 0.2, card.Overall, 1e-9)
	assert.False(t, card.PromotionEligible())
}

func TestZeroSamplesOnLowerBetterMetric(t *testing.T) {
	s := NewSystem()

	// Perfect review load and not a single missed violation recorded.
	for i := 0; i < 7; i++ {
		s.Increment("risk_1", "compliance_reviews")
	}
	for i := 0; i < 5; i++ {
		s.Increment("risk_1", "triggers_handled")
	}

	card, err := s.Scorecard("risk_1", config.RoleRisk)
	require.NoError(t, err)

	var missed MetricScore
	for _, m := range card.Metrics {
		if m.Metric == "missed_violations" {
			missed = m
		}
	}
	assert.Zero(t, missed.Samples)
	assert.InDelta(t, 1.0, missed.Score, 1e-9, "zero occurrences is the best outcome")
	assert.InDelta(t, 1.0, card.Overall, 1e-9)
	assert.True(t, card.PromotionEligible())
}
