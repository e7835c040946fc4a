package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/config"
)

func newGovernance() *Governance {
	return New(config.DefaultGovernance())
}

func proposePositionRule(t *testing.T, g *Governance) *Rule {
	t.Helper()
	r, err := g.Propose(KindPosition, "single position cap", "", "risk_1",
		map[string]float64{"max_single_asset_pct": 30})
	require.NoError(t, err)
	return r
}

func TestWeightedVoteApproval(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)
	require.Equal(t, []string{"risk_officer", "portfolio_manager", "investment_officer"}, r.RequiredVoters)

	d, err := g.CastVote(r.ID, "R", "risk_officer", VoteApprove, "sound limits")
	require.NoError(t, err)
	assert.Nil(t, d, "no decision until all required voters voted")

	d, err = g.CastVote(r.ID, "I", "investment_officer", VoteApprove, "")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = g.CastVote(r.ID, "P", "portfolio_manager", VoteReject, "too tight")
	require.NoError(t, err)
	require.NotNil(t, d)

	// approve weight 2+2 over decisive weight 2+2+1.5
	assert.InDelta(t, 4.0/5.5, d.ApprovalRate, 1e-9)
	assert.True(t, d.Approved)
	assert.ElementsMatch(t, []string{"R", "I", "P"}, d.Participants)

	got, _ := g.Get(r.ID)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Len(t, g.Decisions(), 1)
}

func TestVoteRejection(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)

	_, err := g.CastVote(r.ID, "R", "risk_officer", VoteReject, "")
	require.NoError(t, err)
	_, err = g.CastVote(r.ID, "I", "investment_officer", VoteReject, "")
	require.NoError(t, err)
	d, err := g.CastVote(r.ID, "P", "portfolio_manager", VoteApprove, "")
	require.NoError(t, err)

	require.NotNil(t, d)
	assert.False(t, d.Approved)
	got, _ := g.Get(r.ID)
	assert.Equal(t, StatusRejected, got.Status)
}

func TestAbstentionExcludedFromDenominator(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)

	_, err := g.CastVote(r.ID, "R", "risk_officer", VoteApprove, "")
	require.NoError(t, err)
	_, err = g.CastVote(r.ID, "I", "investment_officer", VoteAbstain, "conflicted")
	require.NoError(t, err)
	d, err := g.CastVote(r.ID, "P", "portfolio_manager", VoteApprove, "")
	require.NoError(t, err)

	require.NotNil(t, d)
	assert.InDelta(t, 1.0, d.ApprovalRate, 1e-9, "abstain weight excluded")
	assert.True(t, d.Approved)
}

func TestDuplicateVoteRejected(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)

	_, err := g.CastVote(r.ID, "R", "risk_officer", VoteApprove, "")
	require.NoError(t, err)
	_, err = g.CastVote(r.ID, "R", "risk_officer", VoteReject, "changed my mind")
	assert.ErrorIs(t, err, ErrDuplicateVote)

	got, _ := g.Get(r.ID)
	assert.Len(t, got.Votes, 1)
}

func TestVotingClosedAfterDecision(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)

	for _, v := range []struct{ voter, role string }{
		{"R", "risk_officer"}, {"I", "investment_officer"}, {"P", "portfolio_manager"},
	} {
		_, err := g.CastVote(r.ID, v.voter, v.role, VoteApprove, "")
		require.NoError(t, err)
	}

	_, err := g.CastVote(r.ID, "X", "lead", VoteApprove, "late")
	assert.ErrorIs(t, err, ErrVotingClosed)
}

func TestActivateSuspendLifecycle(t *testing.T) {
	g := newGovernance()
	r := proposePositionRule(t, g)

	assert.ErrorIs(t, g.Activate(r.ID), ErrInvalidStatus)

	for _, v := range []struct{ voter, role string }{
		{"R", "risk_officer"}, {"I", "investment_officer"}, {"P", "portfolio_manager"},
	} {
		_, err := g.CastVote(r.ID, v.voter, v.role, VoteApprove, "")
		require.NoError(t, err)
	}

	require.NoError(t, g.Activate(r.ID))
	got, _ := g.Get(r.ID)
	assert.Equal(t, StatusActive, got.Status)
	require.NotNil(t, got.EffectiveFrom)
	assert.Len(t, g.ActiveRules(), 1)

	require.NoError(t, g.Suspend(r.ID, "market regime change", "chairman"))
	got, _ = g.Get(r.ID)
	assert.Equal(t, StatusSuspended, got.Status)
	assert.Empty(t, g.ActiveRules())

	assert.ErrorIs(t, g.Suspend(r.ID, "again", "chairman"), ErrInvalidStatus)
}

func TestProposeUnknownKind(t *testing.T) {
	g := newGovernance()
	_, err := g.Propose(RuleKind("nonsense"), "x", "", "risk_1", nil)
	assert.ErrorIs(t, err, ErrUnknownRuleKind)
}

func TestWeightForDefault(t *testing.T) {
	g := newGovernance()
	assert.Equal(t, 3.0, g.WeightFor("chairman"))
	assert.Equal(t, 1.0, g.WeightFor("unknown_role"))
}
