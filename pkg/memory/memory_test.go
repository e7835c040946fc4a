package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/llm"
)

func writeInput(scope Scope) WriteInput {
	return WriteInput{
		Agent:      "quant_1",
		Team:       "alpha_a",
		Content:    "momentum factor decays after 3 days in backtests",
		Scope:      scope,
		Confidence: 0.8,
		Refs:       Refs{ExperimentID: "exp-42"},
	}
}

func TestPrivateMemoryAutoApproved(t *testing.T) {
	s := NewService(nil, nil)

	rec, err := s.Write(context.Background(), writeInput(ScopePrivate))
	require.NoError(t, err)
	assert.Equal(t, ApprovalApproved, rec.ApprovalStatus)
	assert.Zero(t, rec.NeededApprovals)
}

func TestWriteValidation(t *testing.T) {
	s := NewService(nil, nil)

	in := writeInput(ScopePrivate)
	in.Content = strings.Repeat("x", 501)
	_, err := s.Write(context.Background(), in)
	assert.ErrorIs(t, err, ErrContentTooLong)

	in = writeInput(ScopePrivate)
	in.Refs = Refs{}
	_, err = s.Write(context.Background(), in)
	assert.ErrorIs(t, err, ErrMissingRefs)

	in = writeInput(ScopePrivate)
	in.Confidence = 1.5
	_, err = s.Write(context.Background(), in)
	assert.ErrorIs(t, err, ErrBadConfidence)

	in = writeInput("global")
	_, err = s.Write(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestTeamApprovalChain(t *testing.T) {
	s := NewService(nil, nil)

	rec, err := s.Write(context.Background(), writeInput(ScopeTeam))
	require.NoError(t, err)
	assert.Equal(t, ApprovalPending, rec.ApprovalStatus)
	assert.Equal(t, 1, rec.NeededApprovals)
	assert.Len(t, s.Pending(), 1)

	got, err := s.Approve(rec.ID, "lead_1", true, "reproduced it")
	require.NoError(t, err)
	assert.Equal(t, ApprovalApproved, got.ApprovalStatus)
	assert.Empty(t, s.Pending())
}

func TestOrgNeedsTwoApprovers(t *testing.T) {
	s := NewService(nil, nil)

	rec, err := s.Write(context.Background(), writeInput(ScopeOrg))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.NeededApprovals)

	got, err := s.Approve(rec.ID, "lead_1", true, "")
	require.NoError(t, err)
	assert.Equal(t, ApprovalPending, got.ApprovalStatus)

	_, err = s.Approve(rec.ID, "lead_1", true, "double dipping")
	assert.ErrorIs(t, err, ErrDuplicateApprover)

	got, err = s.Approve(rec.ID, "director_1", true, "")
	require.NoError(t, err)
	assert.Equal(t, ApprovalApproved, got.ApprovalStatus)
}

func TestRejectionSettlesChain(t *testing.T) {
	s := NewService(nil, nil)

	rec, err := s.Write(context.Background(), writeInput(ScopeOrg))
	require.NoError(t, err)

	got, err := s.Approve(rec.ID, "lead_1", false, "not reproducible")
	require.NoError(t, err)
	assert.Equal(t, ApprovalRejected, got.ApprovalStatus)

	_, err = s.Approve(rec.ID, "director_1", true, "")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestSearchVisibility(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	_, err := s.Write(ctx, writeInput(ScopePrivate))
	require.NoError(t, err)

	teamRec, err := s.Write(ctx, writeInput(ScopeTeam))
	require.NoError(t, err)
	_, err = s.Approve(teamRec.ID, "lead_1", true, "")
	require.NoError(t, err)

	// Same team sees private-own plus team memory.
	mine, err := s.Search(ctx, "quant_1", "alpha_a", "", 10)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// Teammate sees only the team memory.
	teammate, err := s.Search(ctx, "quant_2", "alpha_a", "", 10)
	require.NoError(t, err)
	assert.Len(t, teammate, 1)

	// Outsider sees nothing.
	outsider, err := s.Search(ctx, "trader_1", "exec", "", 10)
	require.NoError(t, err)
	assert.Empty(t, outsider)
}

func TestSearchRanksBySimilarity(t *testing.T) {
	stub := llm.NewStubClient("")
	s := NewService(stub, nil)
	ctx := context.Background()

	short := writeInput(ScopePrivate)
	short.Content = "fees"
	_, err := s.Write(ctx, short)
	require.NoError(t, err)

	exact := writeInput(ScopePrivate)
	exact.Content = "momentum decay"
	_, err = s.Write(ctx, exact)
	require.NoError(t, err)

	// The stub embedding is derived from text length, so the equal-length
	// query matches the second memory exactly.
	results, err := s.Search(ctx, "quant_1", "alpha_a", "momentum decay", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "momentum decay", results[0].Record.Content)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
}

func TestTTLExpiry(t *testing.T) {
	s := NewService(nil, nil)
	now := time.Now()
	s.now = func() time.Time { return now }

	in := writeInput(ScopePrivate)
	in.TTL = time.Hour
	rec, err := s.Write(context.Background(), in)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	results, err := s.Search(context.Background(), "quant_1", "alpha_a", "", 10)
	require.NoError(t, err)
	assert.Empty(t, results, "expired memories are invisible")

	assert.Equal(t, 1, s.PurgeExpired())
	_, ok := s.Get(rec.ID)
	assert.False(t, ok)
}
