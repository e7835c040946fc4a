package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	advanced []Transition
	rejected []Transition
}

func (r *recordingNotifier) CycleAdvanced(_ Cycle, tr Transition) {
	r.advanced = append(r.advanced, tr)
}

func (r *recordingNotifier) CycleRejected(_ Cycle, tr Transition) {
	r.rejected = append(r.rejected, tr)
}

func TestCycleFullPipeline(t *testing.T) {
	n := &recordingNotifier{}
	m := NewMachine(n)
	c := m.Open("momentum decay", "quant_1")
	require.Equal(t, StateIdeaIntake, c.State)

	order := []State{
		StateDataGate, StateBacktestGate, StateRobustnessGate,
		StateRiskSkeptic, StateICReview, StateBoardPack, StateBoardDecision,
	}
	for i, want := range order {
		got, err := m.Advance(c.ID, "approver", "artifact-1", "looks good")
		require.NoError(t, err)
		assert.Equal(t, want, got.State, "step %d", i)
	}

	got, err := m.Archive(c.ID, "chairman", "approved for paper trading")
	require.NoError(t, err)
	assert.Equal(t, StateArchive, got.State)
	assert.Len(t, got.History, 8)
	assert.Len(t, n.advanced, 7)
}

func TestAdvanceRequiresGateArtifact(t *testing.T) {
	m := NewMachine(nil)
	c := m.Open("idea", "quant_1")

	_, err := m.Advance(c.ID, "approver", "", "no evidence")
	assert.ErrorIs(t, err, ErrMissingGateArtifact)

	got, _ := m.Get(c.ID)
	assert.Equal(t, StateIdeaIntake, got.State)
	assert.Empty(t, got.History)
}

func TestRejectReturnsToIntake(t *testing.T) {
	n := &recordingNotifier{}
	m := NewMachine(n)
	c := m.Open("idea", "quant_1")

	_, err := m.Advance(c.ID, "data_lead", "a-1", "")
	require.NoError(t, err)
	_, err = m.Advance(c.ID, "backtest_lead", "a-2", "")
	require.NoError(t, err)

	got, err := m.Reject(c.ID, "risk_officer", "overfit to 2021 data")
	require.NoError(t, err)
	assert.Equal(t, StateIdeaIntake, got.State)
	assert.Equal(t, 1, got.Rejections)
	require.Len(t, n.rejected, 1)
	assert.Equal(t, StateBacktestGate, n.rejected[0].From)
	assert.Equal(t, "overfit to 2021 data", n.rejected[0].Note)
}

func TestRejectionCounterAccumulates(t *testing.T) {
	m := NewMachine(nil)
	c := m.Open("idea", "quant_1")

	for i := 0; i < 3; i++ {
		_, err := m.Advance(c.ID, "lead", "a", "")
		require.NoError(t, err)
		_, err = m.Reject(c.ID, "lead", "again")
		require.NoError(t, err)
	}

	got, _ := m.Get(c.ID)
	assert.Equal(t, 3, got.Rejections)
}

func TestRejectFromIntakeInvalid(t *testing.T) {
	m := NewMachine(nil)
	c := m.Open("idea", "quant_1")

	_, err := m.Reject(c.ID, "lead", "premature")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestArchiveIsTerminal(t *testing.T) {
	m := NewMachine(nil)
	c := m.Open("idea", "quant_1")
	for i := 0; i < 7; i++ {
		_, err := m.Advance(c.ID, "approver", "a", "")
		require.NoError(t, err)
	}
	_, err := m.Archive(c.ID, "chairman", "")
	require.NoError(t, err)

	_, err = m.Advance(c.ID, "approver", "a", "")
	assert.ErrorIs(t, err, ErrCycleArchived)
	_, err = m.Reject(c.ID, "approver", "")
	assert.ErrorIs(t, err, ErrCycleArchived)
}

func TestArchiveOnlyFromBoardDecision(t *testing.T) {
	m := NewMachine(nil)
	c := m.Open("idea", "quant_1")

	_, err := m.Archive(c.ID, "chairman", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUnknownCycle(t *testing.T) {
	m := NewMachine(nil)
	_, err := m.Advance("missing", "a", "art", "")
	assert.ErrorIs(t, err, ErrCycleNotFound)
}

func TestForwardOrder(t *testing.T) {
	assert.True(t, Forward(StateIdeaIntake, StateDataGate))
	assert.True(t, Forward(StateBoardPack, StateBoardDecision))
	assert.False(t, Forward(StateDataGate, StateIdeaIntake))
	assert.False(t, Forward(StateIdeaIntake, StateBacktestGate))
}
