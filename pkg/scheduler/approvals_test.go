package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/bus"
)

func newTestQueue() (*approvalQueue, *bus.MessageBus) {
	b := bus.New()
	b.RegisterMailbox("chairman")
	b.RegisterMailbox("quant_1")
	return newApprovalQueue(b, "chairman"), b
}

func TestSubmitNotifiesChairman(t *testing.T) {
	q, b := newTestQueue()

	item := q.submit("hiring", "Hire a second trader", "execution desk is saturated",
		"quant_1", nil, 24*time.Hour)
	assert.Equal(t, ApprovalPending, item.Status)

	msgs := b.PeekMessages("chairman", 10)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Approval needed: Hire a second trader", msgs[0].Subject)
	assert.Equal(t, item.ID, msgs[0].Metadata["approval_id"])
}

func TestApproveNotifiesRequester(t *testing.T) {
	q, b := newTestQueue()
	item := q.submit("budget", "Raise team budget", "", "quant_1", nil, time.Hour)

	decided, err := q.decide(item.ID, "chairman", "justified", true)
	require.NoError(t, err)
	assert.Equal(t, ApprovalApproved, decided.Status)
	assert.Equal(t, "chairman", decided.DecisionBy)

	msgs := b.PeekMessages("quant_1", 10)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Subject, "approved")
}

func TestRejectAndDoubleDecide(t *testing.T) {
	q, _ := newTestQueue()
	item := q.submit("budget", "Raise team budget", "", "quant_1", nil, time.Hour)

	decided, err := q.decide(item.ID, "chairman", "not now", false)
	require.NoError(t, err)
	assert.Equal(t, ApprovalRejected, decided.Status)

	_, err = q.decide(item.ID, "chairman", "changed my mind", true)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideUnknownItem(t *testing.T) {
	q, _ := newTestQueue()
	_, err := q.decide("missing", "chairman", "", true)
	assert.ErrorIs(t, err, ErrApprovalNotFound)
}

func TestExpirySweepAutoRejects(t *testing.T) {
	q, b := newTestQueue()
	now := time.Now()
	q.now = func() time.Time { return now }

	expiring := q.submit("budget", "Short fuse", "", "quant_1", nil, time.Hour)
	q.submit("budget", "Long fuse", "", "quant_1", nil, 48*time.Hour)

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, q.sweepExpired())

	got, _ := q.get(expiring.ID)
	assert.Equal(t, ApprovalRejected, got.Status)
	assert.Equal(t, expiredReason, got.DecisionReason)
	assert.Len(t, q.pending(), 1)

	// Requester is notified of the expiry rejection.
	var expiredMsg bool
	for _, m := range b.PeekMessages("quant_1", 10) {
		if m.Metadata["approval_id"] == expiring.ID {
			expiredMsg = true
		}
	}
	assert.True(t, expiredMsg)

	assert.Equal(t, 0, q.sweepExpired(), "sweep is idempotent")
}
