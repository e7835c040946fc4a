package bus

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDirectPreservesFIFOOrder(t *testing.T) {
	b := New()
	b.RegisterMailbox("alice")
	b.RegisterMailbox("bob")

	for i := 0; i < 5; i++ {
		b.SendDirect("alice", "bob", "s", fmt.Sprintf("msg-%d", i), KindText, nil, 1)
	}

	msgs := b.GetMessages("bob", 0, 10)
	require.Len(t, msgs, 5)
	for i, m := range msgs {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), m.Content)
		assert.Equal(t, "alice", m.From)
		assert.Equal(t, ChannelDirect, m.ChannelKind)
	}
}

func TestSendDirectUnknownMailboxCountsFailure(t *testing.T) {
	b := New()
	b.RegisterMailbox("alice")

	msg := b.SendDirect("alice", "ghost", "s", "hello", KindText, nil, 1)

	// The sender still gets a message back.
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, 1, b.GetStats().FailedDeliveries)
}

func TestBroadcastExcludesSender(t *testing.T) {
	b := New()
	for _, id := range []string{"chairman", "a", "b"} {
		b.RegisterMailbox(id)
	}

	b.Broadcast("chairman", "Announcement", "all hands", KindAnnouncement, nil, 1)

	assert.Len(t, b.GetMessages("a", 0, 10), 1)
	assert.Len(t, b.GetMessages("b", 0, 10), 1)
	assert.Empty(t, b.GetMessages("chairman", 0, 10))
}

func TestSendToGroupHonorsFilters(t *testing.T) {
	b := New()
	b.RegisterMailbox("r1")
	b.RegisterMailbox("r2")
	b.Subscribe("r1", ChannelDepartment, "research", nil, nil)
	b.Subscribe("r2", ChannelDepartment, "research", nil, func(m Message) bool {
		return m.Priority >= 2
	})

	b.SendToGroup(ChannelDepartment, "lead", "research", "s", "low prio", KindText, nil, 1)

	assert.Len(t, b.GetMessages("r1", 0, 10), 1)
	assert.Empty(t, b.GetMessages("r2", 0, 10), "filter should reject priority 1")
}

func TestSendToGroupExcludesSender(t *testing.T) {
	b := New()
	b.RegisterMailbox("lead")
	b.Subscribe("lead", ChannelTeam, "alpha", nil, nil)

	b.SendToGroup(ChannelTeam, "lead", "alpha", "s", "c", KindText, nil, 1)

	assert.Empty(t, b.GetMessages("lead", 0, 10))
}

func TestWildcardSubscriptionMatchesAllChannels(t *testing.T) {
	b := New()
	b.RegisterMailbox("auditor")
	b.Subscribe("auditor", ChannelDepartment, "*", nil, nil)

	b.SendToGroup(ChannelDepartment, "x", "research", "s", "one", KindText, nil, 1)
	b.SendToGroup(ChannelDepartment, "y", "risk", "s", "two", KindText, nil, 1)

	assert.Len(t, b.GetMessages("auditor", 0, 10), 2)
}

func TestSendSystemIsPriorityTwo(t *testing.T) {
	b := New()
	b.RegisterMailbox("a")

	b.SendSystem("a", "notice", "system says", nil)

	msgs := b.GetMessages("a", 0, 1)
	require.Len(t, msgs, 1)
	assert.Equal(t, 2, msgs[0].Priority)
	assert.Equal(t, KindSystem, msgs[0].Kind)
	assert.Equal(t, ChannelSystem, msgs[0].ChannelKind)
}

func TestCallbackPanicDoesNotBlockDelivery(t *testing.T) {
	b := New()
	b.RegisterMailbox("ok")
	b.Subscribe("boom", ChannelDepartment, "d", func(Message) { panic("boom") }, nil)
	b.Subscribe("ok", ChannelDepartment, "d", nil, nil)

	assert.NotPanics(t, func() {
		b.SendToGroup(ChannelDepartment, "x", "d", "s", "c", KindText, nil, 1)
	})
	assert.Len(t, b.GetMessages("ok", 0, 10), 1)
}

func TestGetMessagesBlocksUntilArrival(t *testing.T) {
	b := New()
	b.RegisterMailbox("a")

	var wg sync.WaitGroup
	wg.Add(1)
	var got []Message
	go func() {
		defer wg.Done()
		got = b.GetMessages("a", 500*time.Millisecond, 10)
	}()

	time.Sleep(50 * time.Millisecond)
	b.SendDirect("x", "a", "s", "late", KindText, nil, 1)
	wg.Wait()

	require.Len(t, got, 1)
	assert.Equal(t, "late", got[0].Content)
}

func TestGetMessagesTimeoutReturnsNil(t *testing.T) {
	b := New()
	b.RegisterMailbox("a")

	start := time.Now()
	msgs := b.GetMessages("a", 50*time.Millisecond, 10)
	assert.Empty(t, msgs)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestPeekMessagesIsNonDestructive(t *testing.T) {
	b := New()
	b.RegisterMailbox("a")
	b.SendDirect("x", "a", "s", "c", KindText, nil, 1)

	assert.Len(t, b.PeekMessages("a", 10), 1)
	assert.Len(t, b.PeekMessages("a", 10), 1)
	assert.Len(t, b.GetMessages("a", 0, 10), 1)
	assert.Empty(t, b.GetMessages("a", 0, 10))
}

func TestMailboxOverflowDropsOldest(t *testing.T) {
	b := New(WithMailboxCapacity(3))
	b.RegisterMailbox("a")

	for i := 0; i < 5; i++ {
		b.SendDirect("x", "a", "s", fmt.Sprintf("m%d", i), KindText, nil, 1)
	}

	msgs := b.GetMessages("a", 0, 10)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m2", msgs[0].Content)
	assert.Equal(t, "m4", msgs[2].Content)
	assert.Equal(t, 2, b.GetStats().DroppedMessages)
}

func TestHistoryIsBounded(t *testing.T) {
	b := New(WithHistoryCapacity(4))
	b.RegisterMailbox("a")

	for i := 0; i < 6; i++ {
		b.SendDirect("x", "a", "s", fmt.Sprintf("m%d", i), KindText, nil, 1)
	}

	hist := b.History(0)
	require.Len(t, hist, 4)
	assert.Equal(t, "m2", hist[0].Content)
	assert.Equal(t, "m5", hist[3].Content)
}
