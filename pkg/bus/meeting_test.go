package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeetingBus(t *testing.T, participants ...string) *MessageBus {
	t.Helper()
	b := New()
	for _, p := range participants {
		b.RegisterMailbox(p)
	}
	return b
}

func TestCreateMeetingRoomNotifiesParticipants(t *testing.T) {
	b := newMeetingBus(t, "host", "p1", "p2")

	room := b.CreateMeetingRoom("m1", "Standup", "host", []string{"p1", "p2"})
	require.NotNil(t, room)
	assert.ElementsMatch(t, []string{"host", "p1", "p2"}, room.Participants)

	for _, p := range []string{"host", "p1", "p2"} {
		msgs := b.GetMessages(p, 0, 10)
		require.Len(t, msgs, 1, "participant %s should be notified", p)
		assert.Equal(t, KindSystem, msgs[0].Kind)
		assert.Equal(t, "m1", msgs[0].Metadata["meeting_id"])
	}
}

func TestCreateMeetingRoomIdempotentOnID(t *testing.T) {
	b := newMeetingBus(t, "host")

	r1 := b.CreateMeetingRoom("m1", "First", "host", nil)
	r2 := b.CreateMeetingRoom("m1", "Second", "host", nil)

	assert.Same(t, r1, r2)
	assert.Equal(t, "First", r2.Title)
}

func TestSendToMeetingFansOutExceptSender(t *testing.T) {
	b := newMeetingBus(t, "host", "p1", "p2")
	b.CreateMeetingRoom("m1", "Review", "host", []string{"p1", "p2"})
	// Drain invitations.
	for _, p := range []string{"host", "p1", "p2"} {
		b.GetMessages(p, 0, 10)
	}

	msg := b.SendToMeeting("m1", "p1", "my findings", KindDiscussion)
	require.NotNil(t, msg)

	assert.Len(t, b.GetMessages("host", 0, 10), 1)
	assert.Len(t, b.GetMessages("p2", 0, 10), 1)
	assert.Empty(t, b.GetMessages("p1", 0, 10))

	room, ok := b.GetMeetingRoom("m1")
	require.True(t, ok)
	require.Len(t, room.Transcript, 1)
	assert.Equal(t, "my findings", room.Transcript[0].Content)
}

func TestSendToMeetingInactiveRoomIsNoop(t *testing.T) {
	b := newMeetingBus(t, "p1")

	assert.Nil(t, b.SendToMeeting("missing", "p1", "hello", KindText))
}

func TestAddMeetingArtifact(t *testing.T) {
	b := newMeetingBus(t, "host")
	b.CreateMeetingRoom("m1", "IC review", "host", nil)

	ok := b.AddMeetingArtifact("m1", ArtifactMetric, map[string]any{"sharpe": 1.4}, "Backtest metrics", "host")
	require.True(t, ok)

	room, _ := b.GetMeetingRoom("m1")
	require.Len(t, room.Artifacts, 1)
	assert.Equal(t, ArtifactMetric, room.Artifacts[0].Kind)
	assert.Equal(t, "host", room.Artifacts[0].Presenter)

	assert.False(t, b.AddMeetingArtifact("missing", ArtifactTable, nil, "", ""))
}

func TestEndMeetingRetainsRoom(t *testing.T) {
	b := newMeetingBus(t, "host", "p1")
	b.CreateMeetingRoom("m1", "Wrap", "host", []string{"p1"})
	b.SendToMeeting("m1", "host", "closing", KindText)

	room := b.EndMeeting("m1")
	require.NotNil(t, room)
	require.NotNil(t, room.EndedAt)
	assert.False(t, b.IsMeetingActive("m1"))

	// Room is retained with its transcript.
	kept, ok := b.GetMeetingRoom("m1")
	require.True(t, ok)
	assert.Len(t, kept.Transcript, 1)

	// Messages to an ended room are dropped.
	assert.Nil(t, b.SendToMeeting("m1", "host", "too late", KindText))

	// Ending twice returns nil.
	assert.Nil(t, b.EndMeeting("m1"))
}
