package topics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func newRiskTopic(proposer string) *Topic {
	return &Topic{
		ID:              "t-risk-1",
		Kind:            KindRisk,
		Title:           "[risk] drawdown breach",
		Description:     "drawdown approaching limit",
		Priority:        PriorityHigh,
		Status:          StatusProposed,
		Proposer:        proposer,
		RequiredSeconds: 1,
		ExpiresAt:       fixedNow().Add(24 * time.Hour),
		CreatedAt:       fixedNow(),
	}
}

func TestSecondingSchedulesRiskTopic(t *testing.T) {
	b := bus.New()
	b.RegisterMailbox("proposer")
	b.RegisterMailbox("seconder")

	m := NewManager(b, nil)
	m.now = fixedNow

	topic := m.Propose(newRiskTopic("proposer"))
	assert.Equal(t, StatusSeconding, topic.Status)

	require.NoError(t, m.AddSecond(topic.ID, "seconder", "agree, this needs a meeting"))

	got, ok := m.Get(topic.ID)
	require.True(t, ok)
	assert.Equal(t, StatusScheduled, got.Status)
	require.NotNil(t, got.ScheduledAt)
	assert.Equal(t, fixedNow().Add(4*time.Hour), *got.ScheduledAt, "HIGH priority schedules at +4h")

	room, ok := b.GetMeetingRoom(got.MeetingID)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"proposer", "seconder"}, room.Participants)
}

func TestProposerCannotSecond(t *testing.T) {
	m := NewManager(nil, nil)
	m.now = fixedNow
	topic := m.Propose(newRiskTopic("proposer"))

	err := m.AddSecond(topic.ID, "proposer", "my own idea is great")
	assert.ErrorIs(t, err, ErrProposerSecond)

	got, _ := m.Get(topic.ID)
	assert.Empty(t, got.Seconds)
}

func TestDuplicateSecondIsNoOp(t *testing.T) {
	m := NewManager(nil, nil)
	m.now = fixedNow
	topic := newRiskTopic("proposer")
	topic.RequiredSeconds = 3
	m.Propose(topic)

	require.NoError(t, m.AddSecond(topic.ID, "a", "yes"))
	require.NoError(t, m.AddSecond(topic.ID, "a", "yes again"))

	got, _ := m.Get(topic.ID)
	assert.Len(t, got.Seconds, 1)
	assert.Equal(t, StatusSeconding, got.Status)
}

func TestSecondAfterScheduledDoesNotRevert(t *testing.T) {
	m := NewManager(nil, nil)
	m.now = fixedNow
	topic := m.Propose(newRiskTopic("proposer"))

	require.NoError(t, m.AddSecond(topic.ID, "a", "agree"))
	got, _ := m.Get(topic.ID)
	require.Equal(t, StatusScheduled, got.Status)

	require.NoError(t, m.AddSecond(topic.ID, "b", "late to the party"))
	got, _ = m.Get(topic.ID)
	assert.Equal(t, StatusScheduled, got.Status)
	assert.Len(t, got.Seconds, 1, "seconds after scheduling are dropped")
}

func TestZeroThresholdSchedulesImmediately(t *testing.T) {
	m := NewManager(nil, nil)
	m.now = fixedNow

	topic := m.Propose(&Topic{
		ID:       "t-em-1",
		Kind:     KindEmergency,
		Title:    "[emergency] exchange outage",
		Priority: PriorityCritical,
		Proposer: "trader_1",
	})

	got, _ := m.Get(topic.ID)
	assert.Equal(t, StatusScheduled, got.Status)
	require.NotNil(t, got.ScheduledAt)
	assert.Equal(t, fixedNow().Add(15*time.Minute), *got.ScheduledAt)
}

func TestLeadSecondsEscalateToHigh(t *testing.T) {
	roles := map[string]config.RoleKind{
		"lead_a": config.RoleLead,
		"lead_b": config.RoleLead,
	}
	m := NewManager(nil, func(id string) (config.RoleKind, bool) {
		r, ok := roles[id]
		return r, ok
	})
	m.now = fixedNow

	topic := newRiskTopic("proposer")
	topic.Kind = KindStrategy
	topic.Priority = PriorityNormal
	topic.RequiredSeconds = 3
	m.Propose(topic)

	require.NoError(t, m.AddSecond(topic.ID, "lead_a", ""))
	got, _ := m.Get(topic.ID)
	assert.Equal(t, PriorityNormal, got.Priority, "one lead is not enough")

	require.NoError(t, m.AddSecond(topic.ID, "lead_b", ""))
	got, _ = m.Get(topic.ID)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, fixedNow().Add(24*time.Hour), got.ExpiresAt, "promotion extends expiry")
}

func TestDirectorSecondEscalatesToUrgent(t *testing.T) {
	m := NewManager(nil, func(id string) (config.RoleKind, bool) {
		if id == "director_1" {
			return config.RoleDirector, true
		}
		return "", false
	})
	m.now = fixedNow

	topic := newRiskTopic("proposer")
	topic.Priority = PriorityNormal
	topic.RequiredSeconds = 3
	m.Propose(topic)

	require.NoError(t, m.AddSecond(topic.ID, "director_1", ""))
	got, _ := m.Get(topic.ID)
	assert.Equal(t, PriorityUrgent, got.Priority)
}

func TestResolveEndsMeeting(t *testing.T) {
	b := bus.New()
	m := NewManager(b, nil)
	m.now = fixedNow

	topic := m.Propose(newRiskTopic("proposer"))
	require.NoError(t, m.AddSecond(topic.ID, "a", ""))
	got, _ := m.Get(topic.ID)
	require.True(t, b.IsMeetingActive(got.MeetingID))

	require.NoError(t, m.Resolve(topic.ID, "tighten stop loss", []ActionItem{
		{Description: "lower stop loss to 3%", Assignee: "trader_1"},
	}))

	got, _ = m.Get(topic.ID)
	assert.Equal(t, StatusResolved, got.Status)
	assert.False(t, b.IsMeetingActive(got.MeetingID))
}

func TestExpireStale(t *testing.T) {
	m := NewManager(nil, nil)
	now := fixedNow()
	m.now = func() time.Time { return now }

	stale := newRiskTopic("proposer")
	stale.ID = "t-stale"
	stale.RequiredSeconds = 3
	m.Propose(stale)

	scheduled := newRiskTopic("proposer")
	scheduled.ID = "t-done"
	m.Propose(scheduled)
	require.NoError(t, m.AddSecond("t-done", "a", ""))

	now = now.Add(48 * time.Hour)
	assert.Equal(t, 1, m.ExpireStale())

	got, _ := m.Get("t-stale")
	assert.Equal(t, StatusExpired, got.Status)
	got, _ = m.Get("t-done")
	assert.Equal(t, StatusScheduled, got.Status, "scheduled topics never expire")
}

func TestAddSecondUnknownTopic(t *testing.T) {
	m := NewManager(nil, nil)
	assert.ErrorIs(t, m.AddSecond("missing", "a", ""), ErrTopicNotFound)
}
