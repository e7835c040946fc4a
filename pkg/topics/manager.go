package topics

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

// RoleLookup resolves an agent id to its configured role. Used for the
// seconder auto-escalation rules.
type RoleLookup func(agentID string) (config.RoleKind, bool)

// Manager owns the topic set. Seconding is serialized per topic: the first
// second that crosses the threshold performs the scheduling transition, all
// later seconds are no-ops.
type Manager struct {
	mu     sync.Mutex
	topics map[string]*Topic

	bus    *bus.MessageBus
	roleOf RoleLookup
	now    func() time.Time

	// onScheduled runs after a topic transitions to SCHEDULED, outside of
	// any per-topic state change. Defaults to creating the meeting room.
	onScheduled func(*Topic)
}

// NewManager creates a topic manager. roleOf may be nil, disabling
// seconder-based escalation.
func NewManager(b *bus.MessageBus, roleOf RoleLookup) *Manager {
	m := &Manager{
		topics: make(map[string]*Topic),
		bus:    b,
		roleOf: roleOf,
		now:    time.Now,
	}
	m.onScheduled = m.openMeetingRoom
	return m
}

// Propose registers a topic and opens it for seconding. Topics whose
// threshold is zero are scheduled immediately.
func (m *Manager) Propose(t *Topic) *Topic {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.Status = StatusSeconding
	m.topics[t.ID] = t
	slog.Info("Topic proposed", "topic", t.ID, "kind", t.Kind, "proposer", t.Proposer,
		"required_seconds", t.RequiredSeconds)

	if m.bus != nil {
		m.bus.Broadcast(t.Proposer, "Topic proposed: "+t.Title,
			fmt.Sprintf("%s\n\nSecond this topic to schedule a discussion (%d needed).",
				t.Description, t.RequiredSeconds),
			bus.KindAnnouncement, map[string]any{"topic_id": t.ID, "topic_kind": string(t.Kind)},
			int(t.Priority))
	}

	if len(t.Seconds) >= t.RequiredSeconds {
		m.scheduleLocked(t)
	}
	return t
}

// Get returns a copy of the topic.
func (m *Manager) Get(id string) (Topic, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.topics[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// List returns copies of all topics, optionally filtered by status.
func (m *Manager) List(status Status) []Topic {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Topic
	for _, t := range m.topics {
		if status == "" || t.Status == status {
			out = append(out, *t)
		}
	}
	return out
}

// AddSecond records a supporter endorsement. The proposer cannot second;
// duplicate seconds and seconds on an already scheduled topic are no-ops.
// Crossing the threshold schedules the discussion meeting.
func (m *Manager) AddSecond(topicID, supporter, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.topics[topicID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}
	if supporter == t.Proposer {
		return ErrProposerSecond
	}
	if t.secondedBy(supporter) {
		return nil
	}
	switch t.Status {
	case StatusSeconding:
	case StatusScheduled, StatusInProgress:
		return nil
	default:
		return fmt.Errorf("%w: status %s", ErrTopicNotOpen, t.Status)
	}

	t.Seconds = append(t.Seconds, Second{Supporter: supporter, Reason: reason, At: m.now()})
	m.escalateLocked(t)

	if len(t.Seconds) >= t.RequiredSeconds {
		m.scheduleLocked(t)
	}
	return nil
}

// escalateLocked applies the seconder auto-escalation rules: two lead
// seconds promote to HIGH, one director second promotes to URGENT. Promotion
// extends the expiry window.
func (m *Manager) escalateLocked(t *Topic) {
	if m.roleOf == nil {
		return
	}

	leads := 0
	promoted := t.Priority
	for _, s := range t.Seconds {
		role, ok := m.roleOf(s.Supporter)
		if !ok {
			continue
		}
		switch role {
		case config.RoleLead:
			leads++
		case config.RoleDirector:
			if promoted < PriorityUrgent {
				promoted = PriorityUrgent
			}
		}
	}
	if leads >= 2 && promoted < PriorityHigh {
		promoted = PriorityHigh
	}

	if promoted > t.Priority {
		t.Priority = promoted
		t.ExpiresAt = m.now().Add(expiryWindow(promoted))
		slog.Info("Topic escalated", "topic", t.ID, "priority", promoted.String())
	}
}

// scheduleLocked performs the SECONDING → SCHEDULED transition and plans
// the meeting at a priority-dependent offset.
func (m *Manager) scheduleLocked(t *Topic) {
	t.Status = StatusScheduled
	at := m.now().Add(meetingOffset(t.Priority))
	t.ScheduledAt = &at
	t.MeetingID = "topic-" + t.ID

	slog.Info("Topic scheduled", "topic", t.ID, "priority", t.Priority.String(),
		"scheduled_at", at, "participants", len(t.Participants()))

	if m.onScheduled != nil {
		m.onScheduled(t)
	}
}

// openMeetingRoom creates the discussion room and invites participants.
func (m *Manager) openMeetingRoom(t *Topic) {
	if m.bus == nil {
		return
	}
	m.bus.CreateMeetingRoom(t.MeetingID, t.Title, t.Proposer, t.Participants())
}

// StartDiscussion marks a scheduled topic as in progress.
func (m *Manager) StartDiscussion(topicID string) error {
	return m.transition(topicID, StatusScheduled, StatusInProgress)
}

// Resolve closes a topic with its resolution and action items, ending the
// meeting room if one was opened.
func (m *Manager) Resolve(topicID, resolution string, items []ActionItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.topics[topicID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}
	t.Status = StatusResolved
	t.Resolution = resolution
	t.ActionItems = items

	if m.bus != nil && t.MeetingID != "" {
		m.bus.EndMeeting(t.MeetingID)
	}
	slog.Info("Topic resolved", "topic", t.ID, "action_items", len(items))
	return nil
}

// Reject closes a topic without scheduling.
func (m *Manager) Reject(topicID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.topics[topicID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}
	t.Status = StatusRejected
	t.Resolution = reason
	return nil
}

// ExpireStale moves topics past their expiry window to EXPIRED. Returns the
// number of expired topics. Scheduled and later states are never expired.
func (m *Manager) ExpireStale() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	expired := 0
	for _, t := range m.topics {
		if (t.Status == StatusProposed || t.Status == StatusSeconding) && now.After(t.ExpiresAt) {
			t.Status = StatusExpired
			expired++
			slog.Info("Topic expired", "topic", t.ID, "seconds", len(t.Seconds),
				"required", t.RequiredSeconds)
		}
	}
	return expired
}

func (m *Manager) transition(topicID string, from, to Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.topics[topicID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}
	if t.Status != from {
		return fmt.Errorf("%w: status %s", ErrTopicNotOpen, t.Status)
	}
	t.Status = to
	return nil
}

// meetingOffset is the delay between scheduling and the meeting itself.
func meetingOffset(p Priority) time.Duration {
	switch p {
	case PriorityCritical:
		return 15 * time.Minute
	case PriorityUrgent:
		return time.Hour
	case PriorityHigh:
		return 4 * time.Hour
	default:
		return 24 * time.Hour
	}
}
