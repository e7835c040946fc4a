// Package topics implements organization-wide discussion topics: keyword
// driven intention detection, topic proposal and seconding, and escalation
// of seconded topics into scheduled meetings.
package topics

import (
	"errors"
	"time"
)

// Kind categorizes a topic.
type Kind string

// Topic kinds.
const (
	KindStrategy     Kind = "strategy"
	KindRisk         Kind = "risk"
	KindData         Kind = "data"
	KindTrading      Kind = "trading"
	KindGovernance   Kind = "governance"
	KindProcess      Kind = "process"
	KindOrganization Kind = "organization"
	KindEmergency    Kind = "emergency"
)

// Status is the topic lifecycle state.
type Status string

// Topic statuses.
const (
	StatusDraft      Status = "DRAFT"
	StatusProposed   Status = "PROPOSED"
	StatusSeconding  Status = "SECONDING"
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
	StatusExpired    Status = "EXPIRED"
)

// Priority orders topic urgency and drives meeting scheduling offsets.
type Priority int

// Topic priorities.
const (
	PriorityNormal   Priority = 0
	PriorityHigh     Priority = 1
	PriorityUrgent   Priority = 2
	PriorityCritical Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityUrgent:
		return "URGENT"
	case PriorityHigh:
		return "HIGH"
	default:
		return "NORMAL"
	}
}

// Second is one supporter endorsement on a topic.
type Second struct {
	Supporter string    `json:"supporter"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

// ActionItem is one follow-up produced by a resolved topic.
type ActionItem struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee,omitempty"`
	Done        bool   `json:"done"`
}

// Topic is a proposal for organization-wide discussion. Seconding drives it
// to a scheduled meeting once the per-kind threshold is met.
type Topic struct {
	ID                    string       `json:"id"`
	Kind                  Kind         `json:"kind"`
	Title                 string       `json:"title"`
	Description           string       `json:"description"`
	Priority              Priority     `json:"priority"`
	Status                Status       `json:"status"`
	Proposer              string       `json:"proposer"`
	Seconds               []Second     `json:"seconds"`
	RequiredSeconds       int          `json:"required_seconds"`
	SuggestedParticipants []string     `json:"suggested_participants,omitempty"`
	MeetingID             string       `json:"meeting_id,omitempty"`
	ScheduledAt           *time.Time   `json:"scheduled_at,omitempty"`
	ExpiresAt             time.Time    `json:"expires_at"`
	Resolution            string       `json:"resolution,omitempty"`
	ActionItems           []ActionItem `json:"action_items,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
}

// secondedBy reports whether the agent already seconded. Callers hold the
// topic lock.
func (t *Topic) secondedBy(agentID string) bool {
	for _, s := range t.Seconds {
		if s.Supporter == agentID {
			return true
		}
	}
	return false
}

// Participants returns proposer, seconders and suggested participants,
// deduplicated in that order.
func (t *Topic) Participants() []string {
	seen := map[string]bool{}
	var out []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	add(t.Proposer)
	for _, s := range t.Seconds {
		add(s.Supporter)
	}
	for _, p := range t.SuggestedParticipants {
		add(p)
	}
	return out
}

// Sentinel errors for topic operations.
var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrProposerSecond   = errors.New("proposer cannot second their own topic")
	ErrTopicNotOpen     = errors.New("topic is not accepting seconds")
	ErrEmptyTitle       = errors.New("topic title is empty")
	ErrUnknownTopicKind = errors.New("unknown topic kind")
)
