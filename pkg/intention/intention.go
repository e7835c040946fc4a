// Package intention records agent intentions and gates autonomous actions
// against the configured scope table. It also evaluates configured risk
// triggers on incoming metric snapshots.
package intention

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

// Kind categorizes an intention.
type Kind string

// Intention kinds.
const (
	KindMeetingRequest   Kind = "meeting_request"
	KindRiskAlert        Kind = "risk_alert"
	KindStrategyProposal Kind = "strategy_proposal"
	KindDataRequest      Kind = "data_request"
	KindToolRequest      Kind = "tool_request"
	KindFeedback         Kind = "feedback"
	KindEscalation       Kind = "escalation"
	KindCollaboration    Kind = "collaboration"
	KindAutonomousAction Kind = "autonomous_action"
)

// Status is the intention lifecycle state.
type Status string

// Intention statuses.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// ActionContext carries the parameters of a requested autonomous action.
type ActionContext struct {
	Action            string  `json:"action"`
	ComputePoints     int     `json:"compute_points,omitempty"`
	PositionChangePct float64 `json:"position_change_pct,omitempty"`
	Detail            string  `json:"detail,omitempty"`
}

// Intention is one recorded agent intention.
type Intention struct {
	ID                 string        `json:"id"`
	Agent              string        `json:"agent"`
	Kind               Kind          `json:"kind"`
	Priority           int           `json:"priority"`
	Status             Status        `json:"status"`
	Context            ActionContext `json:"context"`
	TargetAgents       []string      `json:"target_agents,omitempty"`
	AutonomousScope    string        `json:"autonomous_scope,omitempty"`
	AutonomousApproved bool          `json:"autonomous_approved"`
	RejectReason       string        `json:"reject_reason,omitempty"`
	ExpiresAt          time.Time     `json:"expires_at"`
	CreatedAt          time.Time     `json:"created_at"`
}

// ErrUnknownScope marks an autonomous request against an undeclared scope.
var ErrUnknownScope = errors.New("unknown autonomous scope")

// System owns intention records, the scope table and the risk triggers.
type System struct {
	mu         sync.Mutex
	intentions map[string]*Intention
	scopes     map[string]config.AutonomousScope
	triggers   []*triggerState

	bus *bus.MessageBus
	now func() time.Time
}

type triggerState struct {
	cfg   config.RiskTriggerConfig
	count int
}

// New creates an intention system from the configured scopes and triggers.
func New(b *bus.MessageBus, scopes map[string]config.AutonomousScope, triggers []config.RiskTriggerConfig) *System {
	s := &System{
		intentions: make(map[string]*Intention),
		scopes:     scopes,
		bus:        b,
		now:        time.Now,
	}
	for _, t := range triggers {
		s.triggers = append(s.triggers, &triggerState{cfg: t})
	}
	return s
}

// Express records an intention. Autonomous actions are gated against the
// scope table: the action must be allowed and every numeric limit satisfied,
// otherwise the intention is recorded as rejected.
func (s *System) Express(agent string, kind Kind, priority int, ctx ActionContext, targets []string, scope string, ttl time.Duration) *Intention {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now()
	in := &Intention{
		ID:              uuid.New().String(),
		Agent:           agent,
		Kind:            kind,
		Priority:        priority,
		Status:          StatusPending,
		Context:         ctx,
		TargetAgents:    targets,
		AutonomousScope: scope,
		ExpiresAt:       now.Add(ttl),
		CreatedAt:       now,
	}

	if kind == KindAutonomousAction {
		approved, reason := s.gateLocked(scope, ctx)
		in.AutonomousApproved = approved
		if approved {
			in.Status = StatusApproved
		} else {
			in.Status = StatusRejected
			in.RejectReason = reason
		}
		slog.Info("Autonomous action gated", "agent", agent, "scope", scope,
			"action", ctx.Action, "approved", approved, "reason", reason)
	}

	s.intentions[in.ID] = in
	return in
}

// gateLocked applies the scope table to an autonomous action request.
func (s *System) gateLocked(scope string, ctx ActionContext) (bool, string) {
	sc, ok := s.scopes[scope]
	if !ok {
		return false, fmt.Sprintf("scope %q not declared", scope)
	}

	allowed := false
	for _, a := range sc.AllowedActions {
		if a == ctx.Action {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, fmt.Sprintf("action %q not allowed in scope %q", ctx.Action, scope)
	}

	if sc.BudgetLimitCP != nil && ctx.ComputePoints > *sc.BudgetLimitCP {
		return false, fmt.Sprintf("compute points %d exceed scope limit %d", ctx.ComputePoints, *sc.BudgetLimitCP)
	}
	if sc.MaxPositionChangePct != nil && math.Abs(ctx.PositionChangePct) > *sc.MaxPositionChangePct {
		return false, fmt.Sprintf("position change %.2f%% exceeds scope limit %.2f%%",
			ctx.PositionChangePct, *sc.MaxPositionChangePct)
	}
	return true, ""
}

// Get returns a copy of an intention.
func (s *System) Get(id string) (Intention, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.intentions[id]
	if !ok {
		return Intention{}, false
	}
	return *in, true
}

// List returns copies of all intentions for an agent; empty agent means all.
func (s *System) List(agent string) []Intention {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Intention
	for _, in := range s.intentions {
		if agent == "" || in.Agent == agent {
			out = append(out, *in)
		}
	}
	return out
}

// ExpireStale marks pending intentions past their expiry. Returns the number
// expired.
func (s *System) ExpireStale() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for _, in := range s.intentions {
		if in.Status == StatusPending && now.After(in.ExpiresAt) {
			in.Status = StatusExpired
			n++
		}
	}
	return n
}

// EvaluateTriggers checks every enabled trigger against the metric snapshot.
// A fired trigger creates a risk_alert intention, notifies its target agents
// and increments its fire count. Returns the fired trigger ids.
func (s *System) EvaluateTriggers(metrics map[string]float64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []string
	for _, t := range s.triggers {
		if t.cfg.Enabled != nil && !*t.cfg.Enabled {
			continue
		}
		value, ok := metrics[t.cfg.Metric]
		if !ok || !compare(t.cfg.Operator, value, t.cfg.Threshold) {
			continue
		}

		t.count++
		fired = append(fired, t.cfg.ID)

		now := s.now()
		in := &Intention{
			ID:       uuid.New().String(),
			Agent:    "system",
			Kind:     KindRiskAlert,
			Priority: 2,
			Status:   StatusApproved,
			Context: ActionContext{
				Action: t.cfg.Action,
				Detail: fmt.Sprintf("%s %s %.4f (value %.4f)", t.cfg.Metric, t.cfg.Operator, t.cfg.Threshold, value),
			},
			TargetAgents: t.cfg.TargetAgents,
			ExpiresAt:    now.Add(24 * time.Hour),
			CreatedAt:    now,
		}
		s.intentions[in.ID] = in

		if s.bus != nil {
			for _, target := range t.cfg.TargetAgents {
				s.bus.SendSystem(target, "Risk trigger fired: "+t.cfg.ID, in.Context.Detail,
					map[string]any{"trigger_id": t.cfg.ID, "action": t.cfg.Action, "metric": t.cfg.Metric, "value": value})
			}
		}
		slog.Warn("Risk trigger fired", "trigger", t.cfg.ID, "metric", t.cfg.Metric,
			"value", value, "threshold", t.cfg.Threshold, "count", t.count)
	}
	return fired
}

// TriggerCount returns how many times a trigger has fired.
func (s *System) TriggerCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.triggers {
		if t.cfg.ID == id {
			return t.count
		}
	}
	return 0
}

func compare(op string, value, threshold float64) bool {
	switch op {
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	case "==":
		return value == threshold
	case "!=":
		return value != threshold
	}
	return false
}
