package governance

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/config"
)

// Governance owns the rule set and the voting process. One lock guards each
// operation; there are no cross-rule transactions.
type Governance struct {
	mu        sync.Mutex
	rules     map[string]*Rule
	decisions []Decision

	requiredRate float64
	weights      config.VoteWeights
	now          func() time.Time
}

// New creates a governance engine from the configured vote weights and
// approval rate.
func New(cfg config.GovernanceYAML) *Governance {
	if cfg.RequiredApprovalRate <= 0 {
		cfg = config.DefaultGovernance()
	}
	return &Governance{
		rules:        make(map[string]*Rule),
		requiredRate: cfg.RequiredApprovalRate,
		weights:      cfg.VoteWeights,
		now:          time.Now,
	}
}

// WeightFor returns the vote weight for a role, falling back to the default
// weight.
func (g *Governance) WeightFor(role string) float64 {
	if w, ok := g.weights[role]; ok {
		return w
	}
	if w, ok := g.weights["default"]; ok {
		return w
	}
	return 1.0
}

// Propose creates a rule in PROPOSED with required voters derived from its
// kind.
func (g *Governance) Propose(kind RuleKind, title, description, proposer string, params map[string]float64) (*Rule, error) {
	required, ok := requiredVotersByKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, kind)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r := &Rule{
		ID:             uuid.New().String(),
		Kind:           kind,
		Title:          title,
		Description:    description,
		Parameters:     params,
		Status:         StatusProposed,
		Proposer:       proposer,
		RequiredVoters: append([]string(nil), required...),
		CreatedAt:      g.now(),
	}
	g.rules[r.ID] = r
	slog.Info("Rule proposed", "rule", r.ID, "kind", kind, "proposer", proposer,
		"required_voters", required)
	return r, nil
}

// CastVote records one ballot. Duplicate votes from the same voter are
// rejected. When every required role has voted the rule is tallied: the
// approval rate is the approve weight over the approve-plus-reject weight,
// abstentions excluded from the denominator.
func (g *Governance) CastVote(ruleID, voter, role string, choice VoteChoice, reason string) (*Decision, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rules[ruleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, ruleID)
	}
	if r.Status != StatusProposed {
		return nil, fmt.Errorf("%w: status %s", ErrVotingClosed, r.Status)
	}
	for _, v := range r.Votes {
		if v.Voter == voter {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVote, voter)
		}
	}

	r.Votes = append(r.Votes, Vote{
		Voter:  voter,
		Role:   role,
		Choice: choice,
		Reason: reason,
		Weight: g.WeightFor(role),
		At:     g.now(),
	})

	if !g.quorumLocked(r) {
		return nil, nil
	}
	d := g.tallyLocked(r)
	return &d, nil
}

// quorumLocked reports whether every required role has cast a vote.
func (g *Governance) quorumLocked(r *Rule) bool {
	voted := make(map[string]bool, len(r.Votes))
	for _, v := range r.Votes {
		voted[v.Role] = true
	}
	for _, role := range r.RequiredVoters {
		if !voted[role] {
			return false
		}
	}
	return true
}

func (g *Governance) tallyLocked(r *Rule) Decision {
	var approve, decisive float64
	participants := make([]string, 0, len(r.Votes))
	for _, v := range r.Votes {
		participants = append(participants, v.Voter)
		switch v.Choice {
		case VoteApprove:
			approve += v.Weight
			decisive += v.Weight
		case VoteReject:
			decisive += v.Weight
		}
	}

	rate := 0.0
	if decisive > 0 {
		rate = approve / decisive
	}
	if rate >= g.requiredRate {
		r.Status = StatusApproved
	} else {
		r.Status = StatusRejected
	}

	d := Decision{
		RuleID:       r.ID,
		Participants: participants,
		ApprovalRate: rate,
		Approved:     r.Status == StatusApproved,
		DecidedAt:    g.now(),
		Votes:        append([]Vote(nil), r.Votes...),
		Status:       r.Status,
	}
	g.decisions = append(g.decisions, d)
	slog.Info("Rule decided", "rule", r.ID, "approval_rate", rate, "status", r.Status)
	return d
}

// Activate transitions APPROVED → ACTIVE and sets the effective-from
// timestamp. Active rules participate in every compliance check.
func (g *Governance) Activate(ruleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rules[ruleID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, ruleID)
	}
	if r.Status != StatusApproved {
		return fmt.Errorf("%w: activate from %s", ErrInvalidStatus, r.Status)
	}
	now := g.now()
	r.Status = StatusActive
	r.EffectiveFrom = &now
	slog.Info("Rule activated", "rule", r.ID, "kind", r.Kind)
	return nil
}

// Suspend transitions ACTIVE → SUSPENDED, removing the rule from compliance
// checks.
func (g *Governance) Suspend(ruleID, reason, suspender string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rules[ruleID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, ruleID)
	}
	if r.Status != StatusActive {
		return fmt.Errorf("%w: suspend from %s", ErrInvalidStatus, r.Status)
	}
	r.Status = StatusSuspended
	r.SuspendedBy = suspender
	r.SuspendReason = reason
	slog.Info("Rule suspended", "rule", r.ID, "by", suspender, "reason", reason)
	return nil
}

// Get returns a copy of the rule.
func (g *Governance) Get(ruleID string) (Rule, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rules[ruleID]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// ActiveRules returns copies of all active rules.
func (g *Governance) ActiveRules() []Rule {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Rule
	for _, r := range g.rules {
		if r.Status == StatusActive {
			out = append(out, *r)
		}
	}
	return out
}

// Decisions returns the governance decision log.
func (g *Governance) Decisions() []Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Decision, len(g.decisions))
	copy(out, g.decisions)
	return out
}
