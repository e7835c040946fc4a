// Package governance implements the risk-rule lifecycle: weighted voting on
// proposed rules and compliance evaluation of active rules against position
// snapshots.
package governance

import (
	"errors"
	"time"
)

// RuleKind categorizes a risk rule and determines its required voters.
type RuleKind string

// Rule kinds.
const (
	KindPosition      RuleKind = "position"
	KindRisk          RuleKind = "risk"
	KindTrading       RuleKind = "trading"
	KindExposure      RuleKind = "exposure"
	KindLoss          RuleKind = "loss"
	KindConcentration RuleKind = "concentration"
	KindLiquidity     RuleKind = "liquidity"
	KindAllocation    RuleKind = "allocation"
)

// RuleStatus is the rule lifecycle state.
type RuleStatus string

// Rule statuses.
const (
	StatusProposed  RuleStatus = "PROPOSED"
	StatusApproved  RuleStatus = "APPROVED"
	StatusRejected  RuleStatus = "REJECTED"
	StatusActive    RuleStatus = "ACTIVE"
	StatusSuspended RuleStatus = "SUSPENDED"
)

// VoteChoice is one voter's position on a rule.
type VoteChoice string

// Vote choices. Abstentions count for quorum but not for the approval rate.
const (
	VoteApprove VoteChoice = "APPROVE"
	VoteReject  VoteChoice = "REJECT"
	VoteAbstain VoteChoice = "ABSTAIN"
)

// Vote is one recorded ballot.
type Vote struct {
	Voter  string     `json:"voter"`
	Role   string     `json:"role"`
	Choice VoteChoice `json:"choice"`
	Reason string     `json:"reason,omitempty"`
	Weight float64    `json:"weight"`
	At     time.Time  `json:"at"`
}

// Rule is one governance rule with its voting record.
type Rule struct {
	ID             string             `json:"id"`
	Kind           RuleKind           `json:"kind"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Parameters     map[string]float64 `json:"parameters"`
	Status         RuleStatus         `json:"status"`
	Proposer       string             `json:"proposer"`
	RequiredVoters []string           `json:"required_voters"` // roles
	Votes          []Vote             `json:"votes"`
	EffectiveFrom  *time.Time         `json:"effective_from,omitempty"`
	SuspendedBy    string             `json:"suspended_by,omitempty"`
	SuspendReason  string             `json:"suspend_reason,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Decision is the record produced when voting completes.
type Decision struct {
	RuleID       string     `json:"rule_id"`
	Participants []string   `json:"participants"`
	ApprovalRate float64    `json:"approval_rate"`
	Approved     bool       `json:"approved"`
	DecidedAt    time.Time  `json:"decided_at"`
	Votes        []Vote     `json:"votes"`
	Status       RuleStatus `json:"status"`
}

// Violation is one compliance finding.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	Kind     RuleKind `json:"kind"`
	Message  string   `json:"message"`
	Metric   string   `json:"metric"`
	Value    float64  `json:"value"`
	Limit    float64  `json:"limit"`
	Severity string   `json:"severity"` // warning | high | critical
}

// ComplianceResult is the outcome of checking a position snapshot against
// every active rule.
type ComplianceResult struct {
	Compliant  bool        `json:"compliant"`
	Violations []Violation `json:"violations"`
	Warnings   []Violation `json:"warnings"`
	CheckedAt  time.Time   `json:"checked_at"`
	RuleCount  int         `json:"rule_count"`
}

// Position is the portfolio snapshot evaluated by compliance checks.
// AssetShares maps asset symbol to its fraction of portfolio value.
type Position struct {
	AssetShares map[string]float64 `json:"asset_shares"`
	DailyPnLPct float64            `json:"daily_pnl_pct"`
	Leverage    float64            `json:"leverage"`
}

// Sentinel errors for governance operations.
var (
	ErrRuleNotFound    = errors.New("rule not found")
	ErrDuplicateVote   = errors.New("voter already voted on this rule")
	ErrVotingClosed    = errors.New("rule is not open for voting")
	ErrInvalidStatus   = errors.New("invalid rule status for operation")
	ErrUnknownRuleKind = errors.New("unknown rule kind")
)

// requiredVotersByKind maps each rule kind to the roles that must vote.
var requiredVotersByKind = map[RuleKind][]string{
	KindPosition:      {"risk_officer", "portfolio_manager", "investment_officer"},
	KindRisk:          {"risk_officer", "investment_officer"},
	KindTrading:       {"risk_officer", "portfolio_manager"},
	KindExposure:      {"risk_officer", "portfolio_manager", "investment_officer"},
	KindLoss:          {"risk_officer", "investment_officer", "chairman"},
	KindConcentration: {"risk_officer", "portfolio_manager"},
	KindLiquidity:     {"risk_officer", "portfolio_manager"},
	KindAllocation:    {"risk_officer", "investment_officer", "chairman"},
}
