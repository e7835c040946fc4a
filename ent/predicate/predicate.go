// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentProfile is the predicate function for agentprofile builders.
type AgentProfile func(*sql.Selector)

// ApprovalItem is the predicate function for approvalitem builders.
type ApprovalItem func(*sql.Selector)

// BudgetAccount is the predicate function for budgetaccount builders.
type BudgetAccount func(*sql.Selector)

// BusMessage is the predicate function for busmessage builders.
type BusMessage func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FeedbackEntry is the predicate function for feedbackentry builders.
type FeedbackEntry func(*sql.Selector)

// GovernanceDecision is the predicate function for governancedecision builders.
type GovernanceDecision func(*sql.Selector)

// IntentionRecord is the predicate function for intentionrecord builders.
type IntentionRecord func(*sql.Selector)

// MemoryApproval is the predicate function for memoryapproval builders.
type MemoryApproval func(*sql.Selector)

// MemoryRecord is the predicate function for memoryrecord builders.
type MemoryRecord func(*sql.Selector)

// ResearchCycle is the predicate function for researchcycle builders.
type ResearchCycle func(*sql.Selector)

// RiskRule is the predicate function for riskrule builders.
type RiskRule func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// ToolRequest is the predicate function for toolrequest builders.
type ToolRequest func(*sql.Selector)

// TopicRecord is the predicate function for topicrecord builders.
type TopicRecord func(*sql.Selector)
