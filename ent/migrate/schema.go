// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentProfilesColumns holds the columns for the "agent_profiles" table.
	AgentProfilesColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "department", Type: field.TypeString},
		{Name: "team", Type: field.TypeString, Nullable: true},
		{Name: "reports_to", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString},
		{Name: "is_lead", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "FROZEN", "SUSPENDED", "TERMINATED"}, Default: "ACTIVE"},
		{Name: "last_active", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentProfilesTable holds the schema information for the "agent_profiles" table.
	AgentProfilesTable = &schema.Table{
		Name:       "agent_profiles",
		Columns:    AgentProfilesColumns,
		PrimaryKey: []*schema.Column{AgentProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentprofile_department",
				Unique:  false,
				Columns: []*schema.Column{AgentProfilesColumns[2]},
			},
			{
				Name:    "agentprofile_team",
				Unique:  false,
				Columns: []*schema.Column{AgentProfilesColumns[3]},
			},
			{
				Name:    "agentprofile_status",
				Unique:  false,
				Columns: []*schema.Column{AgentProfilesColumns[7]},
			},
		},
	}
	// ApprovalItemsColumns holds the columns for the "approval_items" table.
	ApprovalItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requester", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "decision_by", Type: field.TypeString, Nullable: true},
		{Name: "decision_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApprovalItemsTable holds the schema information for the "approval_items" table.
	ApprovalItemsTable = &schema.Table{
		Name:       "approval_items",
		Columns:    ApprovalItemsColumns,
		PrimaryKey: []*schema.Column{ApprovalItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalitem_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalItemsColumns[6], ApprovalItemsColumns[9]},
			},
			{
				Name:    "approvalitem_requester",
				Unique:  false,
				Columns: []*schema.Column{ApprovalItemsColumns[4]},
			},
		},
	}
	// BudgetAccountsColumns holds the columns for the "budget_accounts" table.
	BudgetAccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "account_type", Type: field.TypeEnum, Enums: []string{"agent", "team", "department"}},
		{Name: "base_weekly_points", Type: field.TypeInt},
		{Name: "current_period_start", Type: field.TypeTime},
		{Name: "points_spent", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetAccountsTable holds the schema information for the "budget_accounts" table.
	BudgetAccountsTable = &schema.Table{
		Name:       "budget_accounts",
		Columns:    BudgetAccountsColumns,
		PrimaryKey: []*schema.Column{BudgetAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budgetaccount_account_type",
				Unique:  false,
				Columns: []*schema.Column{BudgetAccountsColumns[1]},
			},
		},
	}
	// BusMessagesColumns holds the columns for the "bus_messages" table.
	BusMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "channel_kind", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString, Nullable: true},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "kind", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BusMessagesTable holds the schema information for the "bus_messages" table.
	BusMessagesTable = &schema.Table{
		Name:       "bus_messages",
		Columns:    BusMessagesColumns,
		PrimaryKey: []*schema.Column{BusMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "busmessage_from_agent_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[3], BusMessagesColumns[10]},
			},
			{
				Name:    "busmessage_to_agent_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[4], BusMessagesColumns[10]},
			},
			{
				Name:    "busmessage_channel_kind_channel_id",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[1], BusMessagesColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[5]},
			},
			{
				Name:    "event_subject",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
		},
	}
	// FeedbackEntriesColumns holds the columns for the "feedback_entries" table.
	FeedbackEntriesColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"tool_request", "process_improvement", "org_issue", "collaboration", "capability_gap"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbackEntriesTable holds the schema information for the "feedback_entries" table.
	FeedbackEntriesTable = &schema.Table{
		Name:       "feedback_entries",
		Columns:    FeedbackEntriesColumns,
		PrimaryKey: []*schema.Column{FeedbackEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackentry_category_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEntriesColumns[2], FeedbackEntriesColumns[4]},
			},
			{
				Name:    "feedbackentry_agent",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEntriesColumns[1]},
			},
		},
	}
	// GovernanceDecisionsColumns holds the columns for the "governance_decisions" table.
	GovernanceDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "participants", Type: field.TypeJSON},
		{Name: "approval_rate", Type: field.TypeFloat64},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"APPROVED", "REJECTED"}},
		{Name: "decided_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeString},
	}
	// GovernanceDecisionsTable holds the schema information for the "governance_decisions" table.
	GovernanceDecisionsTable = &schema.Table{
		Name:       "governance_decisions",
		Columns:    GovernanceDecisionsColumns,
		PrimaryKey: []*schema.Column{GovernanceDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "governance_decisions_risk_rules_decisions",
				Columns:    []*schema.Column{GovernanceDecisionsColumns[5]},
				RefColumns: []*schema.Column{RiskRulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "governancedecision_rule_id",
				Unique:  false,
				Columns: []*schema.Column{GovernanceDecisionsColumns[5]},
			},
		},
	}
	// IntentionRecordsColumns holds the columns for the "intention_records" table.
	IntentionRecordsColumns = []*schema.Column{
		{Name: "intention_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "action_context", Type: field.TypeJSON, Nullable: true},
		{Name: "target_agents", Type: field.TypeJSON, Nullable: true},
		{Name: "scope", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "reject_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IntentionRecordsTable holds the schema information for the "intention_records" table.
	IntentionRecordsTable = &schema.Table{
		Name:       "intention_records",
		Columns:    IntentionRecordsColumns,
		PrimaryKey: []*schema.Column{IntentionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intentionrecord_agent_status",
				Unique:  false,
				Columns: []*schema.Column{IntentionRecordsColumns[1], IntentionRecordsColumns[7]},
			},
			{
				Name:    "intentionrecord_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{IntentionRecordsColumns[7], IntentionRecordsColumns[9]},
			},
		},
	}
	// MemoryApprovalsColumns holds the columns for the "memory_approvals" table.
	MemoryApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "approver", Type: field.TypeString},
		{Name: "approved", Type: field.TypeBool},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "memory_id", Type: field.TypeString},
	}
	// MemoryApprovalsTable holds the schema information for the "memory_approvals" table.
	MemoryApprovalsTable = &schema.Table{
		Name:       "memory_approvals",
		Columns:    MemoryApprovalsColumns,
		PrimaryKey: []*schema.Column{MemoryApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memory_approvals_memory_records_approvals",
				Columns:    []*schema.Column{MemoryApprovalsColumns[5]},
				RefColumns: []*schema.Column{MemoryRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memoryapproval_memory_id_approver",
				Unique:  true,
				Columns: []*schema.Column{MemoryApprovalsColumns[5], MemoryApprovalsColumns[1]},
			},
		},
	}
	// MemoryRecordsColumns holds the columns for the "memory_records" table.
	MemoryRecordsColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "team", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 500},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"private", "team", "org"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "experiment_id", Type: field.TypeString, Nullable: true},
		{Name: "data_version_hash", Type: field.TypeString, Nullable: true},
		{Name: "artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "approval_status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REJECTED"}, Default: "PENDING"},
		{Name: "needed_approvals", Type: field.TypeInt, Default: 0},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoryRecordsTable holds the schema information for the "memory_records" table.
	MemoryRecordsTable = &schema.Table{
		Name:       "memory_records",
		Columns:    MemoryRecordsColumns,
		PrimaryKey: []*schema.Column{MemoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryrecord_agent",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[1]},
			},
			{
				Name:    "memoryrecord_scope_approval_status",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[5], MemoryRecordsColumns[11]},
			},
			{
				Name:    "memoryrecord_experiment_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[7]},
			},
		},
	}
	// ResearchCyclesColumns holds the columns for the "research_cycles" table.
	ResearchCyclesColumns = []*schema.Column{
		{Name: "cycle_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"IDEA_INTAKE", "DATA_GATE", "BACKTEST_GATE", "ROBUSTNESS_GATE", "RISK_SKEPTIC_GATE", "IC_REVIEW", "BOARD_PACK", "BOARD_DECISION", "ARCHIVE"}, Default: "IDEA_INTAKE"},
		{Name: "rejections", Type: field.TypeInt, Default: 0},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResearchCyclesTable holds the schema information for the "research_cycles" table.
	ResearchCyclesTable = &schema.Table{
		Name:       "research_cycles",
		Columns:    ResearchCyclesColumns,
		PrimaryKey: []*schema.Column{ResearchCyclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchcycle_owner",
				Unique:  false,
				Columns: []*schema.Column{ResearchCyclesColumns[2]},
			},
			{
				Name:    "researchcycle_state",
				Unique:  false,
				Columns: []*schema.Column{ResearchCyclesColumns[3]},
			},
		},
	}
	// RiskRulesColumns holds the columns for the "risk_rules" table.
	RiskRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PROPOSED", "APPROVED", "REJECTED", "ACTIVE", "SUSPENDED"}, Default: "PROPOSED"},
		{Name: "proposer", Type: field.TypeString},
		{Name: "required_voters", Type: field.TypeJSON},
		{Name: "votes", Type: field.TypeJSON, Nullable: true},
		{Name: "effective_from", Type: field.TypeTime, Nullable: true},
		{Name: "suspended_by", Type: field.TypeString, Nullable: true},
		{Name: "suspend_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RiskRulesTable holds the schema information for the "risk_rules" table.
	RiskRulesTable = &schema.Table{
		Name:       "risk_rules",
		Columns:    RiskRulesColumns,
		PrimaryKey: []*schema.Column{RiskRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "riskrule_status",
				Unique:  false,
				Columns: []*schema.Column{RiskRulesColumns[5]},
			},
			{
				Name:    "riskrule_kind",
				Unique:  false,
				Columns: []*schema.Column{RiskRulesColumns[1]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "tool", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_cost", Type: field.TypeInt, Default: 0},
		{Name: "actual_cost", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "rejected", "executing", "completed", "failed"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data_version_hash", Type: field.TypeString, Nullable: true},
		{Name: "experiment_id", Type: field.TypeString, Nullable: true},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true},
		{Name: "cycle_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_agent_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[12]},
			},
			{
				Name:    "toolcall_tool_status",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[2], ToolCallsColumns[6]},
			},
			{
				Name:    "toolcall_experiment_id",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[9]},
			},
			{
				Name:    "toolcall_cycle_id",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[11]},
			},
		},
	}
	// ToolRequestsColumns holds the columns for the "tool_requests" table.
	ToolRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requesters", Type: field.TypeJSON},
		{Name: "request_count", Type: field.TypeInt, Default: 1},
		{Name: "urgency", Type: field.TypeFloat64},
		{Name: "feasibility", Type: field.TypeFloat64},
		{Name: "deployed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolRequestsTable holds the schema information for the "tool_requests" table.
	ToolRequestsTable = &schema.Table{
		Name:       "tool_requests",
		Columns:    ToolRequestsColumns,
		PrimaryKey: []*schema.Column{ToolRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolrequest_tool_name_deployed",
				Unique:  false,
				Columns: []*schema.Column{ToolRequestsColumns[1], ToolRequestsColumns[7]},
			},
		},
	}
	// TopicRecordsColumns holds the columns for the "topic_records" table.
	TopicRecordsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "PROPOSED", "SECONDING", "SCHEDULED", "IN_PROGRESS", "RESOLVED", "REJECTED", "EXPIRED"}, Default: "PROPOSED"},
		{Name: "proposer", Type: field.TypeString},
		{Name: "seconds", Type: field.TypeJSON, Nullable: true},
		{Name: "required_seconds", Type: field.TypeInt, Default: 0},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "resolution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_items", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicRecordsTable holds the schema information for the "topic_records" table.
	TopicRecordsTable = &schema.Table{
		Name:       "topic_records",
		Columns:    TopicRecordsColumns,
		PrimaryKey: []*schema.Column{TopicRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicrecord_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TopicRecordsColumns[5], TopicRecordsColumns[11]},
			},
			{
				Name:    "topicrecord_proposer",
				Unique:  false,
				Columns: []*schema.Column{TopicRecordsColumns[6]},
			},
			{
				Name:    "topicrecord_kind",
				Unique:  false,
				Columns: []*schema.Column{TopicRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentProfilesTable,
		ApprovalItemsTable,
		BudgetAccountsTable,
		BusMessagesTable,
		EventsTable,
		FeedbackEntriesTable,
		GovernanceDecisionsTable,
		IntentionRecordsTable,
		MemoryApprovalsTable,
		MemoryRecordsTable,
		ResearchCyclesTable,
		RiskRulesTable,
		ToolCallsTable,
		ToolRequestsTable,
		TopicRecordsTable,
	}
)

func init() {
	GovernanceDecisionsTable.ForeignKeys[0].RefTable = RiskRulesTable
	MemoryApprovalsTable.ForeignKeys[0].RefTable = MemoryRecordsTable
}
