// Package config loads and validates the YAML configuration for the agent
// company: agent roster, tool permissions, tool schemas, keyword tables,
// autonomous scopes, risk triggers and scheduler settings.
package config

import "time"

// RoleKind identifies an agent's behavioral role.
type RoleKind string

// Role kinds.
const (
	RoleResearcher   RoleKind = "researcher"
	RoleRisk         RoleKind = "risk"
	RoleTrader       RoleKind = "trader"
	RoleIntelligence RoleKind = "intelligence"
	RoleLead         RoleKind = "lead"
	RoleDirector     RoleKind = "director"
	RoleExecutive    RoleKind = "executive"
	RoleOfficer      RoleKind = "officer"
)

// AgentConfig describes one agent in agents.yaml.
type AgentConfig struct {
	Name           string   `yaml:"name"`
	NameEN         string   `yaml:"name_en,omitempty"`
	Department     string   `yaml:"department"`
	Team           string   `yaml:"team,omitempty"`
	ReportsTo      string   `yaml:"reports_to,omitempty"`
	Role           RoleKind `yaml:"role"`
	IsLead         bool     `yaml:"is_lead,omitempty"`
	CapabilityTier int      `yaml:"capability_tier,omitempty"`
	VetoPower      bool     `yaml:"veto_power,omitempty"`
	CanForceRetest bool     `yaml:"can_force_retest,omitempty"`
	PersonaTraits  []string `yaml:"persona_traits,omitempty"`
	WeeklyBudget   int      `yaml:"weekly_budget,omitempty"`
}

// AgentsYAML is the top-level structure of agents.yaml.
type AgentsYAML struct {
	Agents map[string]AgentConfig `yaml:"agents"`
	Teams  map[string]TeamConfig  `yaml:"teams,omitempty"`
}

// TeamConfig describes a team-level budget account.
type TeamConfig struct {
	Department   string `yaml:"department"`
	WeeklyBudget int    `yaml:"weekly_budget"`
}

// ToolPermission is the per-tool entry in permissions.yaml.
type ToolPermission struct {
	AllowedAgents         []string           `yaml:"allowed_agents,omitempty"` // glob patterns
	AllowedDepartments    []string           `yaml:"allowed_departments,omitempty"`
	MaxCost               int                `yaml:"max_cost,omitempty"`
	RequiresApprovalAbove int                `yaml:"requires_approval_above,omitempty"`
	Approvers             []string           `yaml:"approvers,omitempty"`
	MaxLimit              int                `yaml:"max_limit,omitempty"`
	AllowedTimeframes     []string           `yaml:"allowed_timeframes,omitempty"`
	ScopeApproval         map[string]int     `yaml:"scope_approval,omitempty"` // memory scope → approvers needed
	ParameterCaps         map[string]float64 `yaml:"parameter_caps,omitempty"`
}

// PermissionsYAML is the top-level structure of permissions.yaml.
type PermissionsYAML struct {
	Tools map[string]ToolPermission `yaml:"tools"`
}

// ToolCategory groups tools by the handler that serves them.
type ToolCategory string

// Tool categories.
const (
	CategoryMarket       ToolCategory = "market"
	CategoryBacktest     ToolCategory = "backtest"
	CategoryMemory       ToolCategory = "memory"
	CategoryMeeting      ToolCategory = "meeting"
	CategoryIntelligence ToolCategory = "intelligence"
	CategoryTrading      ToolCategory = "trading"
)

// ToolSchemaConfig declares one tool contract in tools.yaml.
type ToolSchemaConfig struct {
	Description           string         `yaml:"description"`
	Category              ToolCategory   `yaml:"category"`
	Parameters            map[string]any `yaml:"parameters,omitempty"`
	BaseCost              int            `yaml:"base_cost"`
	CostPerUnit           float64        `yaml:"cost_per_unit,omitempty"`
	CostUnit              string         `yaml:"cost_unit,omitempty"` // rows | indicators | params | ""
	RequiresApprovalAbove int            `yaml:"requires_approval_above,omitempty"`
	AllowedDepartments    []string       `yaml:"allowed_departments,omitempty"`
}

// ToolsYAML is the top-level structure of tools.yaml.
type ToolsYAML struct {
	Tools map[string]ToolSchemaConfig `yaml:"tools"`
}

// KeywordsConfig holds the intention-detector tables. The tables are data,
// not code: they are tunable without recompilation and hot-reloadable.
type KeywordsConfig struct {
	Topics           map[string][]string `yaml:"topics"`            // topic kind → keywords (zh + en)
	Urgency          []string            `yaml:"urgency"`           // urgency lexicon
	RequiredSeconds  map[string]int      `yaml:"required_seconds"`  // topic kind → seconding threshold
	DefaultThreshold int                 `yaml:"default_threshold"` // fallback seconding threshold
}

// AutonomousScope is one entry of autonomous_scopes in scopes.yaml.
type AutonomousScope struct {
	AllowedActions       []string `yaml:"allowed_actions"`
	BudgetLimitCP        *int     `yaml:"budget_limit_cp,omitempty"`
	MaxPositionChangePct *float64 `yaml:"max_position_change_pct,omitempty"`
}

// ScopesYAML is the top-level structure of scopes.yaml.
type ScopesYAML struct {
	AutonomousScopes map[string]AutonomousScope `yaml:"autonomous_scopes"`
}

// RiskTriggerConfig declares one risk trigger in triggers.yaml.
type RiskTriggerConfig struct {
	ID           string   `yaml:"id"`
	Metric       string   `yaml:"metric"`
	Operator     string   `yaml:"operator"` // > < >= <= == !=
	Threshold    float64  `yaml:"threshold"`
	Action       string   `yaml:"action"`
	TargetAgents []string `yaml:"target_agents,omitempty"`
	Enabled      *bool    `yaml:"enabled,omitempty"` // default true
}

// TriggersYAML is the top-level structure of triggers.yaml.
type TriggersYAML struct {
	Triggers []RiskTriggerConfig `yaml:"triggers"`
}

// VoteWeights maps role → governance vote weight.
type VoteWeights map[string]float64

// SchedulerConfig holds scheduler and runtime timing settings.
type SchedulerConfig struct {
	AgentInterval     time.Duration `yaml:"agent_interval"`
	TickInterval      time.Duration `yaml:"tick_interval"`
	MailboxTimeout    time.Duration `yaml:"mailbox_timeout"`
	MailboxBatch      int           `yaml:"mailbox_batch"`
	LLMTimeout        time.Duration `yaml:"llm_timeout"`
	HealthIdleAfter   time.Duration `yaml:"health_idle_after"`
	ApprovalExpiry    time.Duration `yaml:"approval_expiry"`
	MaxTaskRetries    int           `yaml:"max_task_retries"`
	ActivityLogSize   int           `yaml:"activity_log_size"`
	ConversationSize  int           `yaml:"conversation_size"`
	WorkCooldown      time.Duration `yaml:"work_cooldown"`
	ChairmanID        string        `yaml:"chairman_id"`
	ChiefOfStaffID    string        `yaml:"chief_of_staff_id"`
	GovernanceAgentID string        `yaml:"governance_agent_id"`
}

// GovernanceYAML holds governance tunables from aiquant.yaml.
type GovernanceYAML struct {
	RequiredApprovalRate float64     `yaml:"required_approval_rate"`
	VoteWeights          VoteWeights `yaml:"vote_weights"`
}

// SystemYAML is the top-level structure of aiquant.yaml.
type SystemYAML struct {
	Scheduler  *SchedulerConfig `yaml:"scheduler"`
	Governance *GovernanceYAML  `yaml:"governance"`
}

// Config is the fully loaded, validated configuration.
type Config struct {
	Agents      map[string]*AgentConfig
	Teams       map[string]TeamConfig
	Permissions map[string]*ToolPermission
	Tools       map[string]*ToolSchemaConfig
	Keywords    *KeywordsConfig
	Scopes      map[string]AutonomousScope
	Triggers    []RiskTriggerConfig
	Scheduler   SchedulerConfig
	Governance  GovernanceYAML

	dir string // config directory, retained for hot reload
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Agents   int
	Teams    int
	Tools    int
	Scopes   int
	Triggers int
}

// Stats returns counts of loaded configuration objects.
func (c *Config) Stats() Stats {
	return Stats{
		Agents:   len(c.Agents),
		Teams:    len(c.Teams),
		Tools:    len(c.Tools),
		Scopes:   len(c.Scopes),
		Triggers: len(c.Triggers),
	}
}
