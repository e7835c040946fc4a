package config

import (
	"fmt"
)

var validRoles = map[RoleKind]bool{
	RoleResearcher:   true,
	RoleRisk:         true,
	RoleTrader:       true,
	RoleIntelligence: true,
	RoleLead:         true,
	RoleDirector:     true,
	RoleExecutive:    true,
	RoleOfficer:      true,
}

var validOperators = map[string]bool{
	">": true, "<": true, ">=": true, "<=": true, "==": true, "!=": true,
}

func validate(cfg *Config) error {
	if len(cfg.Agents) == 0 {
		return &ValidationError{Component: "agents", ID: "roster", Err: ErrMissingRequiredField}
	}

	for id, agent := range cfg.Agents {
		if agent.Name == "" {
			return &ValidationError{Component: "agent", ID: id, Field: "name", Err: ErrMissingRequiredField}
		}
		if agent.Department == "" {
			return &ValidationError{Component: "agent", ID: id, Field: "department", Err: ErrMissingRequiredField}
		}
		if agent.Role == "" {
			return &ValidationError{Component: "agent", ID: id, Field: "role", Err: ErrMissingRequiredField}
		}
		if !validRoles[agent.Role] {
			return &ValidationError{Component: "agent", ID: id, Field: "role",
				Err: fmt.Errorf("%w: %q", ErrInvalidValue, agent.Role)}
		}
		if agent.ReportsTo != "" {
			if _, ok := cfg.Agents[agent.ReportsTo]; !ok {
				return &ValidationError{Component: "agent", ID: id, Field: "reports_to",
					Err: fmt.Errorf("%w: unknown agent %q", ErrInvalidValue, agent.ReportsTo)}
			}
		}
		if agent.Team != "" {
			if _, ok := cfg.Teams[agent.Team]; !ok {
				return &ValidationError{Component: "agent", ID: id, Field: "team",
					Err: fmt.Errorf("%w: unknown team %q", ErrInvalidValue, agent.Team)}
			}
		}
	}

	for name, tool := range cfg.Tools {
		if tool.Category == "" {
			return &ValidationError{Component: "tool", ID: name, Field: "category", Err: ErrMissingRequiredField}
		}
		if tool.BaseCost < 0 || tool.CostPerUnit < 0 {
			return &ValidationError{Component: "tool", ID: name, Field: "cost",
				Err: fmt.Errorf("%w: negative cost", ErrInvalidValue)}
		}
	}

	// Permissions must reference declared tools.
	for name := range cfg.Permissions {
		if _, ok := cfg.Tools[name]; !ok {
			return &ValidationError{Component: "permission", ID: name,
				Err: fmt.Errorf("%w: permission for undeclared tool", ErrInvalidValue)}
		}
	}

	for i, trig := range cfg.Triggers {
		if trig.ID == "" || trig.Metric == "" {
			return &ValidationError{Component: "trigger", ID: fmt.Sprintf("#%d", i),
				Err: ErrMissingRequiredField}
		}
		if !validOperators[trig.Operator] {
			return &ValidationError{Component: "trigger", ID: trig.ID, Field: "operator",
				Err: fmt.Errorf("%w: %q", ErrInvalidValue, trig.Operator)}
		}
	}

	for name, scope := range cfg.Scopes {
		if len(scope.AllowedActions) == 0 {
			return &ValidationError{Component: "scope", ID: name, Field: "allowed_actions",
				Err: ErrMissingRequiredField}
		}
	}

	if cfg.Governance.RequiredApprovalRate <= 0 || cfg.Governance.RequiredApprovalRate > 1 {
		return &ValidationError{Component: "governance", ID: "required_approval_rate",
			Err: fmt.Errorf("%w: must be in (0,1]", ErrInvalidValue)}
	}

	return nil
}
