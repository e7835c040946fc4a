package agent

import (
	"context"

	"github.com/NoAme666/aiquant/pkg/config"
)

// Role extends a runtime with role-specific proactive behavior and task
// handling. CheckForWork runs once per tick and may enqueue tasks;
// ExecuteTask handles the role-specific task kinds, reporting handled=false
// for kinds it does not own.
type Role interface {
	CheckForWork(ctx context.Context, rt *Runtime)
	ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (handled bool, err error)
}

// roleFor maps a configured role kind to its behavior extension. Executives
// and officers are reactive: they only respond to routed work.
func roleFor(kind config.RoleKind) Role {
	switch kind {
	case config.RoleResearcher:
		return newResearcherRole()
	case config.RoleRisk, config.RoleOfficer:
		return newRiskRole()
	case config.RoleTrader:
		return newTraderRole()
	case config.RoleIntelligence:
		return newIntelligenceRole()
	case config.RoleLead, config.RoleDirector:
		return newLeadRole()
	default:
		return baseRole{}
	}
}

// baseRole is the reactive default: no proactive work, no extra task kinds.
type baseRole struct{}

func (baseRole) CheckForWork(context.Context, *Runtime) {}

func (baseRole) ExecuteTask(context.Context, *Runtime, *Task) (bool, error) {
	return false, nil
}
