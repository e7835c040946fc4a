package tools

import (
	"fmt"
	"path"
	"sync"

	"github.com/NoAme666/aiquant/pkg/config"
)

// Permissions evaluates the per-tool allow-lists and parameter caps declared
// in permissions.yaml. The table is swappable for hot reload.
type Permissions struct {
	mu    sync.RWMutex
	table map[string]*config.ToolPermission
}

// NewPermissions creates a permission checker over the loaded table.
func NewPermissions(table map[string]*config.ToolPermission) *Permissions {
	if table == nil {
		table = make(map[string]*config.ToolPermission)
	}
	return &Permissions{table: table}
}

// Swap atomically replaces the permission table (config hot reload).
func (p *Permissions) Swap(table map[string]*config.ToolPermission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.table = table
}

// Lookup returns the permission entry for a tool, if any.
func (p *Permissions) Lookup(tool string) (*config.ToolPermission, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	perm, ok := p.table[tool]
	return perm, ok
}

// Check verifies the agent and department against the tool's allow-lists and
// validates parameter caps. A tool with no permission entry is restricted
// only by its schema's department list.
func (p *Permissions) Check(schema *Schema, req Request) error {
	perm, _ := p.Lookup(req.Tool)

	if err := checkDepartment(schema, perm, req.Department); err != nil {
		return err
	}
	if perm == nil {
		return nil
	}
	if err := checkAgentGlobs(perm.AllowedAgents, req.Agent); err != nil {
		return err
	}
	return checkParameterCaps(perm, req.Args)
}

// ApprovalThreshold returns the cost above which the call needs approval and
// the approver list. Zero threshold means no approval gate.
func (p *Permissions) ApprovalThreshold(schema *Schema, tool string) (int, []string) {
	perm, _ := p.Lookup(tool)
	if perm != nil && perm.RequiresApprovalAbove > 0 {
		return perm.RequiresApprovalAbove, perm.Approvers
	}
	if schema.RequiresApprovalAbove > 0 {
		return schema.RequiresApprovalAbove, nil
	}
	return 0, nil
}

// MaxCost returns the hard per-call cost cap, if declared.
func (p *Permissions) MaxCost(tool string) int {
	perm, _ := p.Lookup(tool)
	if perm == nil {
		return 0
	}
	return perm.MaxCost
}

// checkDepartment intersects the schema and permission department lists.
// Empty lists impose no restriction.
func checkDepartment(schema *Schema, perm *config.ToolPermission, dept string) error {
	allowed := schema.AllowedDepartments
	if perm != nil && len(perm.AllowedDepartments) > 0 {
		if len(allowed) == 0 {
			allowed = perm.AllowedDepartments
		} else {
			allowed = intersect(allowed, perm.AllowedDepartments)
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, d := range allowed {
		if d == dept {
			return nil
		}
	}
	return fmt.Errorf("%w: department %q not allowed", ErrPermissionDenied, dept)
}

// checkAgentGlobs matches the agent id against the glob allow-list.
// An empty list imposes no restriction.
func checkAgentGlobs(globs []string, agent string) error {
	if len(globs) == 0 {
		return nil
	}
	for _, g := range globs {
		if matched, err := path.Match(g, agent); err == nil && matched {
			return nil
		}
	}
	return fmt.Errorf("%w: agent %q not in allow-list", ErrPermissionDenied, agent)
}

func checkParameterCaps(perm *config.ToolPermission, args map[string]any) error {
	if perm.MaxLimit > 0 {
		if limit, ok := numericArg(args, "limit"); ok && int(limit) > perm.MaxLimit {
			return fmt.Errorf("%w: limit %d exceeds max_limit %d",
				ErrPermissionDenied, int(limit), perm.MaxLimit)
		}
	}
	if len(perm.AllowedTimeframes) > 0 {
		if tf, ok := args["timeframe"].(string); ok {
			found := false
			for _, allowed := range perm.AllowedTimeframes {
				if tf == allowed {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: timeframe %q not allowed", ErrPermissionDenied, tf)
			}
		}
	}
	for param, capVal := range perm.ParameterCaps {
		if v, ok := numericArg(args, param); ok && v > capVal {
			return fmt.Errorf("%w: %s=%v exceeds cap %v", ErrPermissionDenied, param, v, capVal)
		}
	}
	return nil
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	var out []string
	for _, s := range a {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}
