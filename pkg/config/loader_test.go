package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalAgents = `
agents:
  chairman:
    name: "董事长"
    name_en: "Chairman"
    department: executive
    role: executive
  r1:
    name: "研究员一号"
    department: research
    team: alpha_a
    reports_to: chairman
    role: researcher
    capability_tier: 2
teams:
  alpha_a:
    department: research
    weekly_budget: 100
`

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestInitializeMinimal(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"agents.yaml": minimalAgents})

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Agents, 2)
	assert.Equal(t, "Chairman", cfg.Agents["chairman"].NameEN)
	assert.Equal(t, RoleResearcher, cfg.Agents["r1"].Role)
	assert.Equal(t, 100, cfg.Teams["alpha_a"].WeeklyBudget)

	// Built-in fallbacks present.
	assert.NotEmpty(t, cfg.Tools["market.get_ohlcv"])
	assert.Equal(t, 2*time.Second, cfg.Scheduler.AgentInterval)
	assert.Equal(t, 0.6, cfg.Governance.RequiredApprovalRate)
	assert.Equal(t, 1, cfg.Keywords.RequiredSecondsFor("risk"))
	assert.Equal(t, 0, cfg.Keywords.RequiredSecondsFor("emergency"))
	assert.Equal(t, 2, cfg.Keywords.RequiredSecondsFor("unknown-kind"))
}

func TestInitializeMissingAgentsFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeRejectsUnknownRole(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"agents.yaml": `
agents:
  x:
    name: X
    department: research
    role: wizard
`})

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "wizard")
}

func TestInitializeRejectsDanglingReportsTo(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"agents.yaml": `
agents:
  x:
    name: X
    department: research
    role: researcher
    reports_to: nobody
`})

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}

func TestInitializeRejectsPermissionForUndeclaredTool(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agents.yaml": minimalAgents,
		"permissions.yaml": `
tools:
  nonexistent.tool:
    allowed_departments: [research]
`})

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared tool")
}

func TestUserToolOverridesBuiltin(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agents.yaml": minimalAgents,
		"tools.yaml": `
tools:
  market.get_ohlcv:
    description: overridden
    category: market
    base_cost: 2
    cost_per_unit: 0.02
    cost_unit: rows
`})

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Tools["market.get_ohlcv"].BaseCost)
	assert.Equal(t, "overridden", cfg.Tools["market.get_ohlcv"].Description)
}

func TestKeywordMergeOverridesPerKind(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agents.yaml": minimalAgents,
		"keywords.yaml": `
topics:
  risk: [drawdown, var]
required_seconds:
  risk: 5
`})

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"drawdown", "var"}, cfg.Keywords.Topics["risk"])
	assert.Equal(t, 5, cfg.Keywords.RequiredSecondsFor("risk"))
	// Other kinds keep their built-in tables.
	assert.NotEmpty(t, cfg.Keywords.Topics["strategy"])
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("AQ_TEST_DEPT", "research")
	out := ExpandEnv([]byte("department: {{.AQ_TEST_DEPT}}"))
	assert.Equal(t, "department: research", string(out))

	// Missing variables expand to empty.
	out = ExpandEnv([]byte("x: {{.AQ_TEST_MISSING_VAR}}"))
	assert.Equal(t, "x: ", string(out))

	// Content without template syntax passes through.
	raw := []byte("pattern: ^secret.*$")
	assert.Equal(t, raw, ExpandEnv(raw))
}

func TestInitializeScopesAndTriggers(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agents.yaml": minimalAgents,
		"scopes.yaml": `
autonomous_scopes:
  research:
    allowed_actions: [run_backtest, fetch_data]
    budget_limit_cp: 100
`,
		"triggers.yaml": `
triggers:
  - id: dd-alert
    metric: drawdown_pct
    operator: ">"
    threshold: 5.0
    action: notify_risk
    target_agents: [chairman]
`})

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	scope := cfg.Scopes["research"]
	require.NotNil(t, scope.BudgetLimitCP)
	assert.Equal(t, 100, *scope.BudgetLimitCP)

	require.Len(t, cfg.Triggers, 1)
	assert.Equal(t, "dd-alert", cfg.Triggers[0].ID)
}

func TestInitializeRejectsBadTriggerOperator(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"agents.yaml": minimalAgents,
		"triggers.yaml": `
triggers:
  - id: bad
    metric: x
    operator: "~"
    threshold: 1
    action: a
`})

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operator")
}
