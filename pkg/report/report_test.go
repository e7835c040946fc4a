package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/governance"
	"github.com/NoAme666/aiquant/pkg/performance"
	"github.com/NoAme666/aiquant/pkg/research"
)

func seededBuilder(t *testing.T) *Builder {
	t.Helper()

	perf := performance.NewSystem()
	for i := 0; i < 5; i++ {
		perf.Increment("quant_1", "ideas_validated")
	}
	for i := 0; i < 10; i++ {
		perf.Increment("quant_1", "backtests_run")
	}
	perf.Record("quant_1", "memories_written", 5)

	bm := budget.NewManager(nil)
	_, err := bm.RegisterAccount("team_research", budget.AccountTeam, 1000)
	require.NoError(t, err)

	gov := governance.New(config.DefaultGovernance())
	rule, err := gov.Propose(governance.KindConcentration, "Max single asset 30%",
		"", "risk_chief", map[string]float64{"max_single_asset_pct": 0.30})
	require.NoError(t, err)
	_, err = gov.CastVote(rule.ID, "risk_chief", "risk_officer", governance.VoteApprove, "")
	require.NoError(t, err)
	_, err = gov.CastVote(rule.ID, "pm_1", "portfolio_manager", governance.VoteApprove, "")
	require.NoError(t, err)
	require.NoError(t, gov.Activate(rule.ID))

	cycles := research.NewMachine(nil)
	c := cycles.Open("BTC momentum", "quant_1")
	_, err = cycles.Advance(c.ID, "lead_1", "review-1", "data verified")
	require.NoError(t, err)

	roster := Roster{"quant_1": config.RoleResearcher}
	return NewBuilder(perf, roster, bm, gov, cycles)
}

func TestBuildAssemblesAllSections(t *testing.T) {
	b := seededBuilder(t)
	r := b.Build()

	require.Len(t, r.Scorecards, 1)
	assert.Equal(t, "quant_1", r.Scorecards[0].Agent)
	assert.InDelta(t, 1.0, r.Scorecards[0].Overall, 0.001)

	require.Len(t, r.Budgets, 1)
	assert.Equal(t, 1000, r.Budgets[0].Remaining)

	require.Len(t, r.ActiveRules, 1)
	assert.Equal(t, governance.StatusActive, r.ActiveRules[0].Status)

	require.Len(t, r.Pipeline, 1)
	assert.Equal(t, research.StateDataGate, r.Pipeline[0].State)
}

func TestBuildWithNilSources(t *testing.T) {
	r := NewBuilder(nil, nil, nil, nil, nil).Build()
	assert.Empty(t, r.Scorecards)
	assert.Empty(t, r.Budgets)
	assert.Empty(t, r.ActiveRules)
	assert.Empty(t, r.Pipeline)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestBuildSkipsRolesWithoutTemplate(t *testing.T) {
	perf := performance.NewSystem()
	roster := Roster{"chairman": config.RoleExecutive}
	r := NewBuilder(perf, roster, nil, nil, nil).Build()
	assert.Empty(t, r.Scorecards)
}

func TestWriteXLSX(t *testing.T) {
	b := seededBuilder(t)
	b.now = func() time.Time { return time.Date(2026, 3, 6, 16, 0, 0, 0, time.UTC) }
	r := b.Build()

	path := filepath.Join(t.TempDir(), "board-report.xlsx")
	require.NoError(t, WriteXLSX(r, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{sheetSummary, sheetScorecards, sheetBudget, sheetRules, sheetPipeline},
		f.GetSheetList())

	title, err := f.GetCellValue(sheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Weekly Board Report", title)

	agent, err := f.GetCellValue(sheetScorecards, "A2")
	require.NoError(t, err)
	assert.Equal(t, "quant_1", agent)

	account, err := f.GetCellValue(sheetBudget, "A2")
	require.NoError(t, err)
	assert.Equal(t, "team_research", account)
}

func TestAttachToMeeting(t *testing.T) {
	mb := bus.New()
	mb.CreateMeetingRoom("board-w10", "Board meeting", "chairman", []string{"cos"})

	r := seededBuilder(t).Build()
	require.True(t, AttachToMeeting(mb, "board-w10", "cos", r))

	room, ok := mb.GetMeetingRoom("board-w10")
	require.True(t, ok)
	require.Len(t, room.Artifacts, 1)
	assert.Equal(t, bus.ArtifactSummary, room.Artifacts[0].Kind)
	assert.Equal(t, "Weekly board report", room.Artifacts[0].Title)

	assert.False(t, AttachToMeeting(mb, "missing", "cos", r))
}
