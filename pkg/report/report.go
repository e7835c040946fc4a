// Package report assembles the weekly board report: per-agent scorecards,
// budget burn, active risk rules and the research pipeline snapshot. The
// report is written as an xlsx workbook and attached to the board meeting.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/governance"
	"github.com/NoAme666/aiquant/pkg/performance"
	"github.com/NoAme666/aiquant/pkg/research"
)

// Roster maps agent ids to their roles, for scorecard generation.
type Roster map[string]config.RoleKind

// BoardReport is the assembled weekly snapshot.
type BoardReport struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Scorecards  []performance.Scorecard `json:"scorecards"`
	Budgets     []budget.Snapshot       `json:"budgets"`
	ActiveRules []governance.Rule       `json:"active_rules"`
	Pipeline    []research.Cycle        `json:"pipeline"`
}

// Builder collects report inputs. Any source may be nil; its section is
// simply left empty.
type Builder struct {
	perf   *performance.System
	roster Roster
	budget *budget.Manager
	gov    *governance.Governance
	cycles *research.Machine

	now func() time.Time
}

// NewBuilder creates a report builder over the given sources.
func NewBuilder(perf *performance.System, roster Roster, bm *budget.Manager, gov *governance.Governance, cycles *research.Machine) *Builder {
	return &Builder{
		perf:   perf,
		roster: roster,
		budget: bm,
		gov:    gov,
		cycles: cycles,
		now:    time.Now,
	}
}

// Build assembles the report from current system state.
func (b *Builder) Build() BoardReport {
	r := BoardReport{GeneratedAt: b.now()}

	if b.perf != nil {
		for agent, role := range b.roster {
			card, err := b.perf.Scorecard(agent, role)
			if err != nil {
				slog.Debug("No scorecard for agent", "agent", agent, "role", role)
				continue
			}
			r.Scorecards = append(r.Scorecards, card)
		}
	}
	if b.budget != nil {
		r.Budgets = b.budget.Snapshots()
	}
	if b.gov != nil {
		r.ActiveRules = b.gov.ActiveRules()
	}
	if b.cycles != nil {
		r.Pipeline = b.cycles.List("")
	}
	return r
}

// Sheet names in the workbook.
const (
	sheetSummary    = "Summary"
	sheetScorecards = "Scorecards"
	sheetBudget     = "Budget"
	sheetRules      = "Risk Rules"
	sheetPipeline   = "Pipeline"
)

// WriteXLSX renders the report as an xlsx workbook at path.
func WriteXLSX(r BoardReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetSummary)
	writeSummary(f, r)

	if err := writeScorecards(f, r.Scorecards); err != nil {
		return err
	}
	if err := writeBudgets(f, r.Budgets); err != nil {
		return err
	}
	if err := writeRules(f, r.ActiveRules); err != nil {
		return err
	}
	if err := writePipeline(f, r.Pipeline); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save board report: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, r BoardReport) {
	setRow(f, sheetSummary, 1, "Weekly Board Report")
	setRow(f, sheetSummary, 2, "Generated", r.GeneratedAt.Format(time.RFC3339))
	setRow(f, sheetSummary, 4, "Agents scored", len(r.Scorecards))
	setRow(f, sheetSummary, 5, "Budget accounts", len(r.Budgets))
	setRow(f, sheetSummary, 6, "Active risk rules", len(r.ActiveRules))
	setRow(f, sheetSummary, 7, "Research cycles", len(r.Pipeline))
}

func writeScorecards(f *excelize.File, cards []performance.Scorecard) error {
	if _, err := f.NewSheet(sheetScorecards); err != nil {
		return err
	}
	setRow(f, sheetScorecards, 1, "Agent", "Role", "Overall", "Samples", "Promotion", "Demotion")
	row := 2
	for _, c := range cards {
		setRow(f, sheetScorecards, row, c.Agent, string(c.Role),
			round2(c.Overall), c.SampleCount, c.PromotionEligible(), c.DemotionCandidate())
		row++
		for _, m := range c.Metrics {
			setRow(f, sheetScorecards, row, "", m.Metric, round2(m.Score), m.Samples,
				round2(m.Mean), round2(m.Weight))
			row++
		}
	}
	return nil
}

func writeBudgets(f *excelize.File, snaps []budget.Snapshot) error {
	if _, err := f.NewSheet(sheetBudget); err != nil {
		return err
	}
	setRow(f, sheetBudget, 1, "Account", "Type", "Weekly Points", "Spent", "Remaining", "Period Start")
	for i, s := range snaps {
		setRow(f, sheetBudget, i+2, s.ID, string(s.Type), s.BaseWeeklyPoints,
			s.PointsSpent, s.Remaining, s.PeriodStart.Format("2006-01-02"))
	}
	return nil
}

func writeRules(f *excelize.File, rules []governance.Rule) error {
	if _, err := f.NewSheet(sheetRules); err != nil {
		return err
	}
	setRow(f, sheetRules, 1, "Rule", "Kind", "Title", "Status", "Effective From")
	for i, r := range rules {
		effective := ""
		if r.EffectiveFrom != nil {
			effective = r.EffectiveFrom.Format("2006-01-02")
		}
		setRow(f, sheetRules, i+2, r.ID, string(r.Kind), r.Title, string(r.Status), effective)
	}
	return nil
}

func writePipeline(f *excelize.File, cycles []research.Cycle) error {
	if _, err := f.NewSheet(sheetPipeline); err != nil {
		return err
	}
	setRow(f, sheetPipeline, 1, "Cycle", "Title", "Owner", "State", "Rejections", "Updated")
	for i, c := range cycles {
		setRow(f, sheetPipeline, i+2, c.ID, c.Title, c.Owner, string(c.State),
			c.Rejections, c.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// setRow writes values across one row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			slog.Warn("Failed to write report cell", "sheet", sheet, "cell", cell, "error", err)
		}
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// AttachToMeeting posts the report as a summary artifact on an active board
// meeting room.
func AttachToMeeting(b *bus.MessageBus, roomID, presenter string, r BoardReport) bool {
	return b.AddMeetingArtifact(roomID, bus.ArtifactSummary, r, "Weekly board report", presenter)
}
