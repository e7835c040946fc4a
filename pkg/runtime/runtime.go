// Package runtime constructs and owns the company's process-wide components:
// message bus, tool router, budget accounts, agent runtimes, scheduler,
// topic manager, research cycles, governance, intentions, memory, feedback
// and performance. Nothing here is a global: every component is built once
// and injected into its consumers.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NoAme666/aiquant/pkg/agent"
	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/feedback"
	"github.com/NoAme666/aiquant/pkg/governance"
	"github.com/NoAme666/aiquant/pkg/intention"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/memory"
	"github.com/NoAme666/aiquant/pkg/performance"
	"github.com/NoAme666/aiquant/pkg/report"
	"github.com/NoAme666/aiquant/pkg/research"
	"github.com/NoAme666/aiquant/pkg/scheduler"
	"github.com/NoAme666/aiquant/pkg/tools"
	"github.com/NoAme666/aiquant/pkg/topics"
)

// defaultAgentBudget is the weekly point allowance for agents with neither a
// team account nor a configured budget.
const defaultAgentBudget = 500

// Options carry the externally provided dependencies.
type Options struct {
	// LLM is required.
	LLM llm.Client

	// Handlers binds tool categories beyond memory, which the runtime wires
	// itself. Typically the sim handlers or real provider adapters.
	Handlers map[config.ToolCategory]tools.Handler

	// BudgetStore and Audit persist accounts and tool-call rows. Either may
	// be nil for in-memory operation.
	BudgetStore budget.Store
	Audit       tools.AuditSink

	// Watch enables hot reload of keywords.yaml and permissions.yaml.
	Watch bool
}

// Runtime is the composition root.
type Runtime struct {
	Cfg *config.Config

	Bus         *bus.MessageBus
	LLM         llm.Client
	Budgets     *budget.Manager
	Registry    *tools.Registry
	Permissions *tools.Permissions
	Router      *tools.Router
	Sched       *scheduler.Scheduler
	Detector    *topics.Detector
	Topics      *topics.Manager
	Cycles      *research.Machine
	Governance  *governance.Governance
	Intentions  *intention.System
	Memory      *memory.Service
	Feedback    *feedback.Channel
	Performance *performance.System
	Reports     *report.Builder

	watcher *config.Watcher
}

// New wires every component from the loaded configuration.
func New(cfg *config.Config, opts Options) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("runtime.New: config is nil")
	}
	if opts.LLM == nil {
		return nil, fmt.Errorf("runtime.New: LLM client is required")
	}

	r := &Runtime{Cfg: cfg, LLM: opts.LLM}
	r.Bus = bus.New()

	r.Budgets = budget.NewManager(opts.BudgetStore)
	if err := r.registerBudgets(); err != nil {
		return nil, err
	}

	r.Registry = tools.NewRegistry(cfg.Tools)
	r.Permissions = tools.NewPermissions(cfg.Permissions)
	audit := opts.Audit
	if audit == nil {
		audit = tools.NewMemoryAuditSink()
	}
	r.Router = tools.NewRouter(r.Registry, r.Permissions, r.Budgets, audit)

	r.Memory = memory.NewService(opts.LLM, memory.DefaultPolicy)
	r.Registry.BindHandler(config.CategoryMemory, memory.NewHandler(r.Memory, r.teamOf))
	for category, h := range opts.Handlers {
		r.Registry.BindHandler(category, h)
	}

	r.Detector = topics.NewDetector(cfg.Keywords)
	r.Topics = topics.NewManager(r.Bus, r.roleOf)
	r.Cycles = research.NewMachine(&busNotifier{bus: r.Bus})
	r.Governance = governance.New(cfg.Governance)
	r.Intentions = intention.New(r.Bus, cfg.Scopes, cfg.Triggers)
	r.Feedback = feedback.NewChannel()
	r.Performance = performance.NewSystem()
	r.Reports = report.NewBuilder(r.Performance, r.roster(), r.Budgets, r.Governance, r.Cycles)

	r.Sched = scheduler.New(r.Bus, cfg.Scheduler)
	for id, ac := range cfg.Agents {
		rt := agent.NewRuntime(id, ac, agent.Deps{
			Bus:    r.Bus,
			LLM:    opts.LLM,
			Router: r.Router,
			Sched:  cfg.Scheduler,
		})
		r.Sched.AddAgent(rt)
	}

	r.Sched.RegisterSweeper("topics", r.Topics.ExpireStale)
	r.Sched.RegisterSweeper("intentions", r.Intentions.ExpireStale)
	r.Sched.RegisterSweeper("memory", r.Memory.PurgeExpired)

	r.subscribeDetection()

	if opts.Watch {
		w, err := config.NewWatcher(cfg)
		if err != nil {
			return nil, fmt.Errorf("starting config watcher: %w", err)
		}
		w.OnKeywords = r.Detector.Swap
		w.OnPermissions = r.Permissions.Swap
		r.watcher = w
	}
	return r, nil
}

// Start launches the watcher and the scheduler.
func (r *Runtime) Start(ctx context.Context) error {
	if r.watcher != nil {
		r.watcher.Start()
	}
	return r.Sched.Start(ctx)
}

// Stop shuts everything down in reverse order.
func (r *Runtime) Stop() {
	r.Sched.Stop()
	if r.watcher != nil {
		r.watcher.Stop()
	}
}

// registerBudgets creates team accounts, links members and gives unattached
// agents their own account.
func (r *Runtime) registerBudgets() error {
	for id, team := range r.Cfg.Teams {
		if _, err := r.Budgets.RegisterAccount(id, budget.AccountTeam, team.WeeklyBudget); err != nil {
			return fmt.Errorf("registering team account %q: %w", id, err)
		}
	}
	for id, ac := range r.Cfg.Agents {
		if ac.Team != "" {
			if _, ok := r.Budgets.Get(ac.Team); ok {
				r.Budgets.LinkAgentTeam(id, ac.Team)
				continue
			}
			slog.Warn("Agent references unknown team, using own account", "agent", id, "team", ac.Team)
		}
		points := ac.WeeklyBudget
		if points <= 0 {
			points = defaultAgentBudget
		}
		if _, err := r.Budgets.RegisterAccount(id, budget.AccountAgent, points); err != nil {
			return fmt.Errorf("registering agent account %q: %w", id, err)
		}
	}
	return nil
}

// subscribeDetection scans direct, broadcast and meeting traffic for topic
// proposals.
func (r *Runtime) subscribeDetection() {
	for _, kind := range []bus.ChannelKind{bus.ChannelDirect, bus.ChannelBroadcast, bus.ChannelMeeting} {
		r.Bus.Subscribe("topic-detector", kind, "*", r.detectTopic, nil)
	}
}

// detectTopic runs the keyword and explicit-marker detectors over one
// message and proposes any detected topic. Only conversational kinds are
// scanned: announcements include topic text themselves and must not
// re-trigger detection.
func (r *Runtime) detectTopic(msg bus.Message) {
	if msg.From == "" || msg.From == "system" {
		return
	}
	switch msg.Kind {
	case bus.KindText, bus.KindMemo, bus.KindDiscussion:
	default:
		return
	}
	if _, ok := msg.Metadata["topic_id"]; ok {
		return
	}

	t, err := r.Detector.DetectExplicit(msg.Content, msg.From)
	if err != nil {
		slog.Warn("Malformed topic proposal ignored", "from", msg.From, "error", err)
		return
	}
	if t == nil {
		t = r.Detector.Detect(msg.Content, msg.From)
	}
	if t == nil {
		return
	}
	r.Topics.Propose(t)
	slog.Info("Topic proposed from message traffic",
		"topic", t.ID, "kind", t.Kind, "proposer", t.Proposer, "priority", t.Priority.String())
}

// EvaluateTriggers feeds a metric sample into the risk-trigger table.
func (r *Runtime) EvaluateTriggers(metrics map[string]float64) []string {
	return r.Intentions.EvaluateTriggers(metrics)
}

// RunComplianceCheck evaluates current positions against the active rules
// and reports violations to the governance agent.
func (r *Runtime) RunComplianceCheck(positions governance.Position) governance.ComplianceResult {
	result := r.Governance.CheckCompliance(positions)
	for _, v := range result.Violations {
		r.Bus.SendSystem(r.Cfg.Scheduler.GovernanceAgentID,
			"Compliance violation: "+v.RuleID, v.Message,
			map[string]any{"rule_id": v.RuleID, "severity": v.Severity, "metric": v.Metric})
	}
	return result
}

// GenerateBoardReport builds the weekly report, writes the workbook to path
// and attaches it to the board room when one is active.
func (r *Runtime) GenerateBoardReport(path, roomID string) (report.BoardReport, error) {
	rep := r.Reports.Build()
	if err := report.WriteXLSX(rep, path); err != nil {
		return rep, err
	}
	if roomID != "" && r.Bus.IsMeetingActive(roomID) {
		report.AttachToMeeting(r.Bus, roomID, r.Cfg.Scheduler.ChiefOfStaffID, rep)
	}
	return rep, nil
}

func (r *Runtime) roleOf(agentID string) (config.RoleKind, bool) {
	ac, ok := r.Cfg.Agents[agentID]
	if !ok {
		return "", false
	}
	return ac.Role, true
}

func (r *Runtime) teamOf(agentID string) string {
	if ac, ok := r.Cfg.Agents[agentID]; ok {
		return ac.Team
	}
	return ""
}

func (r *Runtime) roster() report.Roster {
	roster := make(report.Roster, len(r.Cfg.Agents))
	for id, ac := range r.Cfg.Agents {
		roster[id] = ac.Role
	}
	return roster
}

// busNotifier forwards research-cycle transitions onto the bus.
type busNotifier struct {
	bus *bus.MessageBus
}

func (n *busNotifier) CycleAdvanced(c research.Cycle, tr research.Transition) {
	n.bus.SendSystem(c.Owner,
		fmt.Sprintf("Research cycle advanced to %s", tr.To),
		fmt.Sprintf("Cycle %q moved from %s to %s by %s.", c.Title, tr.From, tr.To, tr.Actor),
		map[string]any{"cycle_id": c.ID, "state": string(tr.To)})
}

func (n *busNotifier) CycleRejected(c research.Cycle, tr research.Transition) {
	n.bus.SendSystem(c.Owner,
		"Research cycle rejected back to idea intake",
		fmt.Sprintf("Cycle %q was rejected at %s by %s: %s", c.Title, tr.From, tr.Actor, tr.Note),
		map[string]any{"cycle_id": c.ID, "rejections": c.Rejections, "at": tr.At.Format(time.RFC3339)})
}
