// Package scheduler owns the agent runtimes and the global clock: per-agent
// loops, recurring jobs, the approval queue and the operator surface.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NoAme666/aiquant/pkg/agent"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

// State is the scheduler lifecycle state.
type State string

// Scheduler states.
const (
	StateStopped  State = "STOPPED"
	StateStarting State = "STARTING"
	StateRunning  State = "RUNNING"
	StatePaused   State = "PAUSED"
	StateStopping State = "STOPPING"
)

// Sweeper is a periodic maintenance hook (topic expiry, intention expiry).
// It returns how many records it touched.
type Sweeper func() int

// Scheduler drives the whole company: agent loops, timed jobs and the
// approval queue.
type Scheduler struct {
	cfg config.SchedulerConfig
	bus *bus.MessageBus

	mu        sync.Mutex
	state     State
	agents    map[string]*agent.Runtime
	jobs      []*Job
	sweepers  map[string]Sweeper
	startedAt time.Time

	approvals *approvalQueue

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

// New creates a scheduler over the shared bus.
func New(b *bus.MessageBus, cfg config.SchedulerConfig) *Scheduler {
	if b == nil {
		panic("scheduler.New: bus is nil")
	}
	s := &Scheduler{
		cfg:       cfg,
		bus:       b,
		state:     StateStopped,
		agents:    make(map[string]*agent.Runtime),
		sweepers:  make(map[string]Sweeper),
		approvals: newApprovalQueue(b, cfg.ChairmanID),
		stopCh:    make(chan struct{}),
		now:       time.Now,
	}
	s.registerDefaultJobs()
	return s
}

// AddAgent registers a runtime and its mailbox. Must be called before Start.
func (s *Scheduler) AddAgent(rt *agent.Runtime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[rt.ID] = rt
	s.bus.RegisterMailbox(rt.ID)
}

// AddJob registers an extra scheduled job. Must be called before Start.
func (s *Scheduler) AddJob(j *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, j)
}

// RegisterSweeper adds a named maintenance hook run on every tick.
func (s *Scheduler) RegisterSweeper(name string, fn Sweeper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepers[name] = fn
}

// State returns the lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start launches all agent loops, seeds job schedules and enters the main
// tick loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateStopped {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot start scheduler in state %s", state)
	}
	s.state = StateStarting
	s.startedAt = s.now()

	now := s.now()
	for _, j := range s.jobs {
		j.seed(now)
	}
	agents := make([]*agent.Runtime, 0, len(s.agents))
	for _, rt := range s.agents {
		agents = append(agents, rt)
	}
	s.mu.Unlock()

	for _, rt := range agents {
		rt.Start(ctx)
	}

	s.mu.Lock()
	s.state = StateRunning
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx)
	slog.Info("Scheduler started", "agents", len(agents), "jobs", len(s.jobs),
		"tick", s.cfg.TickInterval)
	return nil
}

// Pause keeps agent loops alive but stops job and sweep processing.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.state = StatePaused
		slog.Info("Scheduler paused")
	}
}

// Resume returns a paused scheduler to running.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePaused {
		s.state = StateRunning
		slog.Info("Scheduler resumed")
	}
}

// Stop cancels all agent loops and exits the main loop. Safe to call more
// than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	s.state = StateStopping
	agents := make([]*agent.Runtime, 0, len(s.agents))
	for _, rt := range s.agents {
		agents = append(agents, rt)
	}
	s.mu.Unlock()

	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()

	for _, rt := range agents {
		rt.Stop()
	}

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.State() != StateRunning {
				continue
			}
			s.tick()
		}
	}
}

// tick runs due jobs and maintenance sweeps.
func (s *Scheduler) tick() {
	now := s.now()

	s.mu.Lock()
	jobs := append([]*Job(nil), s.jobs...)
	sweepers := make(map[string]Sweeper, len(s.sweepers))
	for name, fn := range s.sweepers {
		sweepers[name] = fn
	}
	s.mu.Unlock()

	for _, j := range jobs {
		if j.runIfDue(now) {
			slog.Debug("Job ran", "job", j.Name)
		}
	}

	if n := s.approvals.sweepExpired(); n > 0 {
		slog.Info("Expired approvals auto-rejected", "count", n)
	}
	for name, fn := range sweepers {
		if n := fn(); n > 0 {
			slog.Info("Sweep completed", "sweeper", name, "touched", n)
		}
	}
}

// registerDefaultJobs wires the standing organization rhythm: morning
// standup, weekly board report, daily compliance review and the health
// check.
func (s *Scheduler) registerDefaultJobs() {
	s.jobs = append(s.jobs,
		&Job{
			Name: "daily_standup", Kind: JobDaily, Hour: 9, Minute: 0, Enabled: true,
			Handler: s.runDailyStandup,
		},
		&Job{
			Name: "weekly_board_report", Kind: JobWeekly, Day: time.Friday, Hour: 16, Minute: 0, Enabled: true,
			Handler: func(time.Time) {
				s.bus.SendSystem(s.cfg.ChiefOfStaffID, "Weekly board report due",
					"Generate the weekly board report for the upcoming board meeting.",
					map[string]any{"job": "weekly_board_report"})
			},
		},
		&Job{
			Name: "daily_compliance", Kind: JobDaily, Hour: 18, Minute: 0, Enabled: true,
			Handler: func(time.Time) {
				s.bus.SendSystem(s.cfg.GovernanceAgentID, "Daily compliance review",
					"Run the daily compliance review over current positions.",
					map[string]any{"job": "daily_compliance"})
			},
		},
		&Job{
			Name: "health_check", Kind: JobInterval, Every: 5 * time.Minute, Enabled: true,
			Handler: s.runHealthCheck,
		},
	)
}

func (s *Scheduler) runDailyStandup(now time.Time) {
	leads := s.leadIDs()
	roomID := "standup-" + now.Format("2006-01-02")
	s.bus.CreateMeetingRoom(roomID, "Daily standup "+now.Format("2006-01-02"), s.cfg.ChiefOfStaffID, leads)
}

func (s *Scheduler) runHealthCheck(now time.Time) {
	s.mu.Lock()
	agents := make([]*agent.Runtime, 0, len(s.agents))
	for _, rt := range s.agents {
		agents = append(agents, rt)
	}
	s.mu.Unlock()

	for _, rt := range agents {
		idle := now.Sub(rt.LastActive())
		if idle > s.cfg.HealthIdleAfter {
			slog.Warn("Agent inactive", "agent", rt.ID, "idle", idle.Round(time.Second),
				"status", rt.Status())
		}
	}
}

func (s *Scheduler) leadIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for id, rt := range s.agents {
		if rt.Config.IsLead || rt.Config.Role == config.RoleLead {
			out = append(out, id)
		}
	}
	return out
}
