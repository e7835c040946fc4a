package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/agent"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/llm"
)

func newTestScheduler(t *testing.T) (*Scheduler, *bus.MessageBus) {
	t.Helper()
	b := bus.New()
	cfg := config.DefaultSchedulerConfig()
	cfg.TickInterval = 10 * time.Millisecond
	cfg.AgentInterval = 10 * time.Millisecond
	cfg.MailboxTimeout = 5 * time.Millisecond
	return New(b, cfg), b
}

func addAgent(s *Scheduler, b *bus.MessageBus, id string, cfg config.SchedulerConfig) *agent.Runtime {
	rt := agent.NewRuntime(id, &config.AgentConfig{
		Name: id, Department: "research", Role: config.RoleExecutive,
	}, agent.Deps{Bus: b, LLM: llm.NewStubClient("ok"), Sched: cfg})
	s.AddAgent(rt)
	return rt
}

func TestLifecycleStateMachine(t *testing.T) {
	s, _ := newTestScheduler(t)
	assert.Equal(t, StateStopped, s.State())

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateRunning, s.State())

	assert.Error(t, s.Start(context.Background()), "double start is rejected")

	s.Pause()
	assert.Equal(t, StatePaused, s.State())
	s.Resume()
	assert.Equal(t, StateRunning, s.State())

	s.Stop()
	assert.Equal(t, StateStopped, s.State())
}

func TestPauseOnlyFromRunning(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.Pause()
	assert.Equal(t, StateStopped, s.State())
	s.Resume()
	assert.Equal(t, StateStopped, s.State())
}

func TestAgentsStartAndStopWithScheduler(t *testing.T) {
	s, b := newTestScheduler(t)
	b.RegisterMailbox("operator")
	rt := addAgent(s, b, "alice", s.cfg)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	s.SendMessageToAgent("alice", "please acknowledge", "operator", "ping")
	require.Eventually(t, func() bool {
		return b.MailboxSize("operator") > 0
	}, 2*time.Second, 10*time.Millisecond, "agent loop should answer")

	statuses := s.GetAgentStatuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, "alice", statuses[0].ID)
	assert.Equal(t, agent.StatusActive, statuses[0].Status)
	_ = rt
}

func TestTickRunsDueJobsAndSweeps(t *testing.T) {
	s, _ := newTestScheduler(t)

	ran := 0
	s.AddJob(&Job{
		Name: "probe", Kind: JobInterval, Every: time.Nanosecond, Enabled: true,
		Handler: func(time.Time) { ran++ },
	})

	now := time.Now()
	s.now = func() time.Time { return now }
	s.approvals.now = s.now

	item := s.SubmitForApproval("budget", "raise", "", "quant_1", nil, time.Hour)

	for _, j := range s.jobs {
		j.seed(now)
	}
	now = now.Add(2 * time.Hour)
	s.tick()

	assert.Equal(t, 1, ran)
	got, _ := s.GetApproval(item.ID)
	assert.Equal(t, ApprovalRejected, got.Status)
	assert.Equal(t, expiredReason, got.DecisionReason)
}

func TestRegisteredSweeperRuns(t *testing.T) {
	s, _ := newTestScheduler(t)
	swept := 0
	s.RegisterSweeper("topics", func() int { swept++; return 1 })
	s.tick()
	assert.Equal(t, 1, swept)
}

func TestDefaultJobsRegistered(t *testing.T) {
	s, _ := newTestScheduler(t)

	names := map[string]bool{}
	for _, j := range s.GetScheduledTasks() {
		names[j.Name] = true
	}
	for _, want := range []string{"daily_standup", "weekly_board_report", "daily_compliance", "health_check"} {
		assert.True(t, names[want], "missing default job %s", want)
	}
}

func TestDailyStandupCreatesRoomWithLeads(t *testing.T) {
	s, b := newTestScheduler(t)

	lead := agent.NewRuntime("lead_1", &config.AgentConfig{
		Name: "lead_1", Department: "research", Role: config.RoleLead, IsLead: true,
	}, agent.Deps{Bus: b, LLM: llm.NewStubClient("ok"), Sched: s.cfg})
	s.AddAgent(lead)
	addAgent(s, b, "quant_1", s.cfg)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.runDailyStandup(now)

	room, ok := b.GetMeetingRoom("standup-2026-03-02")
	require.True(t, ok)
	assert.Contains(t, room.Participants, "lead_1")
	assert.NotContains(t, room.Participants, "quant_1")
}

func TestGetStats(t *testing.T) {
	s, b := newTestScheduler(t)
	addAgent(s, b, "alice", s.cfg)
	s.SubmitForApproval("budget", "raise", "", "alice", nil, time.Hour)

	stats := s.GetStats()
	assert.Equal(t, StateStopped, stats.State)
	assert.Equal(t, 1, stats.Agents)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.GreaterOrEqual(t, stats.Jobs, 4)
}
