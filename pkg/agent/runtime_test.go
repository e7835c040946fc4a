package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/budget"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/tools"
)

type testEnv struct {
	bus    *bus.MessageBus
	stub   *llm.StubClient
	router *tools.Router
	rt     *Runtime
}

func newTestRuntime(t *testing.T, id string, role config.RoleKind) *testEnv {
	t.Helper()

	b := bus.New()
	b.RegisterMailbox(id)

	stub := llm.NewStubClient("ok")

	registry := tools.NewRegistry(map[string]*config.ToolSchemaConfig{
		"market.get_ohlcv": {
			Description: "fetch candles",
			Category:    config.CategoryMarket,
			BaseCost:    1,
			CostPerUnit: 0.01,
			CostUnit:    "rows",
		},
		"backtest.run": {
			Description: "run a backtest",
			Category:    config.CategoryBacktest,
			BaseCost:    2,
		},
	})
	registry.BindHandler(config.CategoryMarket, tools.HandlerFunc(
		func(_ context.Context, _ tools.Request) (*tools.Result, error) {
			return &tools.Result{Success: true, Data: "candles", DataVersionHash: "v1"}, nil
		}))
	registry.BindHandler(config.CategoryBacktest, tools.HandlerFunc(
		func(_ context.Context, _ tools.Request) (*tools.Result, error) {
			return &tools.Result{Success: true, Data: "sharpe 1.2", ExperimentID: "exp-1"}, nil
		}))

	budgets := budget.NewManager(nil)
	_, err := budgets.RegisterAccount(id, budget.AccountAgent, 1000)
	require.NoError(t, err)

	router := tools.NewRouter(registry, tools.NewPermissions(nil), budgets, tools.NewMemoryAuditSink())

	sched := config.DefaultSchedulerConfig()
	sched.AgentInterval = 10 * time.Millisecond
	sched.MailboxTimeout = 5 * time.Millisecond

	rt := NewRuntime(id, &config.AgentConfig{
		Name:       id,
		Department: "research",
		Role:       role,
		ReportsTo:  "research_lead",
	}, Deps{Bus: b, LLM: stub, Router: router, Sched: sched})

	return &testEnv{bus: b, stub: stub, router: router, rt: rt}
}

func TestHandleBusMessageQueuesRespondTask(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)

	env.rt.HandleBusMessage(bus.Message{
		From: "bob", To: "alice", Subject: "question",
		Content: "what is the plan?", Kind: bus.KindText, Priority: 1,
	})

	require.Equal(t, 1, env.rt.QueueSize())
	task := env.rt.queue.Pop()
	assert.Equal(t, TaskRespond, task.Kind)
	assert.Equal(t, "bob", task.payloadString("from"))
	assert.Equal(t, PriorityNormal, task.Priority)
}

func TestHandleBusMessageHighPriority(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)

	env.rt.HandleBusMessage(bus.Message{
		From: "bob", To: "alice", Content: "urgent!", Kind: bus.KindText, Priority: 2,
	})

	task := env.rt.queue.Pop()
	require.NotNil(t, task)
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestMeetingInvitationQueuesMeetingTask(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)

	env.rt.HandleBusMessage(bus.Message{
		Kind:    bus.KindSystem,
		Subject: "Meeting invitation: risk sync",
		Metadata: map[string]any{
			"meeting_id": "m-1",
		},
	})

	task := env.rt.queue.Pop()
	require.NotNil(t, task)
	assert.Equal(t, TaskMeeting, task.Kind)
	assert.Equal(t, "m-1", task.payloadString("meeting_id"))
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestRespondTaskSendsReply(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.bus.RegisterMailbox("bob")
	env.stub.Responses = map[string]string{"message from bob": "here is my reply"}

	env.rt.Enqueue(NewTask(TaskRespond, map[string]any{
		"message": "what is the plan?", "from": "bob", "subject": "question",
	}, PriorityNormal))
	env.rt.ProcessNextTask(context.Background())

	msgs := env.bus.PeekMessages("bob", 10)
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice", msgs[0].From)
	assert.Equal(t, "here is my reply", msgs[0].Content)
}

func TestTransientFailureRetriesThenFails(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.stub.Err = errors.New("model unavailable")

	task := NewTask(TaskThink, map[string]any{"prompt": "hello"}, PriorityNormal).WithMaxRetries(2)
	env.rt.Enqueue(task)

	env.rt.ProcessNextTask(context.Background())
	require.Equal(t, 1, env.rt.QueueSize(), "first transient failure re-enqueues")
	env.rt.ProcessNextTask(context.Background())
	require.Equal(t, 1, env.rt.QueueSize(), "second transient failure re-enqueues")
	env.rt.ProcessNextTask(context.Background())
	assert.Equal(t, 0, env.rt.QueueSize(), "retry budget exhausted, task dropped")

	var failed bool
	for _, a := range env.rt.ActivityLog() {
		if a.Type == "task_failed" {
			failed = true
		}
	}
	assert.True(t, failed)
}

func TestExpiredTaskSkipped(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)

	task := NewTask(TaskThink, map[string]any{"prompt": "late"}, PriorityNormal).
		WithDeadline(time.Now().Add(-time.Second))
	env.rt.Enqueue(task)
	env.rt.ProcessNextTask(context.Background())

	assert.Equal(t, 0, env.stub.CallCount(), "expired task must not execute")
}

func TestMeetingTaskContributes(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.bus.RegisterMailbox("host")
	room := env.bus.CreateMeetingRoom("m-7", "strategy review", "host", []string{"alice"})
	require.NotNil(t, room)
	env.bus.SendToMeeting("m-7", "host", "opening remarks", bus.KindDiscussion)
	env.stub.Responses = map[string]string{"strategy review": "I support option two"}

	env.rt.Enqueue(NewTask(TaskMeeting, map[string]any{
		"meeting_id": "m-7", "agenda": "pick a strategy",
	}, PriorityHigh))
	env.rt.ProcessNextTask(context.Background())

	got, ok := env.bus.GetMeetingRoom("m-7")
	require.True(t, ok)
	transcript := got.TranscriptSnapshot()
	require.Len(t, transcript, 2)
	assert.Equal(t, "alice", transcript[1].From)
	assert.Equal(t, "I support option two", transcript[1].Content)
}

func TestReviewDecisionParsing(t *testing.T) {
	assert.Equal(t, DecisionApproved, ParseReviewDecision("I think this is APPROVED."))
	assert.Equal(t, DecisionRejected, ParseReviewDecision("Rejected: too risky"))
	assert.Equal(t, DecisionNeedRevision, ParseReviewDecision("needs revision before approval"))
	assert.Equal(t, DecisionNeedRevision, ParseReviewDecision("unclear"))
}

func TestRuntimeLoopRespondsToDirectMessage(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.bus.RegisterMailbox("bob")
	env.stub.Default = "acknowledged"

	env.rt.Start(context.Background())
	defer env.rt.Stop()

	env.bus.SendDirect("bob", "alice", "ping", "are you there?", bus.KindText, nil, 1)

	require.Eventually(t, func() bool {
		return env.bus.MailboxSize("bob") > 0
	}, 2*time.Second, 10*time.Millisecond)

	msgs := env.bus.PeekMessages("bob", 10)
	assert.Equal(t, "acknowledged", msgs[0].Content)
}

func TestFrozenAgentProcessesNothing(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.rt.SetStatus(StatusFrozen)

	env.rt.Start(context.Background())
	defer env.rt.Stop()

	env.bus.SendDirect("bob", "alice", "ping", "hello", bus.KindText, nil, 1)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, env.bus.MailboxSize("alice"), "frozen agent leaves its mailbox untouched")
	assert.Equal(t, 0, env.stub.CallCount())
}

func TestStopIsIdempotent(t *testing.T) {
	env := newTestRuntime(t, "alice", config.RoleExecutive)
	env.rt.Start(context.Background())
	env.rt.Stop()
	env.rt.Stop()
}
