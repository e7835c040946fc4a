package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/config"
)

func TestResearcherCooldownGatesWork(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	role := env.rt.role.(*researcherRole)

	now := time.Now()
	role.now = func() time.Time { return now }

	role.CheckForWork(context.Background(), env.rt)
	require.Equal(t, 1, env.rt.QueueSize())
	task := env.rt.queue.Pop()
	assert.Equal(t, TaskFindOpportunity, task.Kind)

	// Within the cooldown nothing new is enqueued.
	role.CheckForWork(context.Background(), env.rt)
	assert.Equal(t, 0, env.rt.QueueSize())

	// After the cooldown the researcher works again.
	now = now.Add(env.rt.sched.WorkCooldown + time.Second)
	role.CheckForWork(context.Background(), env.rt)
	assert.Equal(t, 1, env.rt.QueueSize())
}

func TestResearcherValidatesPendingIdeasFirst(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	role := env.rt.role.(*researcherRole)
	role.currentTopic = "momentum decay"
	role.pendingIdeas = []string{"idea A", "idea B"}

	role.CheckForWork(context.Background(), env.rt)

	task := env.rt.queue.Pop()
	require.NotNil(t, task)
	assert.Equal(t, TaskValidateIdea, task.Kind)
	assert.Equal(t, "idea A", task.payloadString("idea"))
	assert.Equal(t, []string{"idea B"}, role.pendingIdeas)
}

func TestResearcherObserveMarketProbability(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	role := env.rt.role.(*researcherRole)
	role.currentTopic = "momentum decay"

	role.chance = func() float64 { return 0.9 }
	role.CheckForWork(context.Background(), env.rt)
	assert.Equal(t, 0, env.rt.QueueSize(), "above threshold: idle this cycle")

	role.lastWork = time.Time{}
	role.chance = func() float64 { return 0.1 }
	role.CheckForWork(context.Background(), env.rt)
	require.Equal(t, 1, env.rt.QueueSize())
	assert.Equal(t, TaskObserveMarket, env.rt.queue.Pop().Kind)
}

func TestFindOpportunityParsesDiscoveries(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	env.bus.RegisterMailbox("research_lead")
	env.stub.Responses = map[string]string{
		"research directions": "Some intro.\nDISCOVERY: funding rate reversal\nDISCOVERY: weekend volatility gap\n",
	}
	role := env.rt.role.(*researcherRole)

	env.rt.Enqueue(NewTask(TaskFindOpportunity, nil, PriorityNormal))
	env.rt.ProcessNextTask(context.Background())

	assert.Equal(t, "funding rate reversal", role.currentTopic)
	assert.Len(t, role.pendingIdeas, 2)

	msgs := env.bus.PeekMessages("research_lead", 10)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Research opportunity", msgs[0].Subject)
}

func TestValidateIdeaQueuesBacktestOnValid(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	env.stub.Responses = map[string]string{
		"Validate this research idea": "VALID because the sample supports it",
	}

	env.rt.Enqueue(NewTask(TaskValidateIdea, map[string]any{"idea": "funding rate reversal"}, PriorityNormal))
	env.rt.ProcessNextTask(context.Background())

	require.Equal(t, 1, env.rt.QueueSize())
	next := env.rt.queue.Pop()
	assert.Equal(t, TaskRunBacktest, next.Kind)
	assert.Equal(t, "funding rate reversal", next.payloadString("idea"))
}

func TestValidateIdeaInvalidStops(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	env.stub.Responses = map[string]string{
		"Validate this research idea": "INVALID, the effect disappears after fees",
	}

	env.rt.Enqueue(NewTask(TaskValidateIdea, map[string]any{"idea": "tick drift"}, PriorityNormal))
	env.rt.ProcessNextTask(context.Background())

	assert.Equal(t, 0, env.rt.QueueSize())
}

func TestRunBacktestReportsToLead(t *testing.T) {
	env := newTestRuntime(t, "quant_1", config.RoleResearcher)
	env.bus.RegisterMailbox("research_lead")

	env.rt.Enqueue(NewTask(TaskRunBacktest, map[string]any{"idea": "funding rate reversal"}, PriorityNormal))
	env.rt.ProcessNextTask(context.Background())

	msgs := env.bus.PeekMessages("research_lead", 10)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Backtest result", msgs[0].Subject)
	assert.Contains(t, msgs[0].Content, "exp-1")
}

func TestParseDiscoveries(t *testing.T) {
	ideas := parseDiscoveries("noise\nDISCOVERY: one\n  DISCOVERY:   two  \nDISCOVERY:\n")
	assert.Equal(t, []string{"one", "two"}, ideas)
}
