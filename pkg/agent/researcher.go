package agent

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// researcherRole drives the proactive research behavior: opportunity hunting
// on a cooldown, validating discovered ideas and occasionally sampling the
// market.
type researcherRole struct {
	mu           sync.Mutex
	lastWork     time.Time
	currentTopic string
	pendingIdeas []string

	chance func() float64
	now    func() time.Time
}

func newResearcherRole() *researcherRole {
	return &researcherRole{
		chance: rand.Float64,
		now:    time.Now,
	}
}

func (r *researcherRole) CheckForWork(_ context.Context, rt *Runtime) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastWork) < rt.sched.WorkCooldown {
		return
	}
	r.lastWork = now

	switch {
	case r.currentTopic == "":
		rt.Enqueue(NewTask(TaskFindOpportunity, nil, PriorityNormal))
	case len(r.pendingIdeas) > 0:
		idea := r.pendingIdeas[0]
		r.pendingIdeas = r.pendingIdeas[1:]
		rt.Enqueue(NewTask(TaskValidateIdea, map[string]any{"idea": idea}, PriorityNormal))
	case r.chance() < 0.3:
		rt.Enqueue(NewTask(TaskObserveMarket, nil, PriorityLow))
	}
}

func (r *researcherRole) ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (bool, error) {
	switch task.Kind {
	case TaskFindOpportunity:
		return true, r.findOpportunity(ctx, rt)
	case TaskValidateIdea:
		return true, r.validateIdea(ctx, rt, task)
	case TaskObserveMarket:
		return true, r.observeMarket(ctx, rt)
	case TaskRunBacktest:
		return true, r.runBacktest(ctx, rt, task)
	default:
		return false, nil
	}
}

// findOpportunity asks the LLM for candidate research directions. Each
// DISCOVERY line becomes a pending idea; the first one becomes the current
// topic and is reported to the agent's lead.
func (r *researcherRole) findOpportunity(ctx context.Context, rt *Runtime) error {
	prompt := "Survey recent market behavior and list promising research directions. " +
		"Prefix each candidate with DISCOVERY: on its own line."
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return err
	}

	ideas := parseDiscoveries(out)
	if len(ideas) == 0 {
		return nil
	}

	r.mu.Lock()
	r.currentTopic = ideas[0]
	r.pendingIdeas = append(r.pendingIdeas, ideas...)
	r.mu.Unlock()

	if rt.Config.ReportsTo != "" {
		rt.bus.SendDirect(rt.ID, rt.Config.ReportsTo, "Research opportunity",
			fmt.Sprintf("Found %d candidate directions. Leading with: %s", len(ideas), ideas[0]),
			bus.KindMemo, nil, 1)
	}
	return nil
}

// validateIdea does a quick data sanity check on an idea, then asks the LLM
// for a verdict. A failed market fetch does not block the verdict.
func (r *researcherRole) validateIdea(ctx context.Context, rt *Runtime, task *Task) error {
	idea := task.payloadString("idea")

	sample, err := rt.CallTool(ctx, "market.get_ohlcv", map[string]any{
		"symbol":    "BTC/USDT",
		"timeframe": "1h",
		"limit":     100,
	})
	dataNote := "no market sample available"
	if err == nil && sample.Success {
		dataNote = fmt.Sprintf("market sample fetched (data version %s)", sample.DataVersionHash)
	}

	prompt := fmt.Sprintf("Validate this research idea: %s\nContext: %s\n"+
		"Answer with VALID or INVALID and one sentence of reasoning.", idea, dataNote)
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return err
	}

	if strings.Contains(strings.ToUpper(out), "VALID") && !strings.Contains(strings.ToUpper(out), "INVALID") {
		rt.Enqueue(NewTask(TaskRunBacktest, map[string]any{"idea": idea}, PriorityNormal))
	}
	return nil
}

func (r *researcherRole) observeMarket(ctx context.Context, rt *Runtime) error {
	res, err := rt.CallTool(ctx, "market.get_ohlcv", map[string]any{
		"symbol":    "BTC/USDT",
		"timeframe": "1h",
		"limit":     50,
	})
	if err != nil {
		rt.logActivity("observe_market_skipped", err.Error())
		return nil
	}
	_, thinkErr := rt.Think(ctx, fmt.Sprintf("Summarize anything notable in this market sample: %v", res.Data), nil)
	return thinkErr
}

func (r *researcherRole) runBacktest(ctx context.Context, rt *Runtime, task *Task) error {
	idea := task.payloadString("idea")
	res, err := rt.CallTool(ctx, "backtest.run", map[string]any{
		"strategy": idea,
		"params":   1,
	})
	if err != nil {
		return fmt.Errorf("backtest for %q: %w", idea, err)
	}
	if rt.Config.ReportsTo != "" {
		rt.bus.SendDirect(rt.ID, rt.Config.ReportsTo, "Backtest result",
			fmt.Sprintf("Idea: %s\nExperiment: %s\nResult: %v", idea, res.ExperimentID, res.Data),
			bus.KindMemo, nil, 1)
	}
	return nil
}

// ClearTopic resets the current topic so the next cooldown restarts
// opportunity hunting.
func (r *researcherRole) ClearTopic() {
	r.mu.Lock()
	r.currentTopic = ""
	r.mu.Unlock()
}

func parseDiscoveries(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "DISCOVERY:"); ok {
			if rest = strings.TrimSpace(rest); rest != "" {
				out = append(out, rest)
			}
		}
	}
	return out
}
