package agent

import (
	"context"
	"fmt"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// traderRole turns approved strategies into execution plans and paper
// orders.
type traderRole struct{}

func newTraderRole() *traderRole { return &traderRole{} }

func (t *traderRole) CheckForWork(context.Context, *Runtime) {}

func (t *traderRole) ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (bool, error) {
	if task.Kind != TaskPlanExecution {
		return false, nil
	}
	return true, t.planExecution(ctx, rt, task)
}

// planExecution drafts an execution plan for a strategy and places a paper
// order through the trading tool. The order confirmation goes back to the
// requester.
func (t *traderRole) planExecution(ctx context.Context, rt *Runtime, task *Task) error {
	strategy := task.payloadString("strategy")

	plan, err := rt.Think(ctx, fmt.Sprintf(
		"Draft an execution plan for this strategy, including symbol, side and sizing:\n%s", strategy), nil)
	if err != nil {
		return err
	}

	res, err := rt.CallTool(ctx, "trading.paper_order", map[string]any{
		"strategy": strategy,
		"plan":     plan,
	})
	if err != nil {
		return fmt.Errorf("paper order: %w", err)
	}

	replyTo := task.payloadString("from")
	if replyTo == "" {
		replyTo = rt.Config.ReportsTo
	}
	if replyTo != "" {
		rt.bus.SendDirect(rt.ID, replyTo, "Execution plan",
			fmt.Sprintf("Plan:\n%s\nOrder result: %v", plan, res.Data), bus.KindMemo, nil, 1)
	}
	return nil
}
