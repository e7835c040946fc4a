package agent

import (
	"context"
	"fmt"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// riskRole handles compliance reviews and acts on fired risk triggers.
type riskRole struct{}

func newRiskRole() *riskRole { return &riskRole{} }

func (r *riskRole) CheckForWork(context.Context, *Runtime) {}

func (r *riskRole) ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (bool, error) {
	switch task.Kind {
	case TaskComplianceReview:
		return true, r.complianceReview(ctx, rt, task)
	case TaskEvaluateTriggers:
		return true, r.actOnTriggers(rt, task)
	default:
		return false, nil
	}
}

// complianceReview reviews an item for policy compliance. Rejections are
// escalated to the governance agent.
func (r *riskRole) complianceReview(ctx context.Context, rt *Runtime, task *Task) error {
	item := task.payloadString("item")
	decision, err := rt.Review(ctx, item, "compliance item")
	if err != nil {
		return err
	}

	from := task.payloadString("from")
	if from != "" {
		rt.bus.SendDirect(rt.ID, from, "Compliance review: "+string(decision),
			fmt.Sprintf("Compliance verdict: %s", decision), bus.KindMemo, nil, 1)
	}
	if decision == DecisionRejected && rt.sched.GovernanceAgentID != "" {
		rt.bus.SendDirect(rt.ID, rt.sched.GovernanceAgentID, "Compliance violation",
			fmt.Sprintf("Rejected compliance item from %s:\n%s", from, item), bus.KindMemo, nil, 2)
	}
	return nil
}

// actOnTriggers warns the agents named by each fired trigger. The trigger
// evaluation itself happens upstream; this task carries the results.
func (r *riskRole) actOnTriggers(rt *Runtime, task *Task) error {
	fired, _ := task.Payload["fired"].([]map[string]any)
	for _, f := range fired {
		triggerID, _ := f["id"].(string)
		action, _ := f["action"].(string)
		targets, _ := f["targets"].([]string)
		for _, target := range targets {
			rt.bus.SendDirect(rt.ID, target, "Risk trigger fired: "+triggerID,
				fmt.Sprintf("Trigger %s fired, required action: %s", triggerID, action),
				bus.KindMemo, map[string]any{"trigger_id": triggerID, "action": action}, 2)
		}
		rt.logActivity("trigger_handled", triggerID)
	}
	return nil
}
