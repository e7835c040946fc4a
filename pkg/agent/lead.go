package agent

import (
	"context"
	"fmt"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// leadRole reviews proposals routed to team leads and directors. It is
// reactive: review work arrives as tasks, not on a cooldown.
type leadRole struct{}

func newLeadRole() *leadRole { return &leadRole{} }

func (l *leadRole) CheckForWork(context.Context, *Runtime) {}

func (l *leadRole) ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (bool, error) {
	if task.Kind != TaskReviewProposal {
		return false, nil
	}
	return true, l.reviewProposal(ctx, rt, task)
}

// reviewProposal runs the review and sends the verdict back to the
// submitter. Approved proposals are also forwarded up the reporting chain.
func (l *leadRole) reviewProposal(ctx context.Context, rt *Runtime, task *Task) error {
	proposal := task.payloadString("proposal")
	from := task.payloadString("from")

	decision, err := rt.Review(ctx, proposal, "proposal")
	if err != nil {
		return err
	}

	if from != "" {
		rt.bus.SendDirect(rt.ID, from, "Proposal review: "+string(decision),
			fmt.Sprintf("Your proposal was reviewed: %s", decision), bus.KindMemo, nil, 1)
	}
	if decision == DecisionApproved && rt.Config.ReportsTo != "" {
		rt.bus.SendDirect(rt.ID, rt.Config.ReportsTo, "Approved proposal",
			fmt.Sprintf("Approved proposal from %s:\n%s", from, proposal), bus.KindMemo, nil, 1)
	}
	rt.logActivity("proposal_reviewed", fmt.Sprintf("%s from %s", decision, from))
	return nil
}
