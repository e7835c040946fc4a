package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// intelligenceRole scans external news on a cooldown and routes notable
// findings to the agent's lead.
type intelligenceRole struct {
	mu       sync.Mutex
	lastScan time.Time

	now func() time.Time
}

func newIntelligenceRole() *intelligenceRole {
	return &intelligenceRole{now: time.Now}
}

func (i *intelligenceRole) CheckForWork(_ context.Context, rt *Runtime) {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastScan) < rt.sched.WorkCooldown {
		return
	}
	i.lastScan = now
	rt.Enqueue(NewTask(TaskScanIntel, nil, PriorityLow))
}

func (i *intelligenceRole) ExecuteTask(ctx context.Context, rt *Runtime, task *Task) (bool, error) {
	if task.Kind != TaskScanIntel {
		return false, nil
	}
	return true, i.scan(ctx, rt)
}

func (i *intelligenceRole) scan(ctx context.Context, rt *Runtime) error {
	res, err := rt.CallTool(ctx, "intelligence.search_news", map[string]any{
		"query": "crypto market",
	})
	if err != nil {
		rt.logActivity("intel_scan_skipped", err.Error())
		return nil
	}

	out, err := rt.Think(ctx, fmt.Sprintf(
		"Assess these news items for market impact. Reply NOTABLE: <summary> if anything warrants attention, otherwise NOTHING.\n%v",
		res.Data), nil)
	if err != nil {
		return err
	}

	if summary := parseNotable(out); summary != "" && rt.Config.ReportsTo != "" {
		rt.bus.SendDirect(rt.ID, rt.Config.ReportsTo, "Intelligence finding", summary, bus.KindMemo, nil, 2)
	}
	return nil
}

func parseNotable(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "NOTABLE:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
