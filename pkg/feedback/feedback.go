// Package feedback implements the organization feedback channel and the
// capability system: category-routed feedback intake, tool-request
// aggregation with priority scoring, and capability-gap reporting over tool
// usage.
package feedback

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category routes a feedback item to its handler.
type Category string

// Feedback categories.
const (
	CategoryToolRequest        Category = "tool_request"
	CategoryProcessImprovement Category = "process_improvement"
	CategoryOrgIssue           Category = "org_issue"
	CategoryCollaboration      Category = "collaboration"
	CategoryCapabilityGap      Category = "capability_gap"
)

// Item is one feedback entry.
type Item struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Agent     string    `json:"agent"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToolRequest aggregates demand for a tool that does not exist yet.
// Duplicate requests for the same tool increment the count instead of
// creating a new row.
type ToolRequest struct {
	ID           string    `json:"id"`
	ToolName     string    `json:"tool_name"`
	Description  string    `json:"description"`
	RequestCount int       `json:"request_count"`
	Requesters   []string  `json:"requesters"`
	Urgency      float64   `json:"urgency"`     // [0,1]
	Feasibility  float64   `json:"feasibility"` // [0,1]
	Deployed     bool      `json:"deployed"`
	FirstAsked   time.Time `json:"first_asked"`
	LastAsked    time.Time `json:"last_asked"`
}

// PriorityScore weighs demand, urgency and feasibility.
func (r *ToolRequest) PriorityScore() float64 {
	demand := float64(r.RequestCount) / 10
	if demand > 1 {
		demand = 1
	}
	return demand*0.3 + r.Urgency*0.3 + r.Feasibility*0.4
}

// Handler consumes feedback items of one category.
type Handler func(Item)

// Channel is the feedback intake with a fixed handler per category.
type Channel struct {
	mu       sync.Mutex
	items    []Item
	requests map[string]*ToolRequest // keyed by tool name
	handlers map[Category]Handler

	now func() time.Time
}

// NewChannel creates an empty feedback channel.
func NewChannel() *Channel {
	return &Channel{
		requests: make(map[string]*ToolRequest),
		handlers: make(map[Category]Handler),
		now:      time.Now,
	}
}

// OnCategory registers the handler for a category. One handler per category.
func (c *Channel) OnCategory(cat Category, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[cat] = h
}

// Submit records a feedback item and routes it to its category handler.
func (c *Channel) Submit(agent string, cat Category, content string) Item {
	c.mu.Lock()
	item := Item{
		ID:        uuid.New().String(),
		Category:  cat,
		Agent:     agent,
		Content:   content,
		CreatedAt: c.now(),
	}
	c.items = append(c.items, item)
	h := c.handlers[cat]
	c.mu.Unlock()

	slog.Info("Feedback submitted", "agent", agent, "category", cat)
	if h != nil {
		h(item)
	}
	return item
}

// RequestTool records demand for a missing tool. A repeat request for an
// undeployed tool increments the existing row and merges the requester; the
// higher urgency wins.
func (c *Channel) RequestTool(agent, toolName, description string, urgency, feasibility float64) *ToolRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if r, ok := c.requests[toolName]; ok && !r.Deployed {
		r.RequestCount++
		r.LastAsked = now
		if urgency > r.Urgency {
			r.Urgency = urgency
		}
		if !contains(r.Requesters, agent) {
			r.Requesters = append(r.Requesters, agent)
		}
		slog.Info("Tool request deduplicated", "tool", toolName, "count", r.RequestCount)
		return r
	}

	r := &ToolRequest{
		ID:           uuid.New().String(),
		ToolName:     toolName,
		Description:  description,
		RequestCount: 1,
		Requesters:   []string{agent},
		Urgency:      urgency,
		Feasibility:  feasibility,
		FirstAsked:   now,
		LastAsked:    now,
	}
	c.requests[toolName] = r
	return r
}

// MarkDeployed closes a tool request; later requests for the same name open
// a fresh row.
func (c *Channel) MarkDeployed(toolName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.requests[toolName]
	if !ok {
		return false
	}
	r.Deployed = true
	return true
}

// ToolRequests returns the open tool requests sorted by priority score,
// highest first.
func (c *Channel) ToolRequests() []ToolRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []ToolRequest
	for _, r := range c.requests {
		if !r.Deployed {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PriorityScore() > out[j].PriorityScore()
	})
	return out
}

// Items returns all feedback items, optionally filtered by category.
func (c *Channel) Items(cat Category) []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Item
	for _, it := range c.items {
		if cat == "" || it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// UsageStat is one tool's observed call volume over a reporting period.
type UsageStat struct {
	Tool        string  `json:"tool"`
	Calls       int     `json:"calls"`
	CallsPerDay float64 `json:"calls_per_day"`
}

// GapReport summarizes a period's tool usage, demand and deprecation
// candidates for the capability system.
type GapReport struct {
	PeriodDays            int           `json:"period_days"`
	Usage                 []UsageStat   `json:"usage"`
	MostRequested         []ToolRequest `json:"most_requested"`
	DeprecationCandidates []string      `json:"deprecation_candidates"`
	Priorities            []string      `json:"priorities"`
	GeneratedAt           time.Time     `json:"generated_at"`
}

// deprecationThreshold is the calls-per-day floor below which a tool is a
// deprecation candidate.
const deprecationThreshold = 0.1

// BuildGapReport combines observed tool-call counts with open tool requests
// into a capability-gap report.
func (c *Channel) BuildGapReport(callCounts map[string]int, periodDays int) GapReport {
	if periodDays <= 0 {
		periodDays = 7
	}

	report := GapReport{PeriodDays: periodDays, GeneratedAt: c.now()}
	for tool, calls := range callCounts {
		perDay := float64(calls) / float64(periodDays)
		report.Usage = append(report.Usage, UsageStat{Tool: tool, Calls: calls, CallsPerDay: perDay})
		if perDay < deprecationThreshold {
			report.DeprecationCandidates = append(report.DeprecationCandidates, tool)
		}
	}
	sort.Slice(report.Usage, func(i, j int) bool { return report.Usage[i].Calls > report.Usage[j].Calls })
	sort.Strings(report.DeprecationCandidates)

	report.MostRequested = c.ToolRequests()
	for _, r := range report.MostRequested {
		report.Priorities = append(report.Priorities,
			fmt.Sprintf("%s (score %.2f, asked %d times)", r.ToolName, r.PriorityScore(), r.RequestCount))
	}
	return report
}
