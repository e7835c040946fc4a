package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/NoAme666/aiquant/pkg/tools"
)

// TeamLookup resolves an agent id to its team, empty when none.
type TeamLookup func(agentID string) string

// Handler serves the memory tool category: memory.write and memory.search.
type Handler struct {
	service *Service
	teamOf  TeamLookup
}

// NewHandler creates the memory tool handler. teamOf may be nil.
func NewHandler(service *Service, teamOf TeamLookup) *Handler {
	if service == nil {
		panic("memory.NewHandler: service is nil")
	}
	return &Handler{service: service, teamOf: teamOf}
}

// Execute implements tools.Handler.
func (h *Handler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	switch req.Tool {
	case "memory.write":
		return h.write(ctx, req, started)
	case "memory.search":
		return h.search(ctx, req, started)
	default:
		return nil, fmt.Errorf("memory handler does not serve %q", req.Tool)
	}
}

func (h *Handler) write(ctx context.Context, req tools.Request, started time.Time) (*tools.Result, error) {
	team := ""
	if h.teamOf != nil {
		team = h.teamOf(req.Agent)
	}

	in := WriteInput{
		Agent:      req.Agent,
		Team:       team,
		Content:    stringArg(req.Args, "content"),
		Tags:       stringSliceArg(req.Args, "tags"),
		Scope:      Scope(stringArg(req.Args, "scope")),
		Confidence: floatArg(req.Args, "confidence"),
		Refs: Refs{
			ExperimentID:    stringArg(req.Args, "experiment_id"),
			DataVersionHash: stringArg(req.Args, "data_version_hash"),
			ArtifactID:      stringArg(req.Args, "artifact_id"),
		},
	}
	if in.Scope == "" {
		in.Scope = ScopePrivate
	}
	if ttl, ok := req.Args["ttl_hours"]; ok {
		if hours, ok := toFloat(ttl); ok {
			in.TTL = time.Duration(hours * float64(time.Hour))
		}
	}

	rec, err := h.service.Write(ctx, in)
	if err != nil {
		return &tools.Result{
			Success: false, Error: err.Error(),
			StartedAt: started, CompletedAt: time.Now(),
		}, nil
	}

	return &tools.Result{
		Success: true,
		Data: map[string]any{
			"memory_id":        rec.ID,
			"approval_status":  string(rec.ApprovalStatus),
			"needed_approvals": rec.NeededApprovals,
		},
		StartedAt:   started,
		CompletedAt: time.Now(),
	}, nil
}

func (h *Handler) search(ctx context.Context, req tools.Request, started time.Time) (*tools.Result, error) {
	team := ""
	if h.teamOf != nil {
		team = h.teamOf(req.Agent)
	}

	limit := 10
	if v, ok := toFloat(req.Args["limit"]); ok {
		limit = int(v)
	}

	results, err := h.service.Search(ctx, req.Agent, team, stringArg(req.Args, "query"), limit)
	if err != nil {
		return &tools.Result{
			Success: false, Error: err.Error(),
			StartedAt: started, CompletedAt: time.Now(),
		}, nil
	}

	return &tools.Result{
		Success:     true,
		Data:        results,
		StartedAt:   started,
		CompletedAt: time.Now(),
	}, nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func stringSliceArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func floatArg(args map[string]any, key string) float64 {
	f, _ := toFloat(args[key])
	return f
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
