package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/tools"
)

func newHandler() (*Handler, *Service) {
	svc := NewService(nil, nil)
	h := NewHandler(svc, func(agent string) string {
		if agent == "quant_1" {
			return "alpha_a"
		}
		return ""
	})
	return h, svc
}

func TestHandlerWrite(t *testing.T) {
	h, svc := newHandler()

	res, err := h.Execute(context.Background(), tools.Request{
		Agent: "quant_1",
		Tool:  "memory.write",
		Args: map[string]any{
			"content":       "funding rate spikes precede drawdowns",
			"scope":         "team",
			"confidence":    0.7,
			"experiment_id": "exp-9",
			"tags":          []any{"funding", "risk"},
		},
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	data := res.Data.(map[string]any)
	rec, ok := svc.Get(data["memory_id"].(string))
	require.True(t, ok)
	assert.Equal(t, ScopeTeam, rec.Scope)
	assert.Equal(t, "alpha_a", rec.Team)
	assert.Equal(t, []string{"funding", "risk"}, rec.Tags)
	assert.Equal(t, ApprovalPending, rec.ApprovalStatus)
}

func TestHandlerWriteValidationFailure(t *testing.T) {
	h, _ := newHandler()

	res, err := h.Execute(context.Background(), tools.Request{
		Agent: "quant_1",
		Tool:  "memory.write",
		Args: map[string]any{
			"content": "no provenance at all",
		},
	})
	require.NoError(t, err, "validation failures are tool-level, not handler errors")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "provenance")
}

func TestHandlerDefaultsToPrivateScope(t *testing.T) {
	h, svc := newHandler()

	res, err := h.Execute(context.Background(), tools.Request{
		Agent: "quant_1",
		Tool:  "memory.write",
		Args: map[string]any{
			"content":     "private note",
			"artifact_id": "art-1",
		},
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	data := res.Data.(map[string]any)
	rec, _ := svc.Get(data["memory_id"].(string))
	assert.Equal(t, ScopePrivate, rec.Scope)
	assert.Equal(t, ApprovalApproved, rec.ApprovalStatus)
}

func TestHandlerSearch(t *testing.T) {
	h, svc := newHandler()
	_, err := svc.Write(context.Background(), WriteInput{
		Agent: "quant_1", Team: "alpha_a", Content: "note",
		Scope: ScopePrivate, Confidence: 0.5, Refs: Refs{ArtifactID: "a"},
	})
	require.NoError(t, err)

	res, err := h.Execute(context.Background(), tools.Request{
		Agent: "quant_1",
		Tool:  "memory.search",
		Args:  map[string]any{"query": "note", "limit": 5},
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Len(t, res.Data.([]SearchResult), 1)
}

func TestHandlerUnknownTool(t *testing.T) {
	h, _ := newHandler()
	_, err := h.Execute(context.Background(), tools.Request{Tool: "memory.delete"})
	assert.Error(t, err)
}
