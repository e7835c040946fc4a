package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/agent"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/database"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/scheduler"
	"github.com/NoAme666/aiquant/pkg/topics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiEnv struct {
	server *Server
	router *gin.Engine
	sched  *scheduler.Scheduler
	bus    *bus.MessageBus
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	b := bus.New()
	cfg := config.DefaultSchedulerConfig()
	sched := scheduler.New(b, cfg)

	rt := agent.NewRuntime("quant_1", &config.AgentConfig{
		Name: "quant_1", Department: "research", Role: config.RoleResearcher,
	}, agent.Deps{Bus: b, LLM: llm.NewStubClient("ok"), Sched: cfg})
	sched.AddAgent(rt)

	tm := topics.NewManager(b, nil)
	srv := NewServer(":0", Deps{Scheduler: sched, Topics: tm})
	return &apiEnv{server: srv, router: srv.Router(), sched: sched, bus: b}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthReflectsSchedulerState(t *testing.T) {
	e := newAPIEnv(t)

	w := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "stopped scheduler is degraded")

	require.NoError(t, e.sched.Start(t.Context()))
	defer e.sched.Stop()

	w = e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestHealthReportsDatabase(t *testing.T) {
	e := newAPIEnv(t)
	require.NoError(t, e.sched.Start(t.Context()))
	defer e.sched.Stop()

	e.server.deps.DBHealth = func(context.Context) (*database.HealthStatus, error) {
		return &database.HealthStatus{Status: "healthy", MaxOpenConns: 10}, nil
	}
	w := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	db, ok := body["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", db["status"])
	assert.EqualValues(t, 10, db["max_open_conns"])

	e.server.deps.DBHealth = func(context.Context) (*database.HealthStatus, error) {
		return &database.HealthStatus{Status: "unhealthy"}, errors.New("connection refused")
	}
	w = e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode(t, w)["status"])
}

func TestSendMessage(t *testing.T) {
	e := newAPIEnv(t)

	w := e.do(t, http.MethodPost, "/api/v1/messages",
		SendMessageRequest{To: "quant_1", Content: "status update please"})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.NotEmpty(t, decode(t, w)["message_id"])
	assert.Equal(t, 1, e.bus.MailboxSize("quant_1"))

	msgs := e.bus.PeekMessages("quant_1", 1)
	require.Len(t, msgs, 1)
	assert.Equal(t, "chairman", msgs[0].From, "sender defaults to chairman")
}

func TestSendMessageValidation(t *testing.T) {
	e := newAPIEnv(t)

	w := e.do(t, http.MethodPost, "/api/v1/messages", map[string]string{"to": "quant_1"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "content is required")

	w = e.do(t, http.MethodPost, "/api/v1/messages",
		SendMessageRequest{To: "nobody", Content: "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBroadcast(t *testing.T) {
	e := newAPIEnv(t)

	w := e.do(t, http.MethodPost, "/api/v1/broadcast",
		BroadcastRequest{Content: "all hands at noon"})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, e.bus.MailboxSize("quant_1"))
}

func TestApprovalFlow(t *testing.T) {
	e := newAPIEnv(t)
	e.bus.RegisterMailbox("chairman")

	w := e.do(t, http.MethodPost, "/api/v1/approvals", SubmitApprovalRequest{
		Kind: "budget", Title: "Raise research budget", Requester: "quant_1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = e.do(t, http.MethodGet, "/api/v1/approvals/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["approvals"], 1)

	w = e.do(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve",
		DecisionRequest{By: "chairman", Reason: "justified"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(scheduler.ApprovalApproved), decode(t, w)["status"])

	// Deciding twice conflicts.
	w = e.do(t, http.MethodPost, "/api/v1/approvals/"+id+"/reject",
		DecisionRequest{By: "chairman"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/approvals/missing/approve",
		DecisionRequest{By: "chairman"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPauseResume(t *testing.T) {
	e := newAPIEnv(t)
	require.NoError(t, e.sched.Start(t.Context()))
	defer e.sched.Stop()

	w := e.do(t, http.MethodPost, "/api/v1/control/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(scheduler.StatePaused), decode(t, w)["state"])

	w = e.do(t, http.MethodPost, "/api/v1/control/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(scheduler.StateRunning), decode(t, w)["state"])
}

func TestStatsAndAgents(t *testing.T) {
	e := newAPIEnv(t)

	w := e.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["agents"])

	w = e.do(t, http.MethodGet, "/api/v1/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["agents"], 1)

	w = e.do(t, http.MethodGet, "/api/v1/agents/quant_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "research", decode(t, w)["department"])

	w = e.do(t, http.MethodGet, "/api/v1/agents/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduledJobs(t *testing.T) {
	e := newAPIEnv(t)
	w := e.do(t, http.MethodGet, "/api/v1/scheduled-jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	jobs, ok := decode(t, w)["jobs"].([]any)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(jobs), 4)
}

func TestTopicsEndpoint(t *testing.T) {
	e := newAPIEnv(t)
	tm := e.server.deps.Topics
	tm.Propose(&topics.Topic{
		Kind: topics.KindRisk, Title: "Drawdown breach", Proposer: "risk_1",
		RequiredSeconds: 2, Priority: topics.PriorityHigh,
		ExpiresAt: time.Now().Add(12 * time.Hour),
	})

	w := e.do(t, http.MethodGet, "/api/v1/topics?status=SECONDING", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["topics"], 1)

	w = e.do(t, http.MethodGet, "/api/v1/topics?status=RESOLVED", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["topics"])
}

func TestNilDepsReturnEmpty(t *testing.T) {
	e := newAPIEnv(t)
	for _, path := range []string{
		"/api/v1/research-cycles",
		"/api/v1/governance/rules",
		"/api/v1/governance/decisions",
		"/api/v1/intentions",
		"/api/v1/tool-requests",
		"/api/v1/report",
	} {
		w := e.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
