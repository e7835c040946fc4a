// Package api exposes the operator HTTP surface: direct messages and
// broadcasts into the company, the approval queue, scheduler control and
// read-only views over topics, research cycles, governance and feedback.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NoAme666/aiquant/pkg/database"
	"github.com/NoAme666/aiquant/pkg/feedback"
	"github.com/NoAme666/aiquant/pkg/governance"
	"github.com/NoAme666/aiquant/pkg/intention"
	"github.com/NoAme666/aiquant/pkg/report"
	"github.com/NoAme666/aiquant/pkg/research"
	"github.com/NoAme666/aiquant/pkg/scheduler"
	"github.com/NoAme666/aiquant/pkg/topics"
)

const shutdownTimeout = 10 * time.Second

// Deps are the systems the API serves. Scheduler is required; the rest may
// be nil and their endpoints return empty collections.
type Deps struct {
	Scheduler  *scheduler.Scheduler
	Topics     *topics.Manager
	Cycles     *research.Machine
	Governance *governance.Governance
	Intentions *intention.System
	Feedback   *feedback.Channel
	Reports    *report.Builder

	// DBHealth probes the database when persistence is configured. Nil means
	// the company runs in memory and /health reports scheduler state only.
	DBHealth func(ctx context.Context) (*database.HealthStatus, error)
}

// Server is the operator HTTP server.
type Server struct {
	deps    Deps
	httpSrv *http.Server
}

// NewServer creates the server listening on addr.
func NewServer(addr string, deps Deps) *Server {
	if deps.Scheduler == nil {
		panic("api.NewServer: scheduler is nil")
	}
	s := &Server{deps: deps}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/messages", s.sendMessage)
		v1.POST("/broadcast", s.broadcast)

		v1.GET("/stats", s.stats)
		v1.GET("/agents", s.listAgents)
		v1.GET("/agents/:id", s.getAgent)
		v1.GET("/scheduled-jobs", s.scheduledJobs)

		v1.GET("/approvals/pending", s.pendingApprovals)
		v1.POST("/approvals", s.submitApproval)
		v1.POST("/approvals/:id/approve", s.approve)
		v1.POST("/approvals/:id/reject", s.reject)

		v1.POST("/control/pause", s.pause)
		v1.POST("/control/resume", s.resume)

		v1.GET("/topics", s.listTopics)
		v1.GET("/research-cycles", s.listCycles)
		v1.GET("/governance/rules", s.activeRules)
		v1.GET("/governance/decisions", s.decisions)
		v1.GET("/intentions", s.listIntentions)
		v1.GET("/tool-requests", s.toolRequests)
		v1.GET("/report", s.boardReport)
	}
	return r
}

// Start runs the HTTP server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	state := s.deps.Scheduler.State()
	status := "healthy"
	httpStatus := http.StatusOK
	if state == scheduler.StateStopped || state == scheduler.StateStopping {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	body := gin.H{
		"status":    status,
		"scheduler": state,
	}
	if s.deps.DBHealth != nil {
		dbHealth, err := s.deps.DBHealth(c.Request.Context())
		if err != nil {
			body["status"] = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
		body["database"] = dbHealth
	}
	c.JSON(httpStatus, body)
}
