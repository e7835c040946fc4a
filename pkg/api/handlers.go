package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NoAme666/aiquant/pkg/report"
	"github.com/NoAme666/aiquant/pkg/research"
	"github.com/NoAme666/aiquant/pkg/scheduler"
	"github.com/NoAme666/aiquant/pkg/topics"
)

// SendMessageRequest is the body for POST /api/v1/messages.
type SendMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Content string `json:"content" binding:"required"`
	From    string `json:"from"`
	Subject string `json:"subject"`
}

func (s *Server) sendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := s.deps.Scheduler.GetAgent(req.To); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent: " + req.To})
		return
	}
	msg := s.deps.Scheduler.SendMessageToAgent(req.To, req.Content, req.From, req.Subject)
	c.JSON(http.StatusAccepted, gin.H{"message_id": msg.ID})
}

// BroadcastRequest is the body for POST /api/v1/broadcast.
type BroadcastRequest struct {
	Content string `json:"content" binding:"required"`
	From    string `json:"from"`
	Subject string `json:"subject"`
}

func (s *Server) broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg := s.deps.Scheduler.BroadcastMessage(req.Content, req.From, req.Subject)
	c.JSON(http.StatusAccepted, gin.H{"message_id": msg.ID})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Scheduler.GetStats())
}

func (s *Server) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.deps.Scheduler.GetAgentStatuses()})
}

func (s *Server) getAgent(c *gin.Context) {
	rt, ok := s.deps.Scheduler.GetAgent(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent: " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         rt.ID,
		"name":       rt.Config.Name,
		"department": rt.Config.Department,
		"role":       rt.Config.Role,
		"status":     rt.Status(),
		"queue_size": rt.QueueSize(),
		"activity":   rt.ActivityLog(),
	})
}

func (s *Server) scheduledJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": s.deps.Scheduler.GetScheduledTasks()})
}

func (s *Server) pendingApprovals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"approvals": s.deps.Scheduler.GetPendingApprovals()})
}

// SubmitApprovalRequest is the body for POST /api/v1/approvals.
type SubmitApprovalRequest struct {
	Kind        string         `json:"kind" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Requester   string         `json:"requester" binding:"required"`
	Data        map[string]any `json:"data"`
	ExpiresIn   time.Duration  `json:"expires_in"`
}

func (s *Server) submitApproval(c *gin.Context) {
	var req SubmitApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := s.deps.Scheduler.SubmitForApproval(req.Kind, req.Title, req.Description,
		req.Requester, req.Data, req.ExpiresIn)
	c.JSON(http.StatusCreated, item)
}

// DecisionRequest is the body for approval decisions.
type DecisionRequest struct {
	By     string `json:"by" binding:"required"`
	Reason string `json:"reason"`
}

func (s *Server) approve(c *gin.Context) {
	s.decide(c, true)
}

func (s *Server) reject(c *gin.Context) {
	s.decide(c, false)
}

func (s *Server) decide(c *gin.Context, approved bool) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var (
		item *scheduler.ApprovalItem
		err  error
	)
	if approved {
		item, err = s.deps.Scheduler.ApproveItem(c.Param("id"), req.By, req.Reason)
	} else {
		item, err = s.deps.Scheduler.RejectItem(c.Param("id"), req.By, req.Reason)
	}
	if err != nil {
		status := http.StatusConflict
		if err == scheduler.ErrApprovalNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) pause(c *gin.Context) {
	s.deps.Scheduler.Pause()
	c.JSON(http.StatusOK, gin.H{"state": s.deps.Scheduler.State()})
}

func (s *Server) resume(c *gin.Context) {
	s.deps.Scheduler.Resume()
	c.JSON(http.StatusOK, gin.H{"state": s.deps.Scheduler.State()})
}

func (s *Server) listTopics(c *gin.Context) {
	var out []topics.Topic
	if s.deps.Topics != nil {
		out = s.deps.Topics.List(topics.Status(c.Query("status")))
	}
	c.JSON(http.StatusOK, gin.H{"topics": out})
}

func (s *Server) listCycles(c *gin.Context) {
	var out []research.Cycle
	if s.deps.Cycles != nil {
		out = s.deps.Cycles.List(research.State(c.Query("state")))
	}
	c.JSON(http.StatusOK, gin.H{"cycles": out})
}

func (s *Server) activeRules(c *gin.Context) {
	if s.deps.Governance == nil {
		c.JSON(http.StatusOK, gin.H{"rules": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": s.deps.Governance.ActiveRules()})
}

func (s *Server) decisions(c *gin.Context) {
	if s.deps.Governance == nil {
		c.JSON(http.StatusOK, gin.H{"decisions": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": s.deps.Governance.Decisions()})
}

func (s *Server) listIntentions(c *gin.Context) {
	if s.deps.Intentions == nil {
		c.JSON(http.StatusOK, gin.H{"intentions": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intentions": s.deps.Intentions.List(c.Query("agent"))})
}

func (s *Server) toolRequests(c *gin.Context) {
	if s.deps.Feedback == nil {
		c.JSON(http.StatusOK, gin.H{"tool_requests": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tool_requests": s.deps.Feedback.ToolRequests()})
}

func (s *Server) boardReport(c *gin.Context) {
	if s.deps.Reports == nil {
		c.JSON(http.StatusOK, report.BoardReport{})
		return
	}
	c.JSON(http.StatusOK, s.deps.Reports.Build())
}
