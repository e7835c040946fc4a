package scheduler

import (
	"time"

	"github.com/NoAme666/aiquant/pkg/agent"
	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
)

// The operator surface: called by the HTTP API layer on behalf of a human
// operator.

// SendMessageToAgent delivers a direct message, defaulting the sender to the
// chairman.
func (s *Scheduler) SendMessageToAgent(toAgent, content, from, subject string) bus.Message {
	if from == "" {
		from = s.cfg.ChairmanID
	}
	return s.bus.SendDirect(from, toAgent, subject, content, bus.KindText, nil, 1)
}

// BroadcastMessage announces to every mailbox, defaulting the sender to the
// chairman.
func (s *Scheduler) BroadcastMessage(content, from, subject string) bus.Message {
	if from == "" {
		from = s.cfg.ChairmanID
	}
	if subject == "" {
		subject = "Announcement"
	}
	return s.bus.Broadcast(from, subject, content, bus.KindAnnouncement, nil, 1)
}

// SubmitForApproval queues an item for the chairman's decision.
func (s *Scheduler) SubmitForApproval(kind, title, description, requester string, data map[string]any, expiresIn time.Duration) *ApprovalItem {
	if expiresIn <= 0 {
		expiresIn = s.cfg.ApprovalExpiry
	}
	return s.approvals.submit(kind, title, description, requester, data, expiresIn)
}

// ApproveItem settles an approval item positively.
func (s *Scheduler) ApproveItem(id, decisionBy, reason string) (*ApprovalItem, error) {
	return s.approvals.decide(id, decisionBy, reason, true)
}

// RejectItem settles an approval item negatively.
func (s *Scheduler) RejectItem(id, decisionBy, reason string) (*ApprovalItem, error) {
	return s.approvals.decide(id, decisionBy, reason, false)
}

// GetPendingApprovals returns all undecided approval items.
func (s *Scheduler) GetPendingApprovals() []ApprovalItem {
	return s.approvals.pending()
}

// GetApproval returns one approval item by id.
func (s *Scheduler) GetApproval(id string) (ApprovalItem, bool) {
	return s.approvals.get(id)
}

// GetScheduledTasks returns a snapshot of every job's schedule state.
func (s *Scheduler) GetScheduledTasks() []JobStatus {
	s.mu.Lock()
	jobs := append([]*Job(nil), s.jobs...)
	s.mu.Unlock()

	out := make([]JobStatus, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.status())
	}
	return out
}

// AgentStatus is one agent's operator-visible state.
type AgentStatus struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Role       config.RoleKind `json:"role"`
	Status     agent.Status    `json:"status"`
	QueueSize  int             `json:"queue_size"`
	LastActive time.Time       `json:"last_active"`
}

// GetAgentStatuses returns a snapshot of every agent runtime.
func (s *Scheduler) GetAgentStatuses() []AgentStatus {
	s.mu.Lock()
	agents := make([]*agent.Runtime, 0, len(s.agents))
	for _, rt := range s.agents {
		agents = append(agents, rt)
	}
	s.mu.Unlock()

	out := make([]AgentStatus, 0, len(agents))
	for _, rt := range agents {
		out = append(out, AgentStatus{
			ID:         rt.ID,
			Name:       rt.Config.Name,
			Department: rt.Config.Department,
			Role:       rt.Config.Role,
			Status:     rt.Status(),
			QueueSize:  rt.QueueSize(),
			LastActive: rt.LastActive(),
		})
	}
	return out
}

// GetAgent returns one agent runtime by id.
func (s *Scheduler) GetAgent(id string) (*agent.Runtime, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.agents[id]
	return rt, ok
}

// Stats is the scheduler-level operational snapshot.
type Stats struct {
	State            State     `json:"state"`
	Agents           int       `json:"agents"`
	PendingApprovals int       `json:"pending_approvals"`
	Jobs             int       `json:"jobs"`
	Uptime           string    `json:"uptime"`
	StartedAt        time.Time `json:"started_at"`
	Bus              bus.Stats `json:"bus"`
}

// GetStats returns the operational snapshot.
func (s *Scheduler) GetStats() Stats {
	s.mu.Lock()
	state := s.state
	agents := len(s.agents)
	jobs := len(s.jobs)
	startedAt := s.startedAt
	s.mu.Unlock()

	uptime := ""
	if !startedAt.IsZero() {
		uptime = s.now().Sub(startedAt).Round(time.Second).String()
	}
	return Stats{
		State:            state,
		Agents:           agents,
		PendingApprovals: len(s.approvals.pending()),
		Jobs:             jobs,
		Uptime:           uptime,
		StartedAt:        startedAt,
		Bus:              s.bus.GetStats(),
	}
}
