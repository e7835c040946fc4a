package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/config"
	"github.com/NoAme666/aiquant/pkg/llm"
	"github.com/NoAme666/aiquant/pkg/tools"
)

// Status is the lifecycle state of an agent.
type Status string

// Agent statuses.
const (
	StatusActive     Status = "ACTIVE"
	StatusFrozen     Status = "FROZEN"
	StatusSuspended  Status = "SUSPENDED"
	StatusTerminated Status = "TERMINATED"
)

// ErrTransient marks a task failure that should be retried. Anything else is
// permanent.
var ErrTransient = errors.New("transient task failure")

// ReviewDecision is the parsed outcome of a review task.
type ReviewDecision string

// Review decisions.
const (
	DecisionApproved     ReviewDecision = "approved"
	DecisionRejected     ReviewDecision = "rejected"
	DecisionNeedRevision ReviewDecision = "need_revision"
)

// Runtime is the cooperative loop for a single agent. It owns the agent's
// task queue, activity log and conversation history; external readers obtain
// snapshot copies.
type Runtime struct {
	ID     string
	Config *config.AgentConfig

	sched  config.SchedulerConfig
	bus    *bus.MessageBus
	llm    llm.Client
	router *tools.Router
	queue  *TaskQueue
	role   Role

	activity     *ring[Activity]
	conversation *ring[ConversationEntry]

	mu         sync.RWMutex
	status     Status
	lastActive time.Time

	isRunning atomic.Bool
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// Deps carries the shared collaborators injected into every runtime.
type Deps struct {
	Bus    *bus.MessageBus
	LLM    llm.Client
	Router *tools.Router
	Sched  config.SchedulerConfig
}

// NewRuntime creates a runtime for one configured agent. The role extension
// is chosen from the agent's configured role kind.
func NewRuntime(id string, agentCfg *config.AgentConfig, deps Deps) *Runtime {
	rt := &Runtime{
		ID:           id,
		Config:       agentCfg,
		sched:        deps.Sched,
		bus:          deps.Bus,
		llm:          deps.LLM,
		router:       deps.Router,
		queue:        NewTaskQueue(),
		activity:     newRing[Activity](deps.Sched.ActivityLogSize),
		conversation: newRing[ConversationEntry](deps.Sched.ConversationSize),
		status:       StatusActive,
		lastActive:   time.Now(),
		stopCh:       make(chan struct{}),
	}
	rt.role = roleFor(agentCfg.Role)
	return rt
}

// Start launches the agent loop. The bus mailbox must be registered first.
func (rt *Runtime) Start(ctx context.Context) {
	if !rt.isRunning.CompareAndSwap(false, true) {
		slog.Warn("Agent already running, ignoring duplicate Start", "agent", rt.ID)
		return
	}
	rt.wg.Add(1)
	go rt.loop(ctx)
}

// Stop signals the loop to exit at its next tick boundary and waits for it.
// The current task runs to completion; in-flight LLM calls observe their own
// per-call timeout.
func (rt *Runtime) Stop() {
	rt.stopOnce.Do(func() { close(rt.stopCh) })
	rt.wg.Wait()
	rt.isRunning.Store(false)
}

// Enqueue pushes a task onto the agent's queue.
func (rt *Runtime) Enqueue(t *Task) {
	if t.MaxRetries == 0 {
		t.MaxRetries = rt.sched.MaxTaskRetries
	}
	rt.queue.Push(t)
}

// QueueSize returns the number of pending tasks.
func (rt *Runtime) QueueSize() int { return rt.queue.Size() }

// Status returns the agent's lifecycle state.
func (rt *Runtime) Status() Status {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.status
}

// SetStatus updates the lifecycle state (governance actions: freeze,
// suspend, terminate).
func (rt *Runtime) SetStatus(s Status) {
	rt.mu.Lock()
	rt.status = s
	rt.mu.Unlock()
	rt.logActivity("status_change", string(s))
}

// LastActive returns the time of the agent's last processed work item.
func (rt *Runtime) LastActive() time.Time {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.lastActive
}

// ActivityLog returns a snapshot of the bounded activity ring.
func (rt *Runtime) ActivityLog() []Activity { return rt.activity.snapshot() }

// Conversation returns a snapshot of the LLM context ring.
func (rt *Runtime) Conversation() []ConversationEntry { return rt.conversation.snapshot() }

// loop is the cooperative agent loop: drain mailbox, check for proactive
// work, process one task per tick.
func (rt *Runtime) loop(ctx context.Context) {
	defer rt.wg.Done()

	log := slog.With("agent", rt.ID)
	log.Info("Agent loop started", "role", rt.Config.Role, "department", rt.Config.Department)

	ticker := time.NewTicker(rt.sched.AgentInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rt.stopCh:
			log.Info("Agent loop stopped")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, agent loop exiting")
			return
		case <-ticker.C:
			if rt.Status() != StatusActive {
				continue
			}
			rt.tick(ctx)
		}
	}
}

func (rt *Runtime) tick(ctx context.Context) {
	msgs := rt.bus.GetMessages(rt.ID, rt.sched.MailboxTimeout, rt.sched.MailboxBatch)
	for _, m := range msgs {
		rt.HandleBusMessage(m)
	}

	rt.role.CheckForWork(ctx, rt)

	if rt.queue.Size() > 0 {
		rt.ProcessNextTask(ctx)
	}
}

// HandleBusMessage converts an incoming message into direct handling or a
// queued task. System messages carrying a meeting invitation become meeting
// tasks; meeting traffic queues a meeting task; everything else queues a
// respond task.
func (rt *Runtime) HandleBusMessage(m bus.Message) {
	rt.touch()

	switch {
	case m.Kind == bus.KindSystem:
		if meetingID, ok := m.Metadata["meeting_id"].(string); ok && strings.HasPrefix(m.Subject, "Meeting invitation") {
			rt.Enqueue(NewTask(TaskMeeting, map[string]any{
				"meeting_id": meetingID,
				"agenda":     m.Subject,
			}, PriorityHigh))
			return
		}
		rt.logActivity("system_message", m.Subject)
	case m.ChannelKind == bus.ChannelMeeting:
		rt.Enqueue(NewTask(TaskMeeting, map[string]any{
			"meeting_id": m.ChannelID,
			"agenda":     m.Content,
			"from":       m.From,
		}, PriorityHigh))
	default:
		prio := PriorityNormal
		if m.Priority >= 2 {
			prio = PriorityHigh
		}
		rt.Enqueue(NewTask(TaskRespond, map[string]any{
			"message": m.Content,
			"from":    m.From,
			"subject": m.Subject,
		}, prio))
	}
}

// ProcessNextTask dequeues and executes one task. Transient failures
// re-enqueue the task until its retry budget is exhausted.
func (rt *Runtime) ProcessNextTask(ctx context.Context) {
	task := rt.queue.Pop()
	if task == nil {
		return
	}
	rt.touch()

	if task.Expired(time.Now()) {
		rt.logActivity("task_expired", fmt.Sprintf("%s (%s)", task.Kind, task.ID))
		return
	}

	err := rt.executeTask(ctx, task)
	if err == nil {
		rt.logActivity("task_completed", string(task.Kind))
		return
	}

	if errors.Is(err, ErrTransient) && task.Retries < task.MaxRetries {
		task.Retries++
		rt.queue.Push(task)
		rt.logActivity("task_retry", fmt.Sprintf("%s attempt %d/%d", task.Kind, task.Retries, task.MaxRetries))
		return
	}

	rt.logActivity("task_failed", fmt.Sprintf("%s: %v", task.Kind, err))
	slog.Warn("Task failed", "agent", rt.ID, "kind", task.Kind, "error", err)
}

// executeTask dispatches on the task kind. Role-specific kinds are delegated
// to the role extension.
func (rt *Runtime) executeTask(ctx context.Context, task *Task) error {
	switch task.Kind {
	case TaskThink:
		_, err := rt.Think(ctx, task.payloadString("prompt"), task.Payload)
		return err
	case TaskRespond:
		return rt.respond(ctx, task)
	case TaskReview:
		_, err := rt.Review(ctx, task.payloadString("item"), task.payloadString("review_type"))
		return err
	case TaskReport:
		return rt.report(ctx, task)
	case TaskMeeting:
		return rt.attendMeeting(ctx, task)
	default:
		handled, err := rt.role.ExecuteTask(ctx, rt, task)
		if !handled {
			return fmt.Errorf("unhandled task kind %q", task.Kind)
		}
		return err
	}
}

// Think invokes the LLM with the agent's persona and recent conversation as
// context, recording both sides in the conversation ring.
func (rt *Runtime) Think(ctx context.Context, prompt string, promptCtx map[string]any) (string, error) {
	if promptCtx == nil {
		promptCtx = map[string]any{}
	}
	promptCtx["agent"] = rt.ID
	promptCtx["role"] = string(rt.Config.Role)
	promptCtx["department"] = rt.Config.Department
	if len(rt.Config.PersonaTraits) > 0 {
		promptCtx["persona"] = strings.Join(rt.Config.PersonaTraits, ", ")
	}

	rt.conversation.add(ConversationEntry{Role: "prompt", Content: prompt, At: time.Now()})
	out, err := rt.llm.Think(ctx, prompt, promptCtx)
	if err != nil {
		return "", fmt.Errorf("%w: llm: %w", ErrTransient, err)
	}
	rt.conversation.add(ConversationEntry{Role: "response", Content: out, At: time.Now()})
	return out, nil
}

// CallTool routes a tool invocation through the router under this agent's
// identity.
func (rt *Runtime) CallTool(ctx context.Context, tool string, args map[string]any) (*tools.Result, error) {
	if rt.router == nil {
		return nil, errors.New("no tool router configured")
	}
	return rt.router.Execute(ctx, tools.Request{
		Agent:      rt.ID,
		Department: rt.Config.Department,
		Tool:       tool,
		Args:       args,
	})
}

// Review asks the LLM to review an item and parses the decision.
func (rt *Runtime) Review(ctx context.Context, item, reviewType string) (ReviewDecision, error) {
	prompt := fmt.Sprintf(
		"Review the following %s and answer with exactly one of: approved, rejected, need_revision.\n\n%s",
		reviewType, item)
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return "", err
	}
	return ParseReviewDecision(out), nil
}

func (rt *Runtime) respond(ctx context.Context, task *Task) error {
	from := task.payloadString("from")
	message := task.payloadString("message")
	prompt := fmt.Sprintf("You received a message from %s:\n%s\n\nWrite a concise reply.", from, message)
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return err
	}
	if from != "" {
		rt.bus.SendDirect(rt.ID, from, "Re: "+task.payloadString("subject"), out, bus.KindText, nil, 1)
	}
	return nil
}

func (rt *Runtime) report(ctx context.Context, task *Task) error {
	reportType := task.payloadString("report_type")
	prompt := fmt.Sprintf("Produce a %s report.\nData:\n%v", reportType, task.Payload["data"])
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return err
	}
	replyTo := task.payloadString("reply_to")
	if replyTo == "" {
		replyTo = rt.sched.ChairmanID
	}
	rt.bus.SendDirect(rt.ID, replyTo, reportType+" report", out, bus.KindMemo, nil, 1)
	return nil
}

func (rt *Runtime) attendMeeting(ctx context.Context, task *Task) error {
	meetingID := task.payloadString("meeting_id")
	room, ok := rt.bus.GetMeetingRoom(meetingID)
	if !ok {
		return fmt.Errorf("meeting %s not found", meetingID)
	}

	var transcript strings.Builder
	entries := room.TranscriptSnapshot()
	if len(entries) > 10 {
		entries = entries[len(entries)-10:]
	}
	for _, m := range entries {
		fmt.Fprintf(&transcript, "%s: %s\n", m.From, m.Content)
	}

	prompt := fmt.Sprintf("You are attending meeting %q.\nAgenda: %s\nRecent discussion:\n%s\nContribute your view.",
		room.Title, task.payloadString("agenda"), transcript.String())
	out, err := rt.Think(ctx, prompt, nil)
	if err != nil {
		return err
	}
	rt.bus.SendToMeeting(meetingID, rt.ID, out, bus.KindDiscussion)
	return nil
}

// ParseReviewDecision maps free-form LLM output onto a review decision.
// Revision requests are checked first since they often mention approval.
func ParseReviewDecision(text string) ReviewDecision {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "need_revision") || strings.Contains(lower, "revision"):
		return DecisionNeedRevision
	case strings.Contains(lower, "reject"):
		return DecisionRejected
	case strings.Contains(lower, "approv"):
		return DecisionApproved
	default:
		return DecisionNeedRevision
	}
}

func (rt *Runtime) logActivity(activityType, details string) {
	rt.activity.add(Activity{Timestamp: time.Now(), Type: activityType, Details: details})
}

func (rt *Runtime) touch() {
	rt.mu.Lock()
	rt.lastActive = time.Now()
	rt.mu.Unlock()
}
