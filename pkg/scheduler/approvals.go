package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/bus"
)

// ApprovalStatus is the state of one approval-queue item.
type ApprovalStatus string

// Approval statuses. Expired items are auto-rejected with reason "expired";
// they keep the rejected status for compatibility with consumers.
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// expiredReason is the decision reason written on expiry auto-rejection.
const expiredReason = "expired"

// ApprovalItem is one item awaiting a human-level decision.
type ApprovalItem struct {
	ID             string         `json:"id"`
	Kind           string         `json:"kind"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Requester      string         `json:"requester"`
	Data           map[string]any `json:"data,omitempty"`
	Status         ApprovalStatus `json:"status"`
	DecisionBy     string         `json:"decision_by,omitempty"`
	DecisionReason string         `json:"decision_reason,omitempty"`
	ExpiresAt      time.Time      `json:"expires_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Sentinel errors for approval operations.
var (
	ErrApprovalNotFound = errors.New("approval item not found")
	ErrAlreadyDecided   = errors.New("approval item already decided")
)

// approvalQueue holds pending approval items and notifies on lifecycle
// events via the bus.
type approvalQueue struct {
	mu    sync.Mutex
	items map[string]*ApprovalItem

	bus        *bus.MessageBus
	chairmanID string
	now        func() time.Time
}

func newApprovalQueue(b *bus.MessageBus, chairmanID string) *approvalQueue {
	return &approvalQueue{
		items:      make(map[string]*ApprovalItem),
		bus:        b,
		chairmanID: chairmanID,
		now:        time.Now,
	}
}

// submit creates a pending item and notifies the chairman.
func (q *approvalQueue) submit(kind, title, description, requester string, data map[string]any, expiresIn time.Duration) *ApprovalItem {
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}

	q.mu.Lock()
	now := q.now()
	item := &ApprovalItem{
		ID:          uuid.New().String(),
		Kind:        kind,
		Title:       title,
		Description: description,
		Requester:   requester,
		Data:        data,
		Status:      ApprovalPending,
		ExpiresAt:   now.Add(expiresIn),
		CreatedAt:   now,
	}
	q.items[item.ID] = item
	q.mu.Unlock()

	slog.Info("Approval submitted", "item", item.ID, "kind", kind, "requester", requester)
	if q.bus != nil && q.chairmanID != "" {
		q.bus.SendSystem(q.chairmanID, "Approval needed: "+title, description,
			map[string]any{"approval_id": item.ID, "kind": kind, "requester": requester})
	}
	return item
}

// decide settles a pending item and notifies the requester.
func (q *approvalQueue) decide(id, decisionBy, reason string, approve bool) (*ApprovalItem, error) {
	q.mu.Lock()
	item, ok := q.items[id]
	if !ok {
		q.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrApprovalNotFound, id)
	}
	if item.Status != ApprovalPending {
		q.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is %s", ErrAlreadyDecided, id, item.Status)
	}

	if approve {
		item.Status = ApprovalApproved
	} else {
		item.Status = ApprovalRejected
	}
	item.DecisionBy = decisionBy
	item.DecisionReason = reason
	snapshot := *item
	q.mu.Unlock()

	slog.Info("Approval decided", "item", id, "status", snapshot.Status, "by", decisionBy)
	q.notifyRequester(&snapshot)
	return &snapshot, nil
}

// sweepExpired auto-rejects pending items past their expiry. Returns the
// number rejected.
func (q *approvalQueue) sweepExpired() int {
	q.mu.Lock()
	now := q.now()
	var expired []*ApprovalItem
	for _, item := range q.items {
		if item.Status == ApprovalPending && now.After(item.ExpiresAt) {
			item.Status = ApprovalRejected
			item.DecisionReason = expiredReason
			snapshot := *item
			expired = append(expired, &snapshot)
		}
	}
	q.mu.Unlock()

	for _, item := range expired {
		slog.Info("Approval expired", "item", item.ID, "requester", item.Requester)
		q.notifyRequester(item)
	}
	return len(expired)
}

func (q *approvalQueue) notifyRequester(item *ApprovalItem) {
	if q.bus == nil || item.Requester == "" {
		return
	}
	q.bus.SendSystem(item.Requester,
		fmt.Sprintf("Approval %s: %s", item.Status, item.Title),
		item.DecisionReason,
		map[string]any{"approval_id": item.ID, "status": string(item.Status)})
}

// pending returns copies of all pending items.
func (q *approvalQueue) pending() []ApprovalItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []ApprovalItem
	for _, item := range q.items {
		if item.Status == ApprovalPending {
			out = append(out, *item)
		}
	}
	return out
}

// get returns a copy of one item.
func (q *approvalQueue) get(id string) (ApprovalItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, ok := q.items[id]
	if !ok {
		return ApprovalItem{}, false
	}
	return *item, true
}
