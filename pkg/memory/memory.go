// Package memory implements agent memory: bounded provenance-referencing
// records with scoped visibility, an approval chain for shared scopes, and
// embedding-based search.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/llm"
)

// Scope controls memory visibility.
type Scope string

// Memory scopes.
const (
	ScopePrivate Scope = "private"
	ScopeTeam    Scope = "team"
	ScopeOrg     Scope = "org"
)

// ApprovalStatus is the shared-scope review state. Private memories are
// approved on write.
type ApprovalStatus string

// Approval statuses.
const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// MaxContentLen bounds memory content.
const MaxContentLen = 500

// Refs carries the provenance references; at least one must be set.
type Refs struct {
	ExperimentID    string `json:"experiment_id,omitempty"`
	DataVersionHash string `json:"data_version_hash,omitempty"`
	ArtifactID      string `json:"artifact_id,omitempty"`
}

// Empty reports whether no reference is set.
func (r Refs) Empty() bool {
	return r.ExperimentID == "" && r.DataVersionHash == "" && r.ArtifactID == ""
}

// Approval is one reviewer decision on a shared memory.
type Approval struct {
	Approver string    `json:"approver"`
	Approved bool      `json:"approved"`
	Reason   string    `json:"reason,omitempty"`
	At       time.Time `json:"at"`
}

// Record is one memory entry.
type Record struct {
	ID              string         `json:"id"`
	Agent           string         `json:"agent"`
	Team            string         `json:"team,omitempty"`
	Content         string         `json:"content"`
	Tags            []string       `json:"tags,omitempty"`
	Scope           Scope          `json:"scope"`
	Confidence      float64        `json:"confidence"`
	Refs            Refs           `json:"refs"`
	Embedding       []float32      `json:"-"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	NeededApprovals int            `json:"needed_approvals"`
	Approvals       []Approval     `json:"approvals,omitempty"`
	TTL             time.Duration  `json:"ttl,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// expired reports whether the record's TTL has elapsed.
func (r *Record) expired(now time.Time) bool {
	return r.TTL > 0 && now.After(r.CreatedAt.Add(r.TTL))
}

// Sentinel errors for memory operations.
var (
	ErrContentTooLong    = errors.New("memory content exceeds 500 characters")
	ErrMissingRefs       = errors.New("memory requires at least one provenance reference")
	ErrBadConfidence     = errors.New("confidence must be within [0,1]")
	ErrInvalidScope      = errors.New("invalid memory scope")
	ErrMemoryNotFound    = errors.New("memory not found")
	ErrNotPending        = errors.New("memory is not pending approval")
	ErrDuplicateApprover = errors.New("approver already reviewed this memory")
)

// ApprovalPolicy returns how many approvers a scope needs. Scope approval
// counts come from the memory.write permission's scope_approval table.
type ApprovalPolicy func(scope Scope) int

// DefaultPolicy requires one approver for team scope and two for org scope.
func DefaultPolicy(scope Scope) int {
	switch scope {
	case ScopeTeam:
		return 1
	case ScopeOrg:
		return 2
	default:
		return 0
	}
}

// Service owns the memory set.
type Service struct {
	mu      sync.Mutex
	records map[string]*Record

	embedder llm.Client
	policy   ApprovalPolicy
	now      func() time.Time
}

// NewService creates a memory service. embedder may be nil, disabling
// semantic search ranking. policy may be nil, using the default.
func NewService(embedder llm.Client, policy ApprovalPolicy) *Service {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &Service{
		records:  make(map[string]*Record),
		embedder: embedder,
		policy:   policy,
		now:      time.Now,
	}
}

// WriteInput is the payload for Write.
type WriteInput struct {
	Agent      string
	Team       string
	Content    string
	Tags       []string
	Scope      Scope
	Confidence float64
	Refs       Refs
	TTL        time.Duration
}

// Write validates and stores a memory. Private memories are approved
// immediately; team and org memories enter the approval chain.
func (s *Service) Write(ctx context.Context, in WriteInput) (*Record, error) {
	if len([]rune(in.Content)) > MaxContentLen {
		return nil, ErrContentTooLong
	}
	if in.Refs.Empty() {
		return nil, ErrMissingRefs
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		return nil, ErrBadConfidence
	}
	switch in.Scope {
	case ScopePrivate, ScopeTeam, ScopeOrg:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, in.Scope)
	}

	rec := &Record{
		ID:         uuid.New().String(),
		Agent:      in.Agent,
		Team:       in.Team,
		Content:    in.Content,
		Tags:       in.Tags,
		Scope:      in.Scope,
		Confidence: in.Confidence,
		Refs:       in.Refs,
		TTL:        in.TTL,
		CreatedAt:  s.now(),
	}

	if in.Scope == ScopePrivate {
		rec.ApprovalStatus = ApprovalApproved
	} else {
		rec.ApprovalStatus = ApprovalPending
		rec.NeededApprovals = s.policy(in.Scope)
	}

	if s.embedder != nil {
		vec, err := s.embedder.Embed(ctx, in.Content)
		if err != nil {
			slog.Warn("Memory embedding failed, stored without vector",
				"agent", in.Agent, "error", err)
		} else {
			rec.Embedding = vec
		}
	}

	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()

	slog.Info("Memory written", "memory", rec.ID, "agent", in.Agent,
		"scope", in.Scope, "status", rec.ApprovalStatus)
	return rec, nil
}

// Approve records one reviewer approval. When the needed count is reached
// the memory becomes visible in its scope. A rejection settles the chain
// immediately.
func (s *Service) Approve(memoryID, approver string, approved bool, reason string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[memoryID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemoryNotFound, memoryID)
	}
	if rec.ApprovalStatus != ApprovalPending {
		return nil, fmt.Errorf("%w: status %s", ErrNotPending, rec.ApprovalStatus)
	}
	for _, a := range rec.Approvals {
		if a.Approver == approver {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateApprover, approver)
		}
	}

	rec.Approvals = append(rec.Approvals, Approval{
		Approver: approver, Approved: approved, Reason: reason, At: s.now(),
	})

	if !approved {
		rec.ApprovalStatus = ApprovalRejected
		return rec, nil
	}

	count := 0
	for _, a := range rec.Approvals {
		if a.Approved {
			count++
		}
	}
	if count >= rec.NeededApprovals {
		rec.ApprovalStatus = ApprovalApproved
		slog.Info("Memory approved", "memory", rec.ID, "approvals", count)
	}
	return rec, nil
}

// Get returns a copy of a record.
func (s *Service) Get(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Pending returns copies of memories awaiting approval.
func (s *Service) Pending() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, rec := range s.records {
		if rec.ApprovalStatus == ApprovalPending {
			out = append(out, *rec)
		}
	}
	return out
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	Record Record  `json:"record"`
	Score  float64 `json:"score"`
}

// Search returns approved, unexpired memories visible to the caller, ranked
// by embedding similarity to the query when an embedder is configured,
// otherwise by recency. Visibility: own private memories, own team's team
// memories, all org memories.
func (s *Service) Search(ctx context.Context, agent, team, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var queryVec []float32
	if s.embedder != nil && query != "" {
		vec, err := s.embedder.Embed(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}
		queryVec = vec
	}

	s.mu.Lock()
	now := s.now()
	var results []SearchResult
	for _, rec := range s.records {
		if rec.ApprovalStatus != ApprovalApproved || rec.expired(now) {
			continue
		}
		if !visible(rec, agent, team) {
			continue
		}
		score := float64(rec.CreatedAt.UnixNano()) / float64(now.UnixNano())
		if queryVec != nil && len(rec.Embedding) > 0 {
			score = cosine(queryVec, rec.Embedding)
		}
		results = append(results, SearchResult{Record: *rec, Score: score})
	}
	s.mu.Unlock()

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// PurgeExpired removes records past their TTL. Returns the number removed.
func (s *Service) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, rec := range s.records {
		if rec.expired(now) {
			delete(s.records, id)
			n++
		}
	}
	return n
}

func visible(rec *Record, agent, team string) bool {
	switch rec.Scope {
	case ScopePrivate:
		return rec.Agent == agent
	case ScopeTeam:
		return rec.Team != "" && rec.Team == team
	case ScopeOrg:
		return true
	}
	return false
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
