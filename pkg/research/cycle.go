// Package research implements the strategy research pipeline: a strict
// state machine that moves a strategy artifact through data, backtest,
// robustness and review gates toward a board decision.
package research

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is one stage of the research pipeline.
type State string

// Pipeline states, in forward order. ARCHIVE is terminal.
const (
	StateIdeaIntake     State = "IDEA_INTAKE"
	StateDataGate       State = "DATA_GATE"
	StateBacktestGate   State = "BACKTEST_GATE"
	StateRobustnessGate State = "ROBUSTNESS_GATE"
	StateRiskSkeptic    State = "RISK_SKEPTIC_GATE"
	StateICReview       State = "IC_REVIEW"
	StateBoardPack      State = "BOARD_PACK"
	StateBoardDecision  State = "BOARD_DECISION"
	StateArchive        State = "ARCHIVE"
)

// forwardOrder indexes each state's position in the pipeline.
var forwardOrder = map[State]int{
	StateIdeaIntake:     0,
	StateDataGate:       1,
	StateBacktestGate:   2,
	StateRobustnessGate: 3,
	StateRiskSkeptic:    4,
	StateICReview:       5,
	StateBoardPack:      6,
	StateBoardDecision:  7,
	StateArchive:        8,
}

// Sentinel errors for cycle transitions.
var (
	ErrCycleNotFound       = errors.New("research cycle not found")
	ErrInvalidTransition   = errors.New("invalid cycle transition")
	ErrCycleArchived       = errors.New("cycle is archived")
	ErrMissingGateArtifact = errors.New("transition requires a positive gate review")
)

// Transition is one audit row of the cycle's history.
type Transition struct {
	From       State     `json:"from"`
	To         State     `json:"to"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note,omitempty"`
	ArtifactID string    `json:"artifact_id,omitempty"`
	At         time.Time `json:"at"`
}

// Cycle is one strategy artifact moving through the pipeline.
type Cycle struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Owner      string       `json:"owner"`
	State      State        `json:"state"`
	Rejections int          `json:"rejections"`
	History    []Transition `json:"history"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Notifier receives cycle transition events. The message bus satisfies this
// through a small adapter in the runtime.
type Notifier interface {
	CycleAdvanced(cycle Cycle, tr Transition)
	CycleRejected(cycle Cycle, tr Transition)
}

// Machine owns the cycle set. Transitions are forward-only, except the
// rejection back-edge from any gate to IDEA_INTAKE.
type Machine struct {
	mu     sync.Mutex
	cycles map[string]*Cycle

	notifier Notifier
	now      func() time.Time
}

// NewMachine creates an empty cycle machine. notifier may be nil.
func NewMachine(notifier Notifier) *Machine {
	return &Machine{
		cycles:   make(map[string]*Cycle),
		notifier: notifier,
		now:      time.Now,
	}
}

// Open creates a cycle in IDEA_INTAKE.
func (m *Machine) Open(title, owner string) *Cycle {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c := &Cycle{
		ID:        uuid.New().String(),
		Title:     title,
		Owner:     owner,
		State:     StateIdeaIntake,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.cycles[c.ID] = c
	slog.Info("Research cycle opened", "cycle", c.ID, "title", title, "owner", owner)
	return c
}

// Get returns a copy of the cycle.
func (m *Machine) Get(id string) (Cycle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cycles[id]
	if !ok {
		return Cycle{}, false
	}
	return *c, true
}

// List returns copies of all cycles, optionally filtered by state.
func (m *Machine) List(state State) []Cycle {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Cycle
	for _, c := range m.cycles {
		if state == "" || c.State == state {
			out = append(out, *c)
		}
	}
	return out
}

// Advance moves the cycle one step forward. The actor is the gate approver;
// artifactID references the positive review artifact that satisfies the
// gate predicate and is required for every gated transition.
func (m *Machine) Advance(cycleID, actor, artifactID, note string) (Cycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cycles[cycleID]
	if !ok {
		return Cycle{}, fmt.Errorf("%w: %s", ErrCycleNotFound, cycleID)
	}
	if c.State == StateArchive {
		return *c, ErrCycleArchived
	}
	if artifactID == "" {
		return *c, fmt.Errorf("%w: %s", ErrMissingGateArtifact, c.State)
	}

	next := nextState(c.State)
	tr := m.applyLocked(c, next, actor, artifactID, note)
	if m.notifier != nil {
		m.notifier.CycleAdvanced(*c, tr)
	}
	return *c, nil
}

// Reject returns the cycle to IDEA_INTAKE from any gate and increments the
// rejection counter used by scorecards.
func (m *Machine) Reject(cycleID, actor, note string) (Cycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cycles[cycleID]
	if !ok {
		return Cycle{}, fmt.Errorf("%w: %s", ErrCycleNotFound, cycleID)
	}
	if c.State == StateArchive {
		return *c, ErrCycleArchived
	}
	if c.State == StateIdeaIntake {
		return *c, fmt.Errorf("%w: already at %s", ErrInvalidTransition, StateIdeaIntake)
	}

	c.Rejections++
	tr := m.applyLocked(c, StateIdeaIntake, actor, "", note)
	if m.notifier != nil {
		m.notifier.CycleRejected(*c, tr)
	}
	slog.Info("Research cycle rejected", "cycle", c.ID, "from", tr.From,
		"rejections", c.Rejections)
	return *c, nil
}

// Archive moves a cycle at BOARD_DECISION to its terminal state.
func (m *Machine) Archive(cycleID, actor, note string) (Cycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cycles[cycleID]
	if !ok {
		return Cycle{}, fmt.Errorf("%w: %s", ErrCycleNotFound, cycleID)
	}
	if c.State != StateBoardDecision {
		return *c, fmt.Errorf("%w: archive from %s", ErrInvalidTransition, c.State)
	}
	m.applyLocked(c, StateArchive, actor, "", note)
	return *c, nil
}

func (m *Machine) applyLocked(c *Cycle, to State, actor, artifactID, note string) Transition {
	tr := Transition{
		From:       c.State,
		To:         to,
		Actor:      actor,
		Note:       note,
		ArtifactID: artifactID,
		At:         m.now(),
	}
	c.State = to
	c.UpdatedAt = tr.At
	c.History = append(c.History, tr)
	return tr
}

func nextState(s State) State {
	switch s {
	case StateIdeaIntake:
		return StateDataGate
	case StateDataGate:
		return StateBacktestGate
	case StateBacktestGate:
		return StateRobustnessGate
	case StateRobustnessGate:
		return StateRiskSkeptic
	case StateRiskSkeptic:
		return StateICReview
	case StateICReview:
		return StateBoardPack
	case StateBoardPack:
		return StateBoardDecision
	default:
		return StateArchive
	}
}

// Forward reports whether moving from a to b respects the pipeline order.
func Forward(a, b State) bool {
	return forwardOrder[b] == forwardOrder[a]+1
}
