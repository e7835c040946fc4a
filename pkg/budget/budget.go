// Package budget implements compute-point accounts. Accounts are debited
// when a tool call completes successfully; deduction is atomic per account
// and never leaves an observer with negative or double-spent state.
package budget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sentinel errors.
var (
	// ErrInsufficientBudget indicates remaining points are below the cost.
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrAccountNotFound indicates no account resolves for the agent.
	ErrAccountNotFound = errors.New("budget account not found")

	// ErrDuplicateAccount indicates the account id is already registered.
	ErrDuplicateAccount = errors.New("budget account already exists")
)

// AccountType distinguishes budget ownership levels.
type AccountType string

// Account types.
const (
	AccountAgent      AccountType = "agent"
	AccountTeam       AccountType = "team"
	AccountDepartment AccountType = "department"
)

// period is the budget reset window.
const period = 7 * 24 * time.Hour

// Account is one compute-point account. All mutation goes through the
// Manager, which serializes on the account mutex.
type Account struct {
	ID               string
	Type             AccountType
	BaseWeeklyPoints int

	mu          sync.Mutex
	periodStart time.Time
	pointsSpent int
}

// Snapshot is an immutable view of an account, used for persistence and the
// operator surface.
type Snapshot struct {
	ID               string      `json:"id"`
	Type             AccountType `json:"account_type"`
	BaseWeeklyPoints int         `json:"base_weekly_points"`
	PeriodStart      time.Time   `json:"current_period_start"`
	PointsSpent      int         `json:"points_spent"`
	Remaining        int         `json:"remaining"`
}

// Store persists account state. Deductions are written synchronously before
// the tool result is returned; a nil store keeps accounts in memory only.
type Store interface {
	SaveAccount(ctx context.Context, snap Snapshot) error
}

// Manager owns all budget accounts and the agent → team resolution map.
type Manager struct {
	mu        sync.RWMutex
	accounts  map[string]*Account
	agentTeam map[string]string // agent id → team account id

	store Store
	now   func() time.Time
}

// NewManager creates an empty budget manager. store may be nil.
func NewManager(store Store) *Manager {
	return &Manager{
		accounts:  make(map[string]*Account),
		agentTeam: make(map[string]string),
		store:     store,
		now:       time.Now,
	}
}

// RegisterAccount creates an account. Fails on duplicate id.
func (m *Manager) RegisterAccount(id string, accType AccountType, weeklyPoints int) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, id)
	}
	acc := &Account{
		ID:               id,
		Type:             accType,
		BaseWeeklyPoints: weeklyPoints,
		periodStart:      m.now(),
	}
	m.accounts[id] = acc
	return acc, nil
}

// LinkAgentTeam records that an agent without its own account falls back to
// the given team account.
func (m *Manager) LinkAgentTeam(agentID, teamAccountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agentTeam[agentID] = teamAccountID
}

// Resolve returns the account charged for the given agent: the agent's own
// account if one exists, else its team's.
func (m *Manager) Resolve(agentID string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[agentID]; ok {
		return acc, nil
	}
	if teamID, ok := m.agentTeam[agentID]; ok {
		if acc, ok := m.accounts[teamID]; ok {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: agent %s", ErrAccountNotFound, agentID)
}

// Get returns an account by id.
func (m *Manager) Get(accountID string) (*Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[accountID]
	return acc, ok
}

// Remaining returns the points left in the current period.
func (m *Manager) Remaining(acc *Account) int {
	acc.mu.Lock()
	defer acc.mu.Unlock()
	m.resetIfExpiredLocked(acc)
	return acc.BaseWeeklyPoints - acc.pointsSpent
}

// Deduct atomically charges cost points to the account. The charge is
// rejected (no partial spend) when remaining < cost. On success the new state
// is persisted before returning.
func (m *Manager) Deduct(ctx context.Context, acc *Account, cost int) error {
	if cost < 0 {
		return fmt.Errorf("negative cost %d", cost)
	}
	acc.mu.Lock()
	m.resetIfExpiredLocked(acc)
	remaining := acc.BaseWeeklyPoints - acc.pointsSpent
	if remaining < cost {
		acc.mu.Unlock()
		return fmt.Errorf("%w: account %s has %d points, need %d",
			ErrInsufficientBudget, acc.ID, remaining, cost)
	}
	acc.pointsSpent += cost
	snap := m.snapshotLocked(acc)
	acc.mu.Unlock()

	if m.store != nil {
		if err := m.store.SaveAccount(ctx, snap); err != nil {
			// The in-memory charge stands; persistence catches up on the
			// next successful write.
			return fmt.Errorf("persisting deduction for %s: %w", acc.ID, err)
		}
	}
	return nil
}

// CanAfford reports whether the account has at least cost points remaining.
func (m *Manager) CanAfford(acc *Account, cost int) bool {
	return m.Remaining(acc) >= cost
}

// Snapshot returns an immutable view of the account.
func (m *Manager) Snapshot(acc *Account) Snapshot {
	acc.mu.Lock()
	defer acc.mu.Unlock()
	m.resetIfExpiredLocked(acc)
	return m.snapshotLocked(acc)
}

// Snapshots returns views of every account.
func (m *Manager) Snapshots() []Snapshot {
	m.mu.RLock()
	accounts := make([]*Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	m.mu.RUnlock()

	out := make([]Snapshot, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, m.Snapshot(acc))
	}
	return out
}

func (m *Manager) snapshotLocked(acc *Account) Snapshot {
	return Snapshot{
		ID:               acc.ID,
		Type:             acc.Type,
		BaseWeeklyPoints: acc.BaseWeeklyPoints,
		PeriodStart:      acc.periodStart,
		PointsSpent:      acc.pointsSpent,
		Remaining:        acc.BaseWeeklyPoints - acc.pointsSpent,
	}
}

// resetIfExpiredLocked rolls the account into a new period when the current
// one has elapsed. Caller holds acc.mu.
func (m *Manager) resetIfExpiredLocked(acc *Account) {
	now := m.now()
	for !acc.periodStart.IsZero() && now.Sub(acc.periodStart) >= period {
		acc.periodStart = acc.periodStart.Add(period)
		acc.pointsSpent = 0
	}
}
