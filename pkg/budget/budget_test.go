package budget

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductAndRemaining(t *testing.T) {
	m := NewManager(nil)
	acc, err := m.RegisterAccount("alpha_a", AccountTeam, 10)
	require.NoError(t, err)

	require.NoError(t, m.Deduct(context.Background(), acc, 4))
	assert.Equal(t, 6, m.Remaining(acc))

	require.NoError(t, m.Deduct(context.Background(), acc, 6))
	assert.Equal(t, 0, m.Remaining(acc))
}

func TestDeductRejectsWhenInsufficient(t *testing.T) {
	m := NewManager(nil)
	acc, _ := m.RegisterAccount("alpha_a", AccountTeam, 3)

	err := m.Deduct(context.Background(), acc, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientBudget)
	// Rejected deduction leaves the account untouched.
	assert.Equal(t, 3, m.Remaining(acc))
}

func TestResolveAgentFallsBackToTeam(t *testing.T) {
	m := NewManager(nil)
	team, _ := m.RegisterAccount("alpha_a", AccountTeam, 100)
	m.LinkAgentTeam("r1", "alpha_a")

	acc, err := m.Resolve("r1")
	require.NoError(t, err)
	assert.Same(t, team, acc)

	// An agent-level account takes precedence over the team.
	own, _ := m.RegisterAccount("r2", AccountAgent, 5)
	m.LinkAgentTeam("r2", "alpha_a")
	acc, err = m.Resolve("r2")
	require.NoError(t, err)
	assert.Same(t, own, acc)

	_, err = m.Resolve("stranger")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDuplicateAccountRejected(t *testing.T) {
	m := NewManager(nil)
	_, err := m.RegisterAccount("a", AccountAgent, 1)
	require.NoError(t, err)
	_, err = m.RegisterAccount("a", AccountAgent, 1)
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestPeriodReset(t *testing.T) {
	m := NewManager(nil)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	acc, _ := m.RegisterAccount("a", AccountAgent, 10)
	require.NoError(t, m.Deduct(context.Background(), acc, 10))
	assert.Equal(t, 0, m.Remaining(acc))

	// One week later the account refills and the period start advances.
	now = now.Add(7*24*time.Hour + time.Hour)
	assert.Equal(t, 10, m.Remaining(acc))

	snap := m.Snapshot(acc)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), snap.PeriodStart)
	assert.Equal(t, 0, snap.PointsSpent)
}

func TestConcurrentDeductionsNeverOverspend(t *testing.T) {
	m := NewManager(nil)
	acc, _ := m.RegisterAccount("a", AccountAgent, 100)

	var wg sync.WaitGroup
	success := make(chan struct{}, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Deduct(context.Background(), acc, 1); err == nil {
				success <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(success)

	granted := 0
	for range success {
		granted++
	}
	assert.Equal(t, 100, granted)
	assert.Equal(t, 0, m.Remaining(acc))
}

type captureStore struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (c *captureStore) SaveAccount(_ context.Context, snap Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, snap)
	return nil
}

func TestDeductPersistsSnapshot(t *testing.T) {
	store := &captureStore{}
	m := NewManager(store)
	acc, _ := m.RegisterAccount("a", AccountAgent, 10)

	require.NoError(t, m.Deduct(context.Background(), acc, 3))

	require.Len(t, store.snaps, 1)
	assert.Equal(t, 3, store.snaps[0].PointsSpent)
	assert.Equal(t, 7, store.snaps[0].Remaining)
}
