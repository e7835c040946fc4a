package agent

import (
	"sync"
	"time"
)

// Activity is one entry in an agent's bounded activity log.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Details   string    `json:"details,omitempty"`
}

// ConversationEntry is one turn of LLM context.
type ConversationEntry struct {
	Role    string    `json:"role"` // prompt | response
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ring is a bounded FIFO buffer; the oldest entry is evicted on overflow.
type ring[T any] struct {
	mu    sync.Mutex
	items []T
	cap   int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &ring[T]{cap: capacity}
}

func (r *ring[T]) add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) >= r.cap {
		r.items = r.items[1:]
	}
	r.items = append(r.items, item)
}

func (r *ring[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *ring[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
