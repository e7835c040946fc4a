package tools

import (
	"context"
	"sync"
	"time"
)

// MemoryAuditSink is an in-memory, append-only audit log. It backs tests and
// serves as the read side for capability statistics; production deployments
// chain it with the database-backed sink.
type MemoryAuditSink struct {
	mu      sync.RWMutex
	records []AuditRecord
}

// NewMemoryAuditSink creates an empty sink.
func NewMemoryAuditSink() *MemoryAuditSink {
	return &MemoryAuditSink{}
}

// Record implements AuditSink.
func (s *MemoryAuditSink) Record(_ context.Context, rec AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of all audit rows.
func (s *MemoryAuditSink) Records() []AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AuditRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RecordsSince returns rows with Timestamp >= since.
func (s *MemoryAuditSink) RecordsSince(since time.Time) []AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []AuditRecord
	for _, rec := range s.records {
		if !rec.Timestamp.Before(since) {
			out = append(out, rec)
		}
	}
	return out
}

// TeeAuditSink fans audit rows out to several sinks. The first error wins but
// all sinks are attempted.
type TeeAuditSink struct {
	sinks []AuditSink
}

// NewTeeAuditSink combines sinks.
func NewTeeAuditSink(sinks ...AuditSink) *TeeAuditSink {
	return &TeeAuditSink{sinks: sinks}
}

// Record implements AuditSink.
func (t *TeeAuditSink) Record(ctx context.Context, rec AuditRecord) error {
	var firstErr error
	for _, s := range t.sinks {
		if err := s.Record(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
