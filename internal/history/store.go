// Package history keeps the most recent generated assignments. Persistence
// is best-effort: storage failures are logged and the Store carries on with
// its in-memory copy.
package history

import (
	"context"
	"sync"

	"github.com/tulikamejora/homework-help/internal/domain"
	"go.uber.org/zap"
)

// DefaultCapacity is how many records are retained.
const DefaultCapacity = 10

// Store is a bounded, most-recent-first log of HistoryRecords.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	capacity int
	log      *zap.Logger
	records  []domain.HistoryRecord
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity overrides DefaultCapacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithLogger sets the logger used to report storage failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a Store over storage. A nil storage keeps history in
// memory only.
func NewStore(storage Storage, opts ...Option) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{
		storage:  storage,
		capacity: DefaultCapacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capacity returns the maximum number of retained records.
func (s *Store) Capacity() int { return s.capacity }

// Load returns the persisted records, most recent first. Missing or
// unparseable content yields an empty history; a failed read falls back to
// the in-memory copy.
func (s *Store) Load(ctx context.Context) []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh(ctx)
	return s.snapshot()
}

// Append prepends rec, drops anything beyond capacity and persists the
// result. It returns the retained records.
func (s *Store) Append(ctx context.Context, rec domain.HistoryRecord) []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh(ctx)

	next := make([]domain.HistoryRecord, 0, len(s.records)+1)
	next = append(next, rec)
	next = append(next, s.records...)
	if len(next) > s.capacity {
		next = next[:s.capacity]
	}
	s.records = next
	s.persist(ctx)
	return s.snapshot()
}

// Delete removes the record with the given id, keeping the relative order
// of the rest. It reports whether a record was removed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh(ctx)

	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	next := make([]domain.HistoryRecord, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)
	s.records = next
	s.persist(ctx)
	return true
}

// Get looks up a record by id.
func (s *Store) Get(ctx context.Context, id string) (domain.HistoryRecord, bool) {
	for _, r := range s.Load(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return domain.HistoryRecord{}, false
}

// refresh replaces the in-memory list with the persisted one. Callers must
// hold s.mu.
func (s *Store) refresh(ctx context.Context) {
	data, err := s.storage.Read(ctx)
	if err != nil {
		s.log.Warn("history read failed, using in-memory copy", zap.Error(err))
		return
	}
	records, err := Decode(data)
	if err != nil {
		s.log.Warn("history content unreadable, treating as empty", zap.Error(err))
		s.records = nil
		return
	}
	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	s.records = records
}

// persist writes the in-memory list. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	data, err := Encode(s.records)
	if err != nil {
		s.log.Warn("history encode failed", zap.Error(err))
		return
	}
	if err := s.storage.Write(ctx, data); err != nil {
		s.log.Warn("history write failed, continuing in memory", zap.Error(err))
	}
}

func (s *Store) snapshot() []domain.HistoryRecord {
	out := make([]domain.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out
}
