package quota

import (
	"context"
	"sync"
	"time"
)

type usageRecord struct {
	count int
	date  string
}

// MemoryStore keeps counters in process memory. State is lost on restart and
// not shared between instances; use the Redis store for multi-instance setups.
type MemoryStore struct {
	mu    sync.Mutex
	usage map[string]usageRecord
	limit int
	now   func() time.Time
}

// NewMemoryStore creates an in-memory store with the given daily limit.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		usage: make(map[string]usageRecord),
		limit: limit,
		now:   time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, identity string) (bool, error) {
	today := s.now().Format(dateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.usage[identity]
	if !ok || rec.date != today {
		s.usage[identity] = usageRecord{count: 1, date: today}
		return true, nil
	}
	if rec.count >= s.limit {
		return false, nil
	}
	rec.count++
	s.usage[identity] = rec
	return true, nil
}

func (s *MemoryStore) Remaining(_ context.Context, identity string) (int, error) {
	today := s.now().Format(dateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.usage[identity]
	if !ok || rec.date != today {
		return s.limit, nil
	}
	if rec.count >= s.limit {
		return 0, nil
	}
	return s.limit - rec.count, nil
}
