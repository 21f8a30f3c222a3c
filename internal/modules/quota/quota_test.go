package quota

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreAllowSequence(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(5)

	for i := 0; i < 5; i++ {
		ok, err := s.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
		remaining, _ := s.Remaining(ctx, "1.2.3.4")
		if want := 5 - (i + 1); remaining != want {
			t.Fatalf("after %d requests remaining = %d, want %d", i+1, remaining, want)
		}
	}

	ok, _ := s.Allow(ctx, "1.2.3.4")
	if ok {
		t.Fatalf("6th request should be denied")
	}
	remaining, _ := s.Remaining(ctx, "1.2.3.4")
	if remaining != 0 {
		t.Fatalf("denied check mutated state, remaining = %d", remaining)
	}
}

func TestMemoryStoreFreshIdentity(t *testing.T) {
	s := NewMemoryStore(5)
	remaining, err := s.Remaining(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 5 {
		t.Fatalf("fresh identity remaining = %d, want 5", remaining)
	}
}

func TestMemoryStoreDayRollover(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(5)
	day := time.Date(2026, 3, 1, 23, 50, 0, 0, time.Local)
	s.now = func() time.Time { return day }

	for i := 0; i < 5; i++ {
		if ok, _ := s.Allow(ctx, "ip"); !ok {
			t.Fatalf("request %d denied on first day", i+1)
		}
	}
	if ok, _ := s.Allow(ctx, "ip"); ok {
		t.Fatalf("limit not enforced on first day")
	}

	day = day.Add(time.Hour) // crosses midnight
	remaining, _ := s.Remaining(ctx, "ip")
	if remaining != 5 {
		t.Fatalf("remaining after rollover = %d, want full limit", remaining)
	}
	if ok, _ := s.Allow(ctx, "ip"); !ok {
		t.Fatalf("first request of the new day should be allowed")
	}
	remaining, _ = s.Remaining(ctx, "ip")
	if remaining != 4 {
		t.Fatalf("remaining after first request of new day = %d, want 4", remaining)
	}
}

func TestMemoryStoreIdentitiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	s.Allow(ctx, "a")
	s.Allow(ctx, "a")
	if ok, _ := s.Allow(ctx, "a"); ok {
		t.Fatalf("identity a should be exhausted")
	}
	if ok, _ := s.Allow(ctx, "b"); !ok {
		t.Fatalf("identity b should be unaffected")
	}
}

func TestMemoryStoreConcurrentAllow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := s.Allow(ctx, "shared")
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 5 {
		t.Fatalf("%d concurrent requests allowed, want exactly 5", allowed)
	}
}
