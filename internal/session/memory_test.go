package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	id, err := s.Create(ctx, "u-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got, err := s.Get(ctx, id); err != nil || got != "u-1" {
		t.Fatalf("expected u-1, got %q err=%v", got, err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected Len=1, got %d", s.Len())
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryStore_TTL_Expiry(t *testing.T) {
	ctx := context.Background()

	// Freeze time via now indirection
	base := time.Now()
	now = func() time.Time { return base }
	t.Cleanup(func() { now = time.Now })

	s := NewMemoryStore(time.Minute)
	id, _ := s.Create(ctx, "u-1")
	if _, err := s.Get(ctx, id); err != nil {
		t.Fatalf("expected hit before expiry: %v", err)
	}

	base = base.Add(2 * time.Minute)
	if _, err := s.Get(ctx, id); err != ErrNotFound {
		t.Fatalf("expected miss after expiry, got %v", err)
	}
	s.PurgeExpired()
	if s.Len() != 0 {
		t.Fatalf("expected Len=0 after purge, got %d", s.Len())
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	var wg sync.WaitGroup
	ids := make([]string, 50)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Create(ctx, "user")
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids[i] = id
			_, _ = s.Get(ctx, id)
		}()
	}
	wg.Wait()

	if s.Len() != len(ids) {
		t.Fatalf("expected %d sessions, got %d", len(ids), s.Len())
	}
}

func TestMemoryStore_JanitorReclaimsExpired(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewMemoryStore(time.Millisecond)
	for i := 0; i < 100; i++ {
		if _, err := s.Create(ctx, "u-1"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	go s.RunJanitor(ctx, 2*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for {
		s.mu.RLock()
		n := len(s.items)
		s.mu.RUnlock()
		if n == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected expired entries to be reclaimed, %d left", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
