package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (r *recorder) Send(message []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, message)
	return true
}

func (r *recorder) Close() {}

func (r *recorder) messages() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.msgs...)
}

// stalled blocks in Send until release is closed.
type stalled struct {
	release chan struct{}
}

func (s *stalled) Send([]byte) bool {
	<-s.release
	return false
}

func (s *stalled) Close() {}

func runHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	h := runHub(t)
	a, b := &recorder{}, &recorder{}
	h.Register(a)
	h.Register(b)
	require.Equal(t, 2, h.Len())

	h.Publish(EventRatingSubmitted, "t-1")

	for _, r := range []*recorder{a, b} {
		require.Eventually(t, func() bool { return len(r.messages()) == 1 }, time.Second, 5*time.Millisecond)
		var evt Event
		require.NoError(t, json.Unmarshal(r.messages()[0], &evt))
		require.Equal(t, Event{Type: EventRatingSubmitted, TeacherID: "t-1", Version: 1}, evt)
	}

	h.Unregister(a)
	h.Publish(EventTeacherAdded, "t-2")
	require.Eventually(t, func() bool { return len(b.messages()) == 2 }, time.Second, 5*time.Millisecond)
	require.Len(t, a.messages(), 1)
}

func TestHub_StalledClientsDoNotBlockPublishers(t *testing.T) {
	h := runHub(t)
	slow := &stalled{release: make(chan struct{})}
	defer close(slow.release)
	h.Register(slow)
	h.Register(&stalled{release: slow.release})

	start := time.Now()
	for i := 0; i < 3; i++ {
		h.Publish(EventTeacherAdded, "t-1")
	}
	require.Less(t, time.Since(start), 100*time.Millisecond)

	// Delivery is stuck in Send, but the client set is not locked.
	fast := &recorder{}
	h.Register(fast)
	h.Unregister(fast)
	require.Equal(t, 2, h.Len())
}

func TestHub_PublishDropsWhenQueueIsFull(t *testing.T) {
	h := NewHub() // not running; nothing drains the queue

	done := make(chan struct{})
	go func() {
		for i := 0; i < eventQueueSize+10; i++ {
			h.Publish(EventRatingSubmitted, "t-1")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	require.Len(t, h.events, eventQueueSize)
}
