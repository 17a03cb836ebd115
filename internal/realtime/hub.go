package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Event types published on the leaderboard feed.
const (
	EventTeacherAdded    = "teacher_added"
	EventRatingSubmitted = "rating_submitted"
)

// eventQueueSize bounds the events waiting for Run to deliver them.
const eventQueueSize = 64

// Client represents a single websocket subscriber.
// Send must not block; the network conn itself is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is the JSON payload pushed to subscribers.
type Event struct {
	Type      string `json:"type"`
	TeacherID string `json:"teacherId"`
	Version   int    `json:"version"`
}

// Hub fans leaderboard change events out to every connected client.
// Publish only enqueues; delivery happens on the goroutine running Run.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
	events  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]struct{}),
		events:  make(chan []byte, eventQueueSize),
	}
}

// Run delivers queued events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.events:
			h.Broadcast(msg)
		}
	}
}

// Register adds a subscriber.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a subscriber.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues an event of the given type for all subscribers. It never
// blocks; the event is dropped when the queue is full.
func (h *Hub) Publish(eventType, teacherID string) {
	msg, err := json.Marshal(Event{Type: eventType, TeacherID: teacherID, Version: 1})
	if err != nil {
		slog.Error("failed to encode leaderboard event", "error", err)
		return
	}
	select {
	case h.events <- msg:
	default:
		slog.Warn("leaderboard event dropped", "type", eventType, "teacher_id", teacherID)
	}
}

// Broadcast sends a raw message to every subscriber registered at call time.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	clients := make([]Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if ok := c.Send(message); !ok {
			// closed or too slow; the handler's read loop unregisters dead clients
			slog.Debug("leaderboard event not delivered")
		}
	}
}
