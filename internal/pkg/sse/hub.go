package sse

import (
	"sync"
)

// Event is pushed to a staff member's open event streams.
type Event struct {
	StaffID string
	Event   string
	Data    interface{}
}

// Hub fans events out to the streams each staff member has open.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
}

// NewHub creates a hub whose subscriber channels hold bufferSize events.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 10
	}
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe opens a stream for staffID. The returned cleanup closes it.
func (h *Hub) Subscribe(staffID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)
	if h.subscribers[staffID] == nil {
		h.subscribers[staffID] = make(map[chan Event]struct{})
	}
	h.subscribers[staffID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[staffID], ch)
			close(ch)
			if len(h.subscribers[staffID]) == 0 {
				delete(h.subscribers, staffID)
			}
		})
	}

	return ch, cleanup
}

// Publish delivers event to every stream of staffID. A full stream drops the
// event instead of blocking the publisher.
func (h *Hub) Publish(staffID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.StaffID = staffID
	for ch := range h.subscribers[staffID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams for staffID.
func (h *Hub) SubscriberCount(staffID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[staffID])
}
