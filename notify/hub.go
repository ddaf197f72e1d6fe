package notify

import (
	"slices"
	"sync"
)

// Hub is an in-process reference implementation of Source. Subscribers are
// invoked synchronously, in subscription order, on the goroutine calling
// Publish. Producers needing asynchronous or coalesced delivery wrap or
// replace it; the engine only ever sees the Source interface.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]func(Change)
	nextID uint64
	closed bool
}

// NewHub creates an open Hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]func(Change))}
}

// Subscribe registers fn and returns its cancel function.
func (h *Hub) Subscribe(fn func(Change)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish delivers c to a snapshot of the current subscribers. Publishing
// after Close is a no-op.
func (h *Hub) Publish(c Change) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return
	}
	ids := make([]uint64, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Change), len(ids))
	for i, id := range ids {
		fns[i] = h.subs[id]
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

// Notify publishes a Change without an attached value.
func (h *Hub) Notify(sender any, path string) {
	h.Publish(Changed(sender, path))
}

// NotifyValue publishes a Change carrying the precomputed current value.
func (h *Hub) NotifyValue(sender any, path string, v any) {
	h.Publish(NewChange(sender, path).WithValue(v).Build())
}

// Close drops all subscribers and silences the hub. Idempotent.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.subs = map[uint64]func(Change){}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
