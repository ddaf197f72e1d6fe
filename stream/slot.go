package stream

import "sync"

// Slot is an owned subscription holder: it carries at most one live
// Subscription at any instant. Replacing the occupant closes the previous one
// inside the same critical section, so two subscriptions held through the
// same slot are never simultaneously active.
type Slot struct {
	mu      sync.Mutex
	current Subscription
	closed  bool
}

// NewSlot creates an empty, open Slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Swap closes the current occupant, then stores next. A nil next leaves the
// slot empty. Swapping into a closed slot closes next immediately.
func (s *Slot) Swap(next Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		if next != nil {
			next.Close()
		}
		return
	}
	if s.current != nil {
		s.current.Close()
	}
	s.current = next
}

// Close closes the occupant, if any, and marks the slot closed. Idempotent.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
}

// Active reports whether the slot currently holds a subscription.
func (s *Slot) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}
