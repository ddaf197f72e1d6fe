package stream

import "sync"

// Subject is a push source implementing Stream: every value passed to Emit is
// delivered to each subscriber registered at that moment, in subscription
// order. A closed Subject drops emissions and hands out inert subscriptions.
type Subject[T any] struct {
	mu     sync.Mutex
	subs   []*subscriber[T]
	nextID uint64
	closed bool
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// NewSubject creates an open Subject with no subscribers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers fn to receive every subsequent emission until the
// returned subscription is closed.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return inert()
	}

	sub := &subscriber[T]{id: s.nextID, fn: fn}
	s.nextID++
	s.subs = append(s.subs, sub)

	return newHandle(func() { s.remove(sub.id) })
}

// Emit delivers v to a snapshot of the current subscribers. Callbacks run
// outside the subject's lock, so a callback may subscribe or unsubscribe
// without deadlocking; it then takes effect from the next emission.
func (s *Subject[T]) Emit(v T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// Close drops all subscribers. Later emissions are discarded and later
// subscriptions are inert. Close is idempotent.
func (s *Subject[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = nil
}

// Len returns the number of live subscribers.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
