package stream

import "sync"

// Shared multicasts a source stream: exactly one upstream subscription is
// taken at construction and fanned out to any number of downstream
// subscribers. Values emitted while no downstream subscriber exists are
// dropped; there is no replay.
type Shared[T any] struct {
	subject  *Subject[T]
	upstream Subscription
	once     sync.Once
}

// Share wraps src so that all downstream subscribers observe the values of a
// single upstream subscription. Closing the returned Shared releases that
// upstream subscription; the source itself is untouched.
func Share[T any](src Stream[T]) *Shared[T] {
	sh := &Shared[T]{subject: NewSubject[T]()}
	sh.upstream = src.Subscribe(sh.subject.Emit)
	return sh
}

// Subscribe registers fn with the internal fan-out subject.
func (s *Shared[T]) Subscribe(fn func(T)) Subscription {
	return s.subject.Subscribe(fn)
}

// Len returns the number of live downstream subscribers.
func (s *Shared[T]) Len() int {
	return s.subject.Len()
}

// Close releases the upstream subscription and drops all downstream
// subscribers. Idempotent.
func (s *Shared[T]) Close() {
	s.once.Do(func() {
		s.upstream.Close()
		s.subject.Close()
	})
}
