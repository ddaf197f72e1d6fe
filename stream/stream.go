// Package stream provides the minimal value-stream surface the binding engine
// consumes: a push Subject, a multicast wrapper that shares one upstream
// subscription across any number of listeners, and an exclusive Slot holding
// the single currently active subscription.
//
// Combining, filtering or scheduling streams is deliberately out of scope;
// that is the producer's business.
package stream

import "sync"

// Subscription is a handle on delivery of values to one subscriber.
// Close stops delivery and is safe to call more than once.
type Subscription interface {
	Close()
}

// Stream delivers values to each subscriber independently.
type Stream[T any] interface {
	// Subscribe registers fn to receive every subsequent value.
	Subscribe(fn func(T)) Subscription
}

// handle is the Subscription implementation shared across the package.
type handle struct {
	once sync.Once
	stop func()
}

func newHandle(stop func()) *handle {
	return &handle{stop: stop}
}

func (h *handle) Close() {
	h.once.Do(h.stop)
}

// inert returns a Subscription that was never live, used when subscribing to
// an already closed source.
func inert() Subscription {
	return newHandle(func() {})
}
