// Package bind keeps a field path on a target object in sync with a source
// value stream. A Binding writes every emitted value into the current
// resolution of its path and re-homes that write destination whenever a
// change notification reports that an intermediate link may have been
// replaced, so the values keep flowing into the object now occupying the
// path rather than a stale one.
package bind

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.trai.ch/tether/field"
	"go.trai.ch/tether/notify"
	"go.trai.ch/tether/stream"
	"go.trai.ch/zerr"
)

// Binding is the live one-way flow from a source stream into a field path on
// a target object.
//
// A binding is either bound (exactly one live write subscription delivering
// into the resolved leaf) or unbound (the path is currently broken at some
// link and values are dropped). It never retries on its own: a broken path
// stays unbound until the next change notification triggers a rebind.
type Binding[T any] struct {
	id       string
	target   any
	path     field.Path
	resolver *field.Resolver
	log      *slog.Logger
	errFn    func(error)

	shared *stream.Shared[T]
	slot   *stream.Slot
	unhook func()

	mu     sync.Mutex // serializes rebinds against each other and against Close
	bound  atomic.Bool
	closed atomic.Bool

	rebinds atomic.Uint64
	writes  atomic.Uint64
}

// Stats is a snapshot of a binding's activity counters.
type Stats struct {
	// Rebinds counts resolution attempts: the initial bind plus one per
	// delivered change notification.
	Rebinds uint64
	// Writes counts values successfully written into the leaf.
	Writes uint64
}

// New creates a Binding that writes each value emitted by source into the
// resolution of path on target, rebinding on every notification delivered by
// changes.
//
// The source stream is multicast once for the binding's lifetime, the change
// source is hooked, and an initial bind is attempted immediately. A path that
// does not currently resolve is not an error; the binding starts unbound. A
// structural mismatch between path and target shape tears the binding back
// down and is returned.
func New[T any](target any, path field.Path, source stream.Stream[T], changes notify.Source, opts ...Option) (*Binding[T], error) {
	switch {
	case target == nil:
		return nil, ErrNilTarget
	case path.IsZero():
		return nil, ErrZeroPath
	case source == nil:
		return nil, ErrNilSource
	case changes == nil:
		return nil, ErrNilChanges
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Binding[T]{
		id:       cfg.id,
		target:   target,
		path:     path,
		resolver: cfg.resolver,
		log:      cfg.log.With("binding", cfg.id, "path", path.String()),
		errFn:    cfg.errFn,
		shared:   stream.Share(source),
		slot:     stream.NewSlot(),
	}

	b.unhook = changes.Subscribe(func(notify.Change) { b.onChange() })

	if err := b.rebind(); err != nil {
		b.Close()
		return nil, zerr.Wrap(err, "failed to establish initial binding")
	}
	return b, nil
}

// ID returns the binding's identifier.
func (b *Binding[T]) ID() string {
	return b.id
}

// Path returns the bound field path.
func (b *Binding[T]) Path() field.Path {
	return b.path
}

// Bound reports whether a write subscription is currently active.
func (b *Binding[T]) Bound() bool {
	return b.bound.Load()
}

// Stats returns a snapshot of the binding's counters.
func (b *Binding[T]) Stats() Stats {
	return Stats{
		Rebinds: b.rebinds.Load(),
		Writes:  b.writes.Load(),
	}
}

// Close releases the notification hook, the current write subscription and
// the binding's own multicast wrapper, upstream subscription included. The
// caller's source stream, change source and target object are untouched.
// Idempotent; calls after the first are no-ops.
func (b *Binding[T]) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unhook()
	b.slot.Close()
	b.shared.Close()
	b.bound.Store(false)
	b.log.Debug("binding closed")
}

// onChange runs one rebind per delivered notification. Which link changed is
// irrelevant: resolution starts from the target either way.
func (b *Binding[T]) onChange() {
	if err := b.rebind(); err != nil {
		b.errFn(err)
	}
}

// rebind discards the current write destination and re-resolves the path
// from the target. The previous write subscription is fully closed before a
// new one is created, so no two are ever simultaneously active. A broken
// link leaves the binding unbound; a shape mismatch is returned.
func (b *Binding[T]) rebind() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		return nil
	}
	b.rebinds.Add(1)

	b.slot.Swap(nil)
	b.bound.Store(false)

	owner, leaf, err := b.resolver.Owner(b.target, b.path)
	if err != nil {
		if errors.Is(err, field.ErrNotResolvable) {
			b.log.Debug("binding unbound")
			return nil
		}
		return zerr.With(zerr.Wrap(err, "rebind failed"), "binding", b.id)
	}

	b.slot.Swap(b.shared.Subscribe(func(v T) { b.write(owner, leaf, v) }))
	b.bound.Store(true)
	b.log.Debug("binding bound")
	return nil
}

// write delivers one value into the resolved leaf. The destination was
// captured at rebind time; if it has since become unreachable the value is
// dropped silently, like any write across a broken path.
func (b *Binding[T]) write(owner any, leaf string, v T) {
	if err := b.resolver.Set(owner, leaf, v); err != nil {
		if errors.Is(err, field.ErrNotResolvable) {
			return
		}
		b.errFn(zerr.With(zerr.Wrap(err, "write failed"), "binding", b.id))
		return
	}
	b.writes.Add(1)
}
