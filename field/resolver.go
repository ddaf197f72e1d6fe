package field

import (
	"errors"
	"reflect"

	"go.trai.ch/zerr"
)

// Resolver walks attribute paths over live objects, one named read per
// segment. An absent link anywhere along the walk, the root and the
// penultimate object included, is an expected outcome and surfaces as
// ErrNotResolvable; a name missing on a runtime type is a shape mismatch and
// surfaces as ErrFieldNotFound.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a Resolver over the given registry.
// A nil registry falls back to DefaultRegistry.
func NewResolver(reg *Registry) *Resolver {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Resolver{registry: reg}
}

// Registry returns the registry the resolver reads accessors from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve walks the path from root and returns the value of the final
// segment, which may itself be nil. The returned error wraps ErrNotResolvable
// when a link is absent and carries the full dotted path in its message.
func (r *Resolver) Resolve(root any, p Path) (any, error) {
	if p.IsZero() {
		return nil, ErrEmptyPath
	}
	return r.walk(root, p, p.Len())
}

// Lookup is the non-raising form of Resolve for callers on paths where absent
// links are routine: it reports an unreachable value as (nil, false) with no
// error. A shape mismatch between path and object graph still panics, in the
// same spirit as the reflect package: it is a programmer error, not a runtime
// state, and must not be silent.
func (r *Resolver) Lookup(root any, p Path) (any, bool) {
	v, err := r.Resolve(root, p)
	if err != nil {
		if errors.Is(err, ErrNotResolvable) {
			return nil, false
		}
		panic(err)
	}
	return v, true
}

// Owner walks all but the last segment and returns the penultimate object
// together with the leaf field name. It fails with ErrNotResolvable when a
// link, the penultimate object included, is absent.
func (r *Resolver) Owner(root any, p Path) (any, string, error) {
	if p.IsZero() {
		return nil, "", ErrEmptyPath
	}

	owner, err := r.walk(root, p, p.Len()-1)
	if err != nil {
		return nil, "", err
	}
	if absent(owner) {
		return nil, "", notResolvable(p, p.Leaf())
	}
	return owner, p.Leaf(), nil
}

// Write resolves all but the last segment and sets the final field to value.
// An absent intermediate link skips the write and returns (false, nil);
// a missing or unsettable leaf field returns the shape error.
func (r *Resolver) Write(root any, p Path, value any) (bool, error) {
	owner, leaf, err := r.Owner(root, p)
	if err != nil {
		if errors.Is(err, ErrNotResolvable) {
			return false, nil
		}
		return false, err
	}
	if err := r.Set(owner, leaf, value); err != nil {
		if errors.Is(err, ErrNotResolvable) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Set writes value into the named field of owner through its accessor.
// It is the leaf primitive shared by Write and by bindings that have already
// resolved their write destination.
func (r *Resolver) Set(owner any, name string, value any) error {
	acc, err := r.registry.AccessorFor(owner)
	if err != nil {
		return err
	}
	return acc.Set(owner, name, value)
}

// walk reads the first n segments of p starting at root.
func (r *Resolver) walk(root any, p Path, n int) (any, error) {
	current := root
	for _, seg := range p.segs[:n] {
		if absent(current) {
			return nil, notResolvable(p, seg)
		}
		acc, err := r.registry.AccessorFor(current)
		if err != nil {
			return nil, zerr.With(err, "path", p.String())
		}
		current, err = acc.Get(current, seg)
		if err != nil {
			return nil, zerr.With(err, "path", p.String())
		}
	}
	return current, nil
}

// absent reports whether v is nil, either directly or through a nil pointer,
// map, slice, channel or function value.
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// notResolvable builds the strict-form resolution error, carrying the dotted
// path in the message and the broken link as metadata.
func notResolvable(p Path, link string) error {
	return zerr.With(zerr.Wrap(ErrNotResolvable, "walk "+p.String()), "link", link)
}

// defaultResolver backs the package-level entry points.
var defaultResolver = NewResolver(nil)

// Resolve walks the path from root using the default resolver.
func Resolve(root any, p Path) (any, error) {
	return defaultResolver.Resolve(root, p)
}

// Lookup is the non-raising form of the package-level Resolve.
func Lookup(root any, p Path) (any, bool) {
	return defaultResolver.Lookup(root, p)
}

// Owner returns the penultimate object and leaf name using the default resolver.
func Owner(root any, p Path) (any, string, error) {
	return defaultResolver.Owner(root, p)
}

// Write sets the final field of the path using the default resolver.
func Write(root any, p Path, value any) (bool, error) {
	return defaultResolver.Write(root, p, value)
}
