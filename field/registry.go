package field

import (
	"reflect"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Registry maps runtime types to their field accessors.
//
// Lookup order is: explicitly registered accessor, the Accessible interface,
// then a reflection accessor built once per distinct type. Builds are
// deduplicated through singleflight so concurrent walks over a new type do
// not race to construct the same field table.
type Registry struct {
	mu     sync.RWMutex
	custom map[reflect.Type]Accessor
	built  map[reflect.Type]Accessor
	group  singleflight.Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		custom: make(map[reflect.Type]Accessor),
		built:  make(map[reflect.Type]Accessor),
	}
}

// Register installs a custom accessor for the exact runtime type t.
// Registering a second accessor for the same type returns ErrAccessorConflict.
func (r *Registry) Register(t reflect.Type, a Accessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.custom[t]; exists {
		return zerr.With(zerr.Wrap(ErrAccessorConflict, "register accessor"), "type", t.String())
	}
	r.custom[t] = a
	return nil
}

// AccessorFor returns the accessor responsible for recv's runtime type,
// building and memoizing a reflection accessor when no custom one applies.
func (r *Registry) AccessorFor(recv any) (Accessor, error) {
	if recv == nil {
		return nil, ErrNotResolvable
	}
	t := reflect.TypeOf(recv)

	r.mu.RLock()
	if a, ok := r.custom[t]; ok {
		r.mu.RUnlock()
		return a, nil
	}
	if _, ok := recv.(Accessible); ok {
		r.mu.RUnlock()
		return accessibleAccessor{}, nil
	}
	if a, ok := r.built[t]; ok {
		r.mu.RUnlock()
		return a, nil
	}
	r.mu.RUnlock()

	v, err, _ := r.group.Do(typeKey(t), func() (any, error) {
		a, err := buildAccessor(t)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.built[t] = a
		r.mu.Unlock()
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Accessor), nil
}

// typeKey produces a package-qualified singleflight key. t.String alone uses
// short package names and could alias same-named types from different paths.
func typeKey(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeKey(t.Elem())
	case reflect.Map:
		return "map[" + typeKey(t.Key()) + "]" + typeKey(t.Elem())
	default:
		if pp := t.PkgPath(); pp != "" {
			return pp + "." + t.Name()
		}
		return t.String()
	}
}

// defaultRegistry backs the package-level resolver functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by the package-level Resolve,
// Lookup, Owner and Write functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
