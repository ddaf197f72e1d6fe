package notify

import (
	"reflect"

	"go.trai.ch/tether/field"
	"go.trai.ch/zerr"
)

// Extractor produces the current value a Change describes.
//
// When the producer attached a precomputed value, that value is returned
// without touching the sender. An attached value that is the zero value of
// its dynamic type is deliberately treated as unset and triggers a full
// parse-and-resolve from the sender, even though the walk is redundant for
// fields whose legitimate value is zero. Producers relying on the fast path
// for zero values must resolve before attaching.
type Extractor struct {
	cache    *field.Cache
	resolver *field.Resolver
}

// NewExtractor creates an Extractor over the given parse cache and resolver.
// Nil arguments fall back to the field package defaults.
func NewExtractor(cache *field.Cache, resolver *field.Resolver) *Extractor {
	if cache == nil {
		cache = field.DefaultCache()
	}
	if resolver == nil {
		resolver = field.NewResolver(nil)
	}
	return &Extractor{cache: cache, resolver: resolver}
}

// Value returns the current value described by c: the attached value when it
// rides the fast path, otherwise the result of resolving the property path
// from the sender. Resolution failure returns an error carrying the path;
// a path/shape mismatch surfaces as the underlying field error.
func (e *Extractor) Value(c Change) (any, error) {
	if attached(c.value) {
		return c.value, nil
	}

	v, err := e.resolver.Resolve(c.sender, e.cache.Parse(c.path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "extract change value"), "property_path", c.path)
	}
	return v, nil
}

// TryValue is the non-raising form of Value for callers on paths where absent
// links are routine: it reports resolution failure as (nil, false). A shape
// mismatch still panics, matching field.Lookup.
func (e *Extractor) TryValue(c Change) (any, bool) {
	if attached(c.value) {
		return c.value, true
	}
	return e.resolver.Lookup(c.sender, e.cache.Parse(c.path))
}

// attached reports whether v rides the fast path: non-nil and not the zero
// value of its dynamic type.
func attached(v any) bool {
	return v != nil && !reflect.ValueOf(v).IsZero()
}

// defaultExtractor backs the package-level entry points.
var defaultExtractor = NewExtractor(nil, nil)

// Value extracts the current value of c using the default extractor.
func Value(c Change) (any, error) {
	return defaultExtractor.Value(c)
}

// TryValue is the non-raising form of the package-level Value.
func TryValue(c Change) (any, bool) {
	return defaultExtractor.TryValue(c)
}
