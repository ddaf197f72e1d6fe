// Package field resolves and writes values reachable through chains of named
// fields on live objects. A chain is described by a Path ("Probe.Gauge.Reading"),
// parsed either from a dotted string or built from validated segments, and is
// walked one named read at a time through per-type accessors.
package field

import (
	"reflect"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// Path is an immutable, ordered sequence of field names.
//
// Paths with identical segment sequences are interchangeable regardless of how
// they were constructed. The zero Path is invalid everywhere and reports IsZero.
type Path struct {
	segs []string
	h    unique.Handle[string]
}

// NewPath creates a Path from the given segments.
// Each segment must be non-empty and must not contain a dot.
func NewPath(segments ...string) (Path, error) {
	if len(segments) == 0 {
		return Path{}, ErrEmptyPath
	}
	for _, seg := range segments {
		if seg == "" || strings.Contains(seg, ".") {
			return Path{}, zerr.With(zerr.Wrap(ErrBadSegment, "build path"), "segment", seg)
		}
	}
	return newPath(append([]string(nil), segments...)), nil
}

// PathFor creates a Path whose segments are validated against the static shape
// of T before any object is walked. Struct fields must exist and be exported;
// pointers are dereferenced; map links and interface links are open-shaped and
// end static validation. It is the compile-time-checked counterpart of parsing
// a dotted string at runtime.
func PathFor[T any](segments ...string) (Path, error) {
	p, err := NewPath(segments...)
	if err != nil {
		return Path{}, err
	}

	t := reflect.TypeFor[T]()
	for _, seg := range segments {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Interface:
			// Open-shaped: the dynamic type is unknown until runtime.
			return p, nil
		case reflect.Map:
			if t.Key().Kind() != reflect.String {
				return Path{}, staticMismatch(t, seg)
			}
			t = t.Elem()
		case reflect.Struct:
			f, ok := t.FieldByName(seg)
			if !ok || !f.IsExported() {
				return Path{}, staticMismatch(t, seg)
			}
			t = f.Type
		default:
			return Path{}, staticMismatch(t, seg)
		}
	}
	return p, nil
}

// staticMismatch reports a segment the static shape of the walked type does
// not carry. Wrapping first keeps ErrFieldNotFound in the errors.Is chain.
func staticMismatch(t reflect.Type, seg string) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrFieldNotFound, "static path check"), "type", t.String()), "segment", seg)
}

// MustPathFor is like PathFor but panics on error.
// It is intended for package-level path constants.
func MustPathFor[T any](segments ...string) Path {
	p, err := PathFor[T](segments...)
	if err != nil {
		panic(err)
	}
	return p
}

// newPath builds a Path without validating segments. The cache uses it so that
// any string, however malformed, still parses to a path; such paths simply
// never resolve.
func newPath(segs []string) Path {
	return Path{
		segs: segs,
		h:    unique.Make(strings.Join(segs, ".")),
	}
}

// String returns the dotted join of the segments.
func (p Path) String() string {
	var zero unique.Handle[string]
	if p.h == zero {
		return ""
	}
	return p.h.Value()
}

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []string {
	return append([]string(nil), p.segs...)
}

// Leaf returns the final segment, where a value is ultimately read or written.
func (p Path) Leaf() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsZero reports whether the path was never constructed.
func (p Path) IsZero() bool {
	var zero unique.Handle[string]
	return p.h == zero
}

// Equal reports whether both paths carry the same segment sequence.
func (p Path) Equal(other Path) bool {
	return p.h == other.h
}
