package field

import "go.trai.ch/zerr"

var (
	// ErrEmptyPath is returned when a path is constructed without any segments.
	ErrEmptyPath = zerr.New("path has no segments")

	// ErrBadSegment is returned when a path segment is empty or contains a dot.
	ErrBadSegment = zerr.New("invalid path segment")

	// ErrNotResolvable indicates that a link of the path is currently absent.
	// This is an expected runtime condition, not a structural mismatch; callers
	// on hot paths should prefer Lookup, which reports it as a boolean.
	ErrNotResolvable = zerr.New("path is not resolvable")

	// ErrFieldNotFound is returned when a named field does not exist on the
	// runtime type encountered during a walk. Unlike ErrNotResolvable this is
	// a mismatch between the path and the object shape and is never silent.
	ErrFieldNotFound = zerr.New("field not found")

	// ErrFieldNotWritable is returned when a named field exists but cannot be
	// set on the runtime type encountered, e.g. a struct traversed by value.
	ErrFieldNotWritable = zerr.New("field not writable")

	// ErrAccessorConflict is returned when registering an accessor for a type
	// that already has one.
	ErrAccessorConflict = zerr.New("accessor already registered")
)
