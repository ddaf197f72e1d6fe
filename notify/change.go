// Package notify carries "this value may have changed" records between
// producers and the binding engine. A Change names a sender object and a
// dotted property path on it, optionally with the already-computed current
// value attached; it is sealed by a Builder, consumed once and never
// retained. The package also defines the Source subscription interface the
// engine consumes, a reference in-process Hub producer, and extraction of
// the current value a Change describes.
package notify

// Change is an immutable record stating that the value reachable via a
// property path from a sender object may have just changed.
type Change struct {
	sender any
	path   string
	value  any
}

// Sender returns the object the property path is rooted at.
func (c Change) Sender() any {
	return c.sender
}

// Path returns the dotted property path.
func (c Change) Path() string {
	return c.path
}

// Value returns the attached precomputed value, or nil when none was
// attached. Whether an attached value is actually used is the extractor's
// decision; see Extractor.
func (c Change) Value() any {
	return c.value
}

// Builder assembles a Change. It is mutable until Build seals the record;
// producers that know the new value attach it here so consumers can skip the
// resolution walk.
type Builder struct {
	c Change
}

// NewChange starts building a Change for the given sender and dotted path.
func NewChange(sender any, path string) *Builder {
	return &Builder{c: Change{sender: sender, path: path}}
}

// WithValue attaches the precomputed current value.
func (b *Builder) WithValue(v any) *Builder {
	b.c.value = v
	return b
}

// Build seals and returns the Change.
func (b *Builder) Build() Change {
	return b.c
}

// Changed is shorthand for a Change without an attached value.
func Changed(sender any, path string) Change {
	return NewChange(sender, path).Build()
}
