package bind

import (
	"log/slog"

	"github.com/google/uuid"
	"go.trai.ch/tether/field"
)

type config struct {
	id       string
	resolver *field.Resolver
	log      *slog.Logger
	errFn    func(error)
}

func defaultConfig() config {
	return config{
		id:       uuid.NewString(),
		resolver: field.NewResolver(nil),
		log:      slog.New(slog.DiscardHandler),
		errFn:    func(err error) { panic(err) },
	}
}

// Option configures a Binding at construction.
type Option func(*config)

// WithErrorFunc routes the structural errors raised by notification-triggered
// rebinds and by writes. The default panics: a mismatch between path and
// object shape is a programmer error and must not be masked.
func WithErrorFunc(fn func(error)) Option {
	return func(c *config) {
		if fn != nil {
			c.errFn = fn
		}
	}
}

// WithLogger injects the logger used for debug-level bound/unbound
// transitions. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithResolver swaps the field resolver, e.g. to walk through a custom
// accessor registry.
func WithResolver(r *field.Resolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithID overrides the generated binding id.
func WithID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.id = id
		}
	}
}
