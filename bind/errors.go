package bind

import "go.trai.ch/zerr"

var (
	// ErrNilTarget is returned when a binding is constructed without a target.
	ErrNilTarget = zerr.New("binding target is nil")

	// ErrZeroPath is returned when a binding is constructed with the zero Path.
	ErrZeroPath = zerr.New("binding path is zero")

	// ErrNilSource is returned when a binding is constructed without a source
	// value stream.
	ErrNilSource = zerr.New("source stream is nil")

	// ErrNilChanges is returned when a binding is constructed without a change
	// notification source.
	ErrNilChanges = zerr.New("change source is nil")
)
