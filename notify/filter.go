package notify

import (
	"reflect"
	"strings"
)

// filtered narrows a Source to records satisfying keep.
type filtered struct {
	src  Source
	keep func(Change) bool
}

func (f filtered) Subscribe(fn func(Change)) func() {
	return f.src.Subscribe(func(c Change) {
		if f.keep(c) {
			fn(c)
		}
	})
}

// ForSender narrows src to records whose sender is exactly the given object.
// Senders are expected to be pointers; an uncomparable sender (map, slice,
// func) never matches rather than panicking at delivery time.
func ForSender(src Source, sender any) Source {
	return filtered{src: src, keep: func(c Change) bool {
		s := c.Sender()
		if s == nil || sender == nil {
			return s == nil && sender == nil
		}
		if !reflect.TypeOf(s).Comparable() || !reflect.TypeOf(sender).Comparable() {
			return false
		}
		return s == sender
	}}
}

// ForPath narrows src to records that can affect the value at path: records
// whose property path equals it, or names one of its ancestor links at
// segment granularity. "Probe" and "Probe.Gauge" both pass a filter on
// "Probe.Gauge.Reading"; "Probes" does not.
func ForPath(src Source, path string) Source {
	return filtered{src: src, keep: func(c Change) bool {
		return ancestorOf(c.Path(), path)
	}}
}

func ancestorOf(candidate, path string) bool {
	return candidate == path || strings.HasPrefix(path, candidate+".")
}
