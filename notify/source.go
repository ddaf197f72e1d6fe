package notify

// Source is the subscription surface of a change-notification producer. The
// engine requires nothing beyond it: delivery semantics, threading and
// coalescing are entirely the producer's business.
//
//go:generate mockgen -source=source.go -destination=../internal/mocks/mock_source.go -package=mocks
type Source interface {
	// Subscribe registers fn to receive every subsequent Change until the
	// returned cancel function is called.
	Subscribe(fn func(Change)) (cancel func())
}
