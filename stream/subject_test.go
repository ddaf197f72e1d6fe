package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tether/stream"
)

func TestSubject_DeliversInOrder(t *testing.T) {
	s := stream.NewSubject[int]()

	var got []int
	sub := s.Subscribe(func(v int) { got = append(got, v) })
	defer sub.Close()

	s.Emit(1)
	s.Emit(2)
	s.Emit(3)

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSubject_PerSubscriberDelivery(t *testing.T) {
	s := stream.NewSubject[string]()

	var first, second []string
	s.Subscribe(func(v string) { first = append(first, v) })
	s.Subscribe(func(v string) { second = append(second, v) })

	s.Emit("a")
	s.Emit("b")

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 2, s.Len())
}

func TestSubject_CloseStopsDelivery(t *testing.T) {
	s := stream.NewSubject[int]()

	var got []int
	sub := s.Subscribe(func(v int) { got = append(got, v) })

	s.Emit(1)
	sub.Close()
	s.Emit(2)

	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_SubscriptionCloseIsIdempotent(t *testing.T) {
	s := stream.NewSubject[int]()

	sub := s.Subscribe(func(int) {})
	sub.Close()
	sub.Close()

	assert.Equal(t, 0, s.Len())
}

func TestSubject_EmitAfterCloseIsDropped(t *testing.T) {
	s := stream.NewSubject[int]()

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })

	s.Close()
	s.Emit(7)

	assert.Empty(t, got)
}

func TestSubject_SubscribeAfterCloseIsInert(t *testing.T) {
	s := stream.NewSubject[int]()
	s.Close()

	sub := s.Subscribe(func(int) { t.Fatal("must never be called") })
	s.Emit(1)
	sub.Close()

	assert.Equal(t, 0, s.Len())
}

func TestSubject_UnsubscribeDuringEmit(t *testing.T) {
	s := stream.NewSubject[int]()

	var sub stream.Subscription
	var got []int
	sub = s.Subscribe(func(v int) {
		got = append(got, v)
		sub.Close()
	})

	// The callback closes its own subscription; the removal takes effect from
	// the next emission, not mid-delivery.
	s.Emit(1)
	s.Emit(2)

	assert.Equal(t, []int{1}, got)
}

func TestSubject_SubscribeDuringEmit(t *testing.T) {
	s := stream.NewSubject[int]()

	var late []int
	s.Subscribe(func(v int) {
		if v == 1 {
			s.Subscribe(func(v int) { late = append(late, v) })
		}
	})

	s.Emit(1)
	s.Emit(2)

	assert.Equal(t, []int{2}, late)
}
