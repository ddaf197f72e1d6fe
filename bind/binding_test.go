package bind_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tether/bind"
	"go.trai.ch/tether/field"
	"go.trai.ch/tether/notify"
	"go.trai.ch/tether/stream"
)

// The test rig mirrors a live object graph: a rig owns a probe, the probe
// owns a gauge, and the binding drives the gauge's reading. The Gauge link is
// open-shaped so shape-mismatch cases can slot in foreign objects.
type rig struct {
	Probe *probe
}

type probe struct {
	Gauge any
}

type gauge struct {
	Reading float64
}

// shell adds one more hop for structural errors below the Gauge link.
type shell struct {
	Inner *gauge
}

// brick carries no links at all.
type brick struct{}

func testRig() *rig {
	return &rig{Probe: &probe{Gauge: &gauge{}}}
}

func readingPath() field.Path {
	return field.Parse("Probe.Gauge.Reading")
}

func TestNew_Validation(t *testing.T) {
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil target", func() error {
			_, err := bind.New[float64](nil, readingPath(), subject, hub)
			return err
		}, bind.ErrNilTarget},
		{"zero path", func() error {
			_, err := bind.New[float64](testRig(), field.Path{}, subject, hub)
			return err
		}, bind.ErrZeroPath},
		{"nil source", func() error {
			_, err := bind.New[float64](testRig(), readingPath(), nil, hub)
			return err
		}, bind.ErrNilSource},
		{"nil changes", func() error {
			_, err := bind.New[float64](testRig(), readingPath(), subject, nil)
			return err
		}, bind.ErrNilChanges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.run(), tt.want)
		})
	}
}

func TestBinding_WritesValuesInOrder(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	require.True(t, b.Bound())

	g := r.Probe.Gauge.(*gauge)
	for _, v := range []float64{1, 2, 3} {
		subject.Emit(v)
		assert.Equal(t, v, g.Reading)
	}

	stats := b.Stats()
	assert.Equal(t, uint64(3), stats.Writes)
	assert.Equal(t, uint64(1), stats.Rebinds)
}

func TestNew_BrokenLinkStartsUnbound(t *testing.T) {
	r := &rig{Probe: nil}
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err, "a broken link is routine, not a construction error")
	defer b.Close()

	assert.False(t, b.Bound())

	// Values emitted while unbound are dropped, not replayed later.
	subject.Emit(1)
	subject.Emit(2)
	assert.Equal(t, uint64(0), b.Stats().Writes)

	r.Probe = &probe{Gauge: &gauge{}}
	hub.Notify(r, "Probe")

	require.True(t, b.Bound())
	subject.Emit(42)
	assert.Equal(t, 42.0, r.Probe.Gauge.(*gauge).Reading)
	assert.Equal(t, uint64(1), b.Stats().Writes)
}

func TestBinding_RehomesOnSwappedIntermediate(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	old := r.Probe
	subject.Emit(1)
	assert.Equal(t, 1.0, old.Gauge.(*gauge).Reading)

	// The rig swaps its probe; after the notification the binding must write
	// into the new probe's gauge, not the stale one.
	r.Probe = &probe{Gauge: &gauge{}}
	hub.Notify(r, "Probe")

	subject.Emit(2)
	assert.Equal(t, 2.0, r.Probe.Gauge.(*gauge).Reading)
	assert.Equal(t, 1.0, old.Gauge.(*gauge).Reading, "stale gauge must not receive writes")
}

func TestBinding_DetachPausesWrites(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	subject.Emit(1)

	r.Probe = nil
	hub.Notify(r, "Probe")
	assert.False(t, b.Bound())

	// Writes pause silently while the path is broken; no error surfaces.
	subject.Emit(2)
	subject.Emit(3)
	assert.Equal(t, uint64(1), b.Stats().Writes)

	r.Probe = &probe{Gauge: &gauge{}}
	hub.Notify(r, "Probe")
	subject.Emit(4)

	assert.Equal(t, 4.0, r.Probe.Gauge.(*gauge).Reading)
	assert.Equal(t, uint64(2), b.Stats().Writes)
}

// journalGauge records every write so tests can assert nothing is delivered
// twice across rebinds.
type journalGauge struct {
	mu     sync.Mutex
	values []float64
}

func (j *journalGauge) Field(name string) (any, error) {
	if name != "Reading" {
		return nil, field.ErrFieldNotFound
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.values) == 0 {
		return 0.0, nil
	}
	return j.values[len(j.values)-1], nil
}

func (j *journalGauge) SetField(name string, value any) error {
	if name != "Reading" {
		return field.ErrFieldNotFound
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.values = append(j.values, value.(float64))
	return nil
}

func (j *journalGauge) snapshot() []float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]float64(nil), j.values...)
}

func TestBinding_RebindsNeverDoubleDeliver(t *testing.T) {
	journal := &journalGauge{}
	r := &rig{Probe: &probe{Gauge: journal}}
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	// Each notification swaps the write subscription; stale ones must be gone.
	for range 5 {
		hub.Notify(r, "Probe")
	}
	subject.Emit(7)

	assert.Equal(t, []float64{7}, journal.snapshot())
	assert.Equal(t, uint64(6), b.Stats().Rebinds)
}

// countingStream counts upstream subscriptions to prove the binding
// multicasts instead of re-subscribing per rebind.
type countingStream struct {
	subject    *stream.Subject[float64]
	subscribes int
}

func (c *countingStream) Subscribe(fn func(float64)) stream.Subscription {
	c.subscribes++
	return c.subject.Subscribe(fn)
}

func TestBinding_SingleUpstreamSubscription(t *testing.T) {
	r := testRig()
	src := &countingStream{subject: stream.NewSubject[float64]()}
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), src, hub)
	require.NoError(t, err)

	for range 10 {
		hub.Notify(r, "Probe")
	}
	assert.Equal(t, 1, src.subscribes, "rebinds must not re-trigger upstream subscription")

	b.Close()
	assert.Equal(t, 0, src.subject.Len(), "closing the binding releases its upstream subscription")
}

func TestNew_StructuralMismatchFails(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	_, err := bind.New[float64](r, field.Parse("Probe.Bogus.Reading"), subject, hub)
	require.ErrorIs(t, err, field.ErrFieldNotFound)

	assert.Equal(t, 0, hub.Len(), "a failed construction must release its notification hook")
}

func TestBinding_RebindStructuralErrorRoutesToErrorFunc(t *testing.T) {
	r := &rig{Probe: &probe{Gauge: &shell{Inner: &gauge{}}}}
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	var got error
	b, err := bind.New[float64](r, field.Parse("Probe.Gauge.Inner.Reading"), subject, hub,
		bind.WithErrorFunc(func(err error) { got = err }))
	require.NoError(t, err)
	defer b.Close()

	// The Gauge link now holds an object of the wrong shape: not a broken
	// link but a programming error, and it must not be silent.
	r.Probe.Gauge = brick{}
	hub.Notify(r, "Probe.Gauge")

	require.ErrorIs(t, got, field.ErrFieldNotFound)
	assert.False(t, b.Bound())
}

func TestBinding_WriteStructuralErrorRoutesToErrorFunc(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	var got error
	b, err := bind.New[float64](r, readingPath(), subject, hub,
		bind.WithErrorFunc(func(err error) { got = err }))
	require.NoError(t, err)
	defer b.Close()

	// The owner walk stops above the leaf, so a leaf-level mismatch only
	// surfaces when a value arrives.
	r.Probe.Gauge = brick{}
	hub.Notify(r, "Probe.Gauge")
	require.True(t, b.Bound())

	subject.Emit(5)
	require.ErrorIs(t, got, field.ErrFieldNotFound)
	assert.Equal(t, uint64(0), b.Stats().Writes)
}

func TestBinding_DefaultErrorFuncPanics(t *testing.T) {
	r := &rig{Probe: &probe{Gauge: &shell{Inner: &gauge{}}}}
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, field.Parse("Probe.Gauge.Inner.Reading"), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	r.Probe.Gauge = brick{}
	require.Panics(t, func() {
		hub.Notify(r, "Probe.Gauge")
	})
}

func TestBinding_CloseIsIdempotent(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)

	subject.Emit(1)
	b.Close()
	b.Close()

	assert.False(t, b.Bound())
	assert.Equal(t, 0, hub.Len(), "notification hook must be released")

	// Neither values nor notifications reach a closed binding.
	subject.Emit(2)
	hub.Notify(r, "Probe")
	subject.Emit(3)

	assert.Equal(t, 1.0, r.Probe.Gauge.(*gauge).Reading)
	assert.Equal(t, uint64(1), b.Stats().Rebinds)
}

func TestBinding_ID(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](r, readingPath(), subject, hub)
	require.NoError(t, err)
	defer b.Close()

	_, err = uuid.Parse(b.ID())
	assert.NoError(t, err, "default id is a generated UUID")

	named, err := bind.New[float64](r, readingPath(), subject, hub, bind.WithID("intake-gauge"))
	require.NoError(t, err)
	defer named.Close()

	assert.Equal(t, "intake-gauge", named.ID())
	assert.True(t, named.Path().Equal(readingPath()))
}

func TestBinding_WithLogger(t *testing.T) {
	r := testRig()
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := bind.New[float64](r, readingPath(), subject, hub,
		bind.WithLogger(log), bind.WithID("logged"))
	require.NoError(t, err)

	r.Probe = nil
	hub.Notify(r, "Probe")
	b.Close()

	out := buf.String()
	assert.Contains(t, out, "binding bound")
	assert.Contains(t, out, "binding unbound")
	assert.Contains(t, out, "binding closed")
	assert.Contains(t, out, "binding=logged")
	assert.Contains(t, out, "path=Probe.Gauge.Reading")
}

func TestBinding_WithResolver(t *testing.T) {
	reg := field.NewRegistry()
	journal := &journalGauge{}

	// A custom accessor that routes the Probe link of plain maps.
	require.NoError(t, reg.Register(reflect.TypeFor[map[string]any](), mapProbeAccessor{journal: journal}))

	root := map[string]any{}
	subject := stream.NewSubject[float64]()
	hub := notify.NewHub()
	defer hub.Close()

	b, err := bind.New[float64](root, field.Parse("Probe.Reading"), subject, hub,
		bind.WithResolver(field.NewResolver(reg)))
	require.NoError(t, err)
	defer b.Close()

	subject.Emit(3.5)
	assert.Equal(t, []float64{3.5}, journal.snapshot())
}

// mapProbeAccessor resolves any name on a map root to the shared journal.
type mapProbeAccessor struct {
	journal *journalGauge
}

func (a mapProbeAccessor) Get(any, string) (any, error) {
	return a.journal, nil
}

func (a mapProbeAccessor) Set(any, string, any) error {
	return field.ErrFieldNotWritable
}

func TestBinding_ConcurrentNotificationsKeepSingleWriter(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		journal := &journalGauge{}
		r := &rig{Probe: &probe{Gauge: journal}}
		subject := stream.NewSubject[float64]()
		hub := notify.NewHub()
		defer hub.Close()

		b, err := bind.New[float64](r, readingPath(), subject, hub)
		require.NoError(t, err)
		defer b.Close()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 25 {
					hub.Notify(r, "Probe")
				}
			}()
		}
		for i := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for k := range 25 {
					subject.Emit(float64(i*1000 + k))
				}
			}()
		}
		wg.Wait()

		// Emissions racing a rebind may be dropped while no write
		// subscription exists, but none may ever land twice.
		seen := map[float64]int{}
		for _, v := range journal.snapshot() {
			seen[v]++
			assert.Equal(t, 1, seen[v], "value %v delivered twice", v)
		}

		// The binding is still live and writes exactly once.
		before := len(journal.snapshot())
		subject.Emit(-1)
		assert.Len(t, journal.snapshot(), before+1)
	})
}
