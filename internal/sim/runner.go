// Package sim drives a binding through a scripted scenario: a demo object
// rig, a source stream and a change hub, exercised by an ordered list of
// emit/swap/notify steps with inline expectations. It exists so binding
// behavior can be demonstrated and checked end to end from the CLI without a
// surrounding application.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/tether/bind"
	"go.trai.ch/tether/field"
	"go.trai.ch/tether/notify"
	"go.trai.ch/tether/stream"
	"go.trai.ch/zerr"
)

// Runner executes one scenario against a fresh rig. It owns the rig, the
// source subject, the change hub and the binding for the duration of the run.
type Runner struct {
	scenario *Scenario
	log      *slog.Logger

	rig     *Rig
	subject *stream.Subject[float64]
	hub     *notify.Hub
	binding *bind.Binding[float64]
	path    field.Path

	mu      sync.Mutex
	bindErr error // first structural error reported by the binding
}

// NewRunner creates a Runner for the given scenario. A nil logger discards.
func NewRunner(sc *Scenario, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		scenario: sc,
		log:      log,
		rig:      NewRig(sc.Bind.Detached),
	}
}

// Rig returns the object graph the scenario runs against, for final dumps.
func (r *Runner) Rig() *Rig {
	return r.rig
}

// Run executes the scenario steps in order, reporting each to the view
// through an events channel. The step executor and the view run in an
// errgroup; the first failed step or expectation stops the run.
func (r *Runner) Run(ctx context.Context, view View) error {
	r.subject = stream.NewSubject[float64]()
	r.hub = notify.NewHub()
	defer r.subject.Close()
	defer r.hub.Close()

	r.path = field.Parse(r.scenario.Bind.Path)
	b, err := bind.New[float64](r.rig, r.path, r.subject, r.hub,
		bind.WithLogger(r.log),
		bind.WithErrorFunc(r.captureBindErr),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create binding"), "path", r.scenario.Bind.Path)
	}
	r.binding = b
	defer b.Close()

	name := r.scenario.Name
	if name == "" {
		name = r.scenario.Bind.Path
	}
	view.Begin(name, len(r.scenario.Steps))

	events := make(chan Event)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for ev := range events {
			view.OnStep(ev)
		}
		return nil
	})

	g.Go(func() error {
		defer close(events)
		for i, step := range r.scenario.Steps {
			if err := ctx.Err(); err != nil {
				return err
			}

			action, detail, err := r.apply(step)
			if err == nil {
				err = r.takeBindErr()
			}
			ev := Event{
				Index:  i + 1,
				Total:  len(r.scenario.Steps),
				Action: action,
				Detail: detail,
				Err:    err,
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err != nil {
				return zerr.With(err, "step", i+1)
			}
		}
		return nil
	})

	runErr := g.Wait()
	if endErr := view.End(runErr); endErr != nil && runErr == nil {
		runErr = endErr
	}
	return runErr
}

// apply executes one step and describes it.
func (r *Runner) apply(step StepDTO) (action, detail string, err error) {
	switch {
	case step.Emit != nil:
		r.subject.Emit(*step.Emit)
		return "emit", fmt.Sprintf("emit %v", *step.Emit), nil

	case step.Swap != "":
		path, err := r.rig.SwapLink(step.Swap)
		return "swap", "swap " + path, err

	case step.Detach != "":
		path, err := r.rig.DetachLink(step.Detach)
		return "detach", "detach " + path, err

	case step.Attach != "":
		path, err := r.rig.SwapLink(step.Attach)
		return "attach", "attach " + path, err

	case step.Notify != "":
		r.hub.Notify(r.rig, step.Notify)
		return "notify", "notify " + step.Notify, nil

	case step.Expect != nil:
		return "expect", r.describeExpect(step.Expect), r.check(step.Expect)

	default:
		return "", "", ErrUnknownStep
	}
}

// check asserts the expectation against the current rig and binding state.
func (r *Runner) check(e *ExpectDTO) error {
	if e.Unbound != nil {
		if got := !r.binding.Bound(); got != *e.Unbound {
			return zerr.With(zerr.Wrap(ErrExpectationFailed, "binding state"), "want_unbound", *e.Unbound)
		}
	}
	if e.Writes != nil {
		if got := r.binding.Stats().Writes; got != *e.Writes {
			return zerr.With(zerr.With(zerr.Wrap(ErrExpectationFailed, "write count"), "want", *e.Writes), "got", got)
		}
	}
	if e.Value != nil {
		v, err := field.Resolve(r.rig, r.path)
		if err != nil {
			if errors.Is(err, field.ErrNotResolvable) {
				return zerr.With(zerr.Wrap(ErrExpectationFailed, "leaf is unreachable"), "want", *e.Value)
			}
			return err
		}
		got, ok := v.(float64)
		if !ok || got != *e.Value {
			return zerr.With(zerr.With(zerr.Wrap(ErrExpectationFailed, "leaf value"), "want", *e.Value), "got", v)
		}
	}
	return nil
}

func (r *Runner) describeExpect(e *ExpectDTO) string {
	switch {
	case e.Value != nil:
		return fmt.Sprintf("expect value %v", *e.Value)
	case e.Unbound != nil:
		return fmt.Sprintf("expect unbound=%v", *e.Unbound)
	default:
		return fmt.Sprintf("expect writes=%v", *e.Writes)
	}
}

// captureBindErr keeps the first structural error the binding reports so the
// step that provoked it fails instead of panicking inside a callback.
func (r *Runner) captureBindErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindErr == nil {
		r.bindErr = err
	}
}

func (r *Runner) takeBindErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.bindErr
	r.bindErr = nil
	return err
}
