// Package app implements the application layer for tether: it loads a
// scenario, picks a progress view and runs the scenario through the binding
// engine.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"go.trai.ch/tether/internal/sim"
	"go.trai.ch/tether/internal/simlog"
	"go.trai.ch/tether/internal/simview"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	log   *simlog.Logger
	sims  *sim.Factory
	views *simview.Factory

	stdout io.Writer
	stderr io.Writer
}

// RunOptions carries the CLI flags for a scenario run.
type RunOptions struct {
	// Progress selects the progress view: "auto", "on" or "off".
	Progress string
	// Dump renders the final rig state to stdout after the run.
	Dump bool
	// Verbose lowers the log level to debug, showing bind transitions.
	Verbose bool
}

// New creates a new App instance.
func New(log *simlog.Logger, sims *sim.Factory, views *simview.Factory) *App {
	return &App{
		log:    log,
		sims:   sims,
		views:  views,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the app's output streams. Used for testing.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.stdout = stdout
	a.stderr = stderr
}

// Run loads the scenario at path and executes it.
func (a *App) Run(ctx context.Context, path string, opts RunOptions) error {
	if opts.Verbose {
		a.log.SetLevel(slog.LevelDebug)
	}

	sc, err := a.sims.Load(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load scenario"), "path", path)
	}

	mode := simview.ResolveMode(simview.Detect(), opts.Progress)
	view := a.views.New(mode, a.stderr)

	runner := a.sims.Runner(sc)
	runErr := runner.Run(ctx, view)

	if opts.Dump {
		_, _ = fmt.Fprint(a.stdout, spew.Sdump(runner.Rig()))
	}

	if runErr != nil {
		return zerr.With(zerr.Wrap(runErr, "scenario execution failed"), "path", path)
	}
	return nil
}
