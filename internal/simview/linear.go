package simview

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"go.trai.ch/tether/internal/sim"
)

// Linear renders scenario progress as chronological lines, one per step.
// It is the view for CI and non-interactive environments.
type Linear struct {
	w      io.Writer
	output *termenv.Output
	name   string
}

// NewLinear creates a Linear view writing to w.
func NewLinear(w io.Writer) *Linear {
	if w == nil {
		w = os.Stderr
	}
	return &Linear{
		w:      w,
		output: termenv.NewOutput(w, termenv.WithProfile(linearProfile())),
	}
}

// linearProfile returns the color profile for CI environments.
func linearProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Begin prints the run header.
func (l *Linear) Begin(name string, total int) {
	l.name = name
	_, _ = fmt.Fprintf(l.w, "Running scenario %q (%d steps)\n", name, total)
}

// OnStep prints one line per executed step.
func (l *Linear) OnStep(ev sim.Event) {
	prefix := l.output.String(fmt.Sprintf("[%d/%d]", ev.Index, ev.Total)).Faint().String()

	if ev.Err != nil {
		symbol := l.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(l.w, "%s %s %s: %v\n", prefix, symbol, ev.Detail, ev.Err)
		return
	}
	symbol := l.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(l.w, "%s %s %s\n", prefix, symbol, ev.Detail)
}

// End prints the run result.
func (l *Linear) End(err error) error {
	if err != nil {
		symbol := l.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, wErr := fmt.Fprintf(l.w, "%s scenario %q failed\n", symbol, l.name)
		return wErr
	}
	symbol := l.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, wErr := fmt.Fprintf(l.w, "%s scenario %q passed\n", symbol, l.name)
	return wErr
}
