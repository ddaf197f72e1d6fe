package simview

import (
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.trai.ch/tether/internal/sim"
)

// Tape renders scenario progress on a progrock tape: one vertex per executed
// step, rendered to the terminal when the run ends.
type Tape struct {
	w    io.Writer
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// NewTape creates a Tape view rendering to w.
func NewTape(w io.Writer) *Tape {
	if w == nil {
		w = os.Stderr
	}
	tape := progrock.NewTape()
	return &Tape{
		w:    w,
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Begin is a no-op; vertices are created per step.
func (t *Tape) Begin(string, int) {}

// OnStep records one vertex for the executed step.
func (t *Tape) OnStep(ev sim.Event) {
	name := fmt.Sprintf("%d/%d %s", ev.Index, ev.Total, ev.Detail)
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	if ev.Err != nil {
		_, _ = fmt.Fprintf(v.Stderr(), "%v\n", ev.Err)
	}
	v.Done(ev.Err)
}

// End closes the tape and renders it once.
func (t *Tape) End(error) error {
	if err := t.tape.Close(); err != nil {
		return err
	}
	return t.tape.Render(t.w, progrock.DefaultUI())
}
