package simview

import (
	"context"
	"io"

	"github.com/grindlemire/graft"

	"go.trai.ch/tether/internal/sim"
)

// Factory builds views for a resolved mode.
type Factory struct{}

// NewFactory creates a view factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns the view for the given mode, writing to w.
// ModeAuto is resolved through Detect.
func (f *Factory) New(mode Mode, w io.Writer) sim.View {
	if mode == ModeAuto {
		mode = Detect()
	}
	if mode == ModeTape {
		return NewTape(w)
	}
	return NewLinear(w)
}

// NodeID is the unique identifier for the view factory node.
const NodeID graft.ID = "adapter.simview"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}
