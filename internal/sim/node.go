package sim

import (
	"context"
	"log/slog"

	"github.com/grindlemire/graft"

	"go.trai.ch/tether/internal/simlog"
)

// Factory builds runners over a shared logger.
type Factory struct {
	log *slog.Logger
}

// NewFactory creates a Factory. A nil logger discards.
func NewFactory(log *slog.Logger) *Factory {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Factory{log: log}
}

// Load reads and validates the scenario at path.
func (f *Factory) Load(path string) (*Scenario, error) {
	return Load(path)
}

// Runner creates a Runner for the scenario.
func (f *Factory) Runner(sc *Scenario) *Runner {
	return NewRunner(sc, f.log)
}

// NodeID is the unique identifier for the scenario runner factory node.
const NodeID graft.ID = "engine.sim"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{simlog.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[*simlog.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log.Slog()), nil
		},
	})
}
