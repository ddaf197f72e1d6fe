package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/tether/internal/sim"
	"go.trai.ch/tether/internal/simlog"
	"go.trai.ch/tether/internal/simview"
)

const (
	// AppNodeID is the unique identifier for the main App node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the adapters the CLI entry point needs
// directly.
type Components struct {
	App    *App
	Logger *simlog.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			simlog.NodeID,
			sim.NodeID,
			simview.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[*simlog.Logger](ctx)
			if err != nil {
				return nil, err
			}

			sims, err := graft.Dep[*sim.Factory](ctx)
			if err != nil {
				return nil, err
			}

			views, err := graft.Dep[*simview.Factory](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, sims, views), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			simlog.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*simlog.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
