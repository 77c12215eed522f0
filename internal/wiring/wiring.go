// Package wiring registers all Graft nodes for the application and bundles
// the components the entry point needs.
package wiring

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixdep/internal/adapters/logger"
	"go.trai.ch/fixdep/internal/app"
	"go.trai.ch/fixdep/internal/core/ports"
	"go.trai.ch/fixdep/internal/engine/batch"

	// Register adapter nodes.
	_ "go.trai.ch/fixdep/internal/adapters/config"
	_ "go.trai.ch/fixdep/internal/adapters/fs"
)

// ComponentsNodeID is the unique identifier for the components Graft node.
const ComponentsNodeID graft.ID = "wiring.components"

// Components bundles the application objects the CLI needs.
type Components struct {
	App    *app.App
	Batch  *batch.Runner
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			app.AppNodeID,
			batch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*app.App](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*batch.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Batch: runner, Logger: log}, nil
		},
	})
}
