package batch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixdep/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixdep/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixdep/internal/app"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixdep/internal/core/ports"
)

// NodeID is the unique identifier for the batch runner Graft node.
const NodeID graft.ID = "engine.batch"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			app.AppNodeID,
			fs.ReaderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			fixer, err := graft.Dep[*app.App](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(fixer, reader, log), nil
		},
	})
}
