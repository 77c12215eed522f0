package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixdep/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/fixdep/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/fixdep/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/fixdep/internal/core/ports"
)

// AppNodeID is the unique identifier for the main App Graft node.
const AppNodeID graft.ID = "app.main"

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			reader, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}

			rules, err := graft.Dep[ports.RulesLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(reader, rules, log), nil
		},
	})
}
