package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixdep/internal/core/ports"
)

// NodeID is the unique identifier for the rules loader Graft node.
const NodeID graft.ID = "adapter.rules_loader"

func init() {
	graft.Register(graft.Node[ports.RulesLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RulesLoader, error) {
			return NewLoader(), nil
		},
	})
}
