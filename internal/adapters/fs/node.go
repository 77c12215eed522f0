package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixdep/internal/core/ports"
)

// ReaderNodeID is the unique identifier for the file reader Graft node.
const ReaderNodeID graft.ID = "adapter.fs.reader"

func init() {
	graft.Register(graft.Node[ports.FileReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileReader, error) {
			return NewReader(), nil
		},
	})
}
