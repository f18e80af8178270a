package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/adapters/logger"
	"go.trai.ch/sieve/internal/core/ports"
)

// NodeID is the unique identifier for the version-control provider Graft node.
const NodeID graft.ID = "adapter.git.provider"

func init() {
	graft.Register(graft.Node[ports.VersionControlProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionControlProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(log), nil
		},
	})
}
