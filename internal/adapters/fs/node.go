package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file finder Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the target resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// InspectorNodeID is the unique identifier for the path inspector Graft node.
	InspectorNodeID graft.ID = "adapter.fs.inspector"
)

func init() {
	graft.Register(graft.Node[ports.FileFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.TargetResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.PathInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathInspector, error) {
			return NewInspector(), nil
		},
	})
}
