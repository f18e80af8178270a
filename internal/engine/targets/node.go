package targets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/core/ports"
)

// NodeID is the unique identifier for the targets factory Graft node.
const NodeID graft.ID = "engine.targets"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			fs.InspectorNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			resolver, err := graft.Dep[ports.TargetResolver](ctx)
			if err != nil {
				return nil, err
			}

			finder, err := graft.Dep[ports.FileFinder](ctx)
			if err != nil {
				return nil, err
			}

			inspector, err := graft.Dep[ports.PathInspector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(resolver, finder, inspector, log, telemetry), nil
		},
	})
}
