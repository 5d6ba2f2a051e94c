package resource

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/adapters/fingerprint"
	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/adapters/store"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/results"
)

// NodeID is the unique identifier for the projector Graft node.
const NodeID graft.ID = "adapter.resource"

func init() {
	graft.Register(graft.Node[*Projector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			fingerprint.NodeID,
			results.NodeID,
			fs.WalkerNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Projector, error) {
			st, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			res, err := graft.Dep[*results.Cache](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewProjector(st, fp, res, walker, clockwork.NewRealClock(), cfg.Root, cfg.Excludes), nil
		},
	})
}
