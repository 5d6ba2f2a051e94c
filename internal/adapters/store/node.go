package store

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Store, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(Config{
				ShortTTL:  cfg.TTL.Short.Std(),
				MediumTTL: cfg.TTL.Medium.Std(),
				LongTTL:   cfg.TTL.Long.Std(),
				Capacity:  cfg.Capacity,
			}, clockwork.NewRealClock()), nil
		},
	})
}
