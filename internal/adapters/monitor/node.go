package monitor

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/adapters/store"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the monitor Graft node.
const NodeID graft.ID = "adapter.monitor"

func init() {
	graft.Register(graft.Node[*Monitor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Monitor, error) {
			st, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(st, log, clockwork.NewRealClock(), Config{
				Interval:         cfg.Monitor.Interval.Std(),
				CleanupInterval:  cfg.Monitor.CleanupInterval.Std(),
				CleanupThreshold: cfg.Monitor.CleanupThreshold,
				SizeTarget:       cfg.Monitor.SizeTarget,
				HistoryCap:       cfg.Monitor.HistoryCap,
			}), nil
		},
	})
}
