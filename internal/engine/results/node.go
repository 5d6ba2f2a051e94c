package results

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/store"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the result cache Graft node.
const NodeID graft.ID = "engine.results"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, fingerprint.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			st, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(st, fp, log), nil
		},
	})
}
