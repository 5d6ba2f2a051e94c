package checks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/config"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/fs"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/shell"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/results"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checks"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			results.NodeID,
			fingerprint.NodeID,
			fs.WalkerNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			res, err := graft.Dep[*results.Cache](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(res, fp, walker, runner, log, tracer, Config{
				Root:           cfg.Root,
				Excludes:       cfg.Excludes,
				CompileCommand: cfg.Commands.Compile,
				StyleCommand:   cfg.Commands.Style,
				TestCommand:    cfg.Commands.Test,
			}), nil
		},
	})
}
