package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/adapters/credentials"
	"go.trai.ch/symex/internal/adapters/logger"
	"go.trai.ch/symex/internal/adapters/telemetry"
	"go.trai.ch/symex/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			credentials.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			creds, err := graft.Dep[ports.CredentialSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, creds, log, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, cfg), nil
		},
	})
}
