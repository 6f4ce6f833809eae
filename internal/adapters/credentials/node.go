package credentials

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/core/ports"
)

// NodeID is the unique identifier for the credentials Graft node.
const NodeID graft.ID = "adapter.credentials"

func init() {
	graft.Register(graft.Node[ports.CredentialSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CredentialSource, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			opts := []Option{WithPrompt(os.Stdin, os.Stderr)}
			if cfg.CredentialsFile != "" {
				opts = append(opts, WithPropertiesFile(cfg.CredentialsFile))
			}
			return New(opts...), nil
		},
	})
}
