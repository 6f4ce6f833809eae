package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log := New()
			if cfg.LogFile != "" {
				f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", cfg.LogFile)
				}
				log.AttachFile(f)
			}
			return log, nil
		},
	})
}
