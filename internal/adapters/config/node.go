package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

// EnvConfigPath overrides the discovered config path when set.
const EnvConfigPath = "SYMEX_CONFIG"

func init() {
	graft.Register(graft.Node[Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Config, error) {
			return Load(Discover(os.Getenv(EnvConfigPath)))
		},
	})
}
