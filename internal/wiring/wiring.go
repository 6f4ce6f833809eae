// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/symex/internal/adapters/config"
	_ "go.trai.ch/symex/internal/adapters/credentials"
	_ "go.trai.ch/symex/internal/adapters/logger"
	_ "go.trai.ch/symex/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/symex/internal/app"
)
