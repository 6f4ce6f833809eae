package app

import (
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/core/ports"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
	Config config.Config
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, cfg config.Config) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Config: cfg,
	}
}
