package app

import "go.trai.ch/sieve/internal/core/ports"

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
