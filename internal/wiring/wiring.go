// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sieve/internal/adapters/config"
	_ "go.trai.ch/sieve/internal/adapters/fs"
	_ "go.trai.ch/sieve/internal/adapters/git"
	_ "go.trai.ch/sieve/internal/adapters/logger"
	_ "go.trai.ch/sieve/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/sieve/internal/app"
	_ "go.trai.ch/sieve/internal/engine/targets"
)
