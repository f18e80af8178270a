package ports

import "go.trai.ch/sieve/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project settings from the given working directory.
	// A missing project file yields domain.DefaultSettings.
	Load(cwd string) (domain.Settings, error)
}
