package ports

import "go.trai.ch/sieve/internal/core/domain"

// TargetResolver turns raw target strings into resolved paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type TargetResolver interface {
	// ResolveTargets normalizes targets lexically. It never touches the filesystem.
	ResolveTargets(targets []string) domain.FileSet
}
