package ports

import (
	"context"
	"time"
)

// VersionControl is the version-control capability used to restrict listings to visible files.
//
// Both queries return paths relative to dir. An empty result is valid and means no matches;
// failures are reported as errors, never as an empty result.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_control.go -destination=mocks/mock_version_control.go -package=mocks
type VersionControl interface {
	// ListTracked returns tracked files under dir matching pattern.
	ListTracked(ctx context.Context, dir, pattern string) ([]string, error)
	// ListUntracked returns untracked files under dir matching pattern that are not ignored.
	ListUntracked(ctx context.Context, dir, pattern string) ([]string, error)
}

// VersionControlProvider selects a VersionControl backend from project settings.
type VersionControlProvider interface {
	// VersionControl returns the backend named by backend, bounding each query by timeout.
	VersionControl(backend string, timeout time.Duration) (VersionControl, error)
}
