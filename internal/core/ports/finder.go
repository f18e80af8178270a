package ports

import "context"

// FileFinder is the filesystem walk capability.
//
//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type FileFinder interface {
	// FindFiles returns the regular files below dir whose base name matches pattern.
	// Paths are joined onto dir, so a relative dir yields paths relative to the invocation root.
	// Entries that disappear during the walk are skipped.
	FindFiles(ctx context.Context, dir, pattern string) ([]string, error)
}
