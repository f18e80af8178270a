package ports

import "go.trai.ch/sieve/internal/core/domain"

// PathInspector classifies target paths at resolution time.
//
//go:generate go run go.uber.org/mock/mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type PathInspector interface {
	// Kind reports whether path is missing, a file or a directory.
	// A missing path is not an error.
	Kind(path string) (domain.PathKind, error)
}
