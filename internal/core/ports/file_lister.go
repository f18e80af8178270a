package ports

import (
	"context"

	"go.trai.ch/sieve/internal/core/domain"
)

// FileLister enumerates the files of one extension below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_lister.go -destination=mocks/mock_file_lister.go -package=mocks
type FileLister interface {
	// ListFiles returns every file under dir, at any depth, whose name ends in "."+ext.
	// Returned paths are rooted at dir.
	ListFiles(ctx context.Context, dir, ext string) (domain.FileSet, error)
}
