package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathInspector = (*Inspector)(nil)

// Inspector classifies paths using os.Stat.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Kind reports whether path is missing, a directory, or something else (treated as a file).
// A symlink to a directory counts as a directory.
func (i *Inspector) Kind(path string) (domain.PathKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.PathMissing, nil
		}
		return domain.PathMissing, zerr.With(zerr.Wrap(errors.Join(domain.ErrPathStatFailed, err), "failed to stat target"), "path", path)
	}

	if info.IsDir() {
		return domain.PathDir, nil
	}
	return domain.PathFile, nil
}
