// Package fs provides file system adapters for walking, classifying and resolving target paths.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileFinder = (*Walker)(nil)

// Walker provides file walking functionality.
//
// Symbolic links are never followed, and a symlink to a file is not reported as a file.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// FindFiles returns every regular file below dir whose base name matches pattern.
func (w *Walker) FindFiles(ctx context.Context, dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "invalid file name pattern"), "pattern", pattern)
	}

	var files []string
	for path := range w.WalkFiles(ctx, dir) {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			files = append(files, path)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrWalkFailed, err), "walk interrupted"), "dir", dir)
	}
	return files, nil
}

// WalkFiles yields all regular files below root, skipping version-control metadata directories.
// Yielded paths are joined onto root.
// Entries that cannot be read, including ones removed while walking, are skipped.
func (w *Walker) WalkFiles(ctx context.Context, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return filepath.SkipAll
			}

			if err != nil {
				// Best effort: an unreadable or vanished directory is pruned, a file is dropped.
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && isMetadataDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isMetadataDir(name string) bool {
	return name == ".git" || name == ".jj"
}
