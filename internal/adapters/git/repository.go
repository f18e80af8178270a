package git

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionControl = (*Repository)(nil)

// Repository implements ports.VersionControl in-process using go-git.
// It needs no git binary, at the cost of reading the whole index and worktree status per query.
type Repository struct {
	logger ports.Logger
}

// NewRepository creates a go-git backed Repository.
func NewRepository(logger ports.Logger) *Repository {
	return &Repository{logger: logger}
}

// ListTracked returns index entries under dir matching pattern.
func (r *Repository) ListTracked(ctx context.Context, dir, pattern string) ([]string, error) {
	repo, prefix, err := r.open(dir)
	if err != nil {
		return nil, err
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "failed to read git index"), "dir", dir)
	}

	var files []string
	for _, entry := range idx.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrVersionControlUnavailable, ctxErr), "version control query did not finish")
		}
		if rel, ok := underPrefix(entry.Name, prefix); ok && matchPathspec(pattern, rel) {
			files = append(files, filepath.FromSlash(rel))
		}
	}

	return compactSorted(files), nil
}

// ListUntracked returns untracked, non-ignored worktree files under dir matching pattern.
func (r *Repository) ListUntracked(ctx context.Context, dir, pattern string) ([]string, error) {
	repo, prefix, err := r.open(dir)
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "failed to open worktree"), "dir", dir)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "failed to compute worktree status"), "dir", dir)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrVersionControlUnavailable, ctxErr), "version control query did not finish")
	}

	var files []string
	for name, fileStatus := range status {
		if fileStatus.Worktree != gogit.Untracked {
			continue
		}
		if rel, ok := underPrefix(name, prefix); ok && matchPathspec(pattern, rel) {
			files = append(files, filepath.FromSlash(rel))
		}
	}

	return compactSorted(files), nil
}

// open finds the repository containing dir and returns dir's slash-separated prefix
// relative to the worktree root ("" for the root itself).
func (r *Repository) open(dir string) (*gogit.Repository, string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "failed to open git repository"), "dir", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "repository has no worktree"), "dir", dir)
	}

	prefix, err := relativePrefix(wt.Filesystem.Root(), dir)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "directory is outside the worktree"), "dir", dir)
	}

	r.logger.Debug("opened git repository", "root", wt.Filesystem.Root(), "prefix", prefix)
	return repo, prefix, nil
}

func relativePrefix(root, dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, evalErr := filepath.EvalSymlinks(absDir); evalErr == nil {
		absDir = resolved
	}
	if resolved, evalErr := filepath.EvalSymlinks(root); evalErr == nil {
		root = resolved
	}

	rel, err := filepath.Rel(root, absDir)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", zerr.New("path escapes worktree root")
	}
	if rel == "." {
		return "", nil
	}
	return rel + "/", nil
}

func underPrefix(name, prefix string) (string, bool) {
	if prefix == "" {
		return name, true
	}
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return strings.TrimPrefix(name, prefix), true
}

// matchPathspec approximates git's glob pathspec, where a slash-free pattern such as
// "*.py" matches at any depth.
func matchPathspec(pattern, rel string) bool {
	if !strings.Contains(pattern, "/") {
		ok, err := doublestar.Match(pattern, path.Base(rel))
		return err == nil && ok
	}
	ok, err := doublestar.Match(pattern, rel)
	return err == nil && ok
}

func compactSorted(files []string) []string {
	slices.Sort(files)
	return slices.Compact(files)
}
