package targets

import (
	"context"
	"path/filepath"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	_ ports.FileLister = (*PlainLister)(nil)
	_ ports.FileLister = (*VCSLister)(nil)
)

// PlainLister lists every file below a directory with a plain filesystem walk.
type PlainLister struct {
	finder ports.FileFinder
}

// NewPlainLister creates a PlainLister backed by finder.
func NewPlainLister(finder ports.FileFinder) *PlainLister {
	return &PlainLister{finder: finder}
}

// ListFiles returns the files below dir named "*.<ext>".
func (l *PlainLister) ListFiles(ctx context.Context, dir, ext string) (domain.FileSet, error) {
	files, err := l.finder.FindFiles(ctx, dir, suffixPattern(ext))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "dir", dir)
	}
	return domain.NewFileSet(files...), nil
}

// VCSLister lists only files visible to version control: tracked files plus
// untracked files that are not ignored.
type VCSLister struct {
	vcs ports.VersionControl
}

// NewVCSLister creates a VCSLister backed by vcs.
func NewVCSLister(vcs ports.VersionControl) *VCSLister {
	return &VCSLister{vcs: vcs}
}

// ListFiles queries tracked and untracked files concurrently and joins the
// results onto dir. Either query failing aborts the listing.
func (l *VCSLister) ListFiles(ctx context.Context, dir, ext string) (domain.FileSet, error) {
	pattern := suffixPattern(ext)

	var tracked, untracked []string
	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tracked, err = l.vcs.ListTracked(groupCtx, dir, pattern)
		return err
	})
	g.Go(func() error {
		var err error
		untracked, err = l.vcs.ListUntracked(groupCtx, dir, pattern)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(domain.FileSet, len(tracked)+len(untracked))
	for _, rel := range tracked {
		files.Add(filepath.Join(dir, rel))
	}
	for _, rel := range untracked {
		files.Add(filepath.Join(dir, rel))
	}
	return files, nil
}

func suffixPattern(ext string) string {
	return "*." + ext
}
