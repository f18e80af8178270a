// Package targets resolves analysis targets into per-language file sets.
package targets

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options is the global configuration of one Manager.
type Options struct {
	// Targets are the raw file or directory paths to analyze.
	Targets []string
	// Includes restricts expanded directory contents to matching paths.
	Includes []string
	// Excludes removes matching paths from expanded directory contents.
	Excludes []string
	// VisibleToGitOnly expands directories through version control instead of a plain walk.
	VisibleToGitOnly bool
}

// Manager resolves targets into the files of a language and caches the result per language.
// It is safe for concurrent use.
type Manager struct {
	opts      Options
	resolver  ports.TargetResolver
	plain     ports.FileLister
	vcs       ports.FileLister
	inspector ports.PathInspector
	logger    ports.Logger
	telemetry ports.Telemetry

	mu    sync.Mutex
	cache map[string]domain.FileSet
	group singleflight.Group
}

// New creates a Manager. vcs may be nil when opts.VisibleToGitOnly is false.
func New(
	opts Options,
	resolver ports.TargetResolver,
	plain, vcs ports.FileLister,
	inspector ports.PathInspector,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Manager {
	return &Manager{
		opts:      opts,
		resolver:  resolver,
		plain:     plain,
		vcs:       vcs,
		inspector: inspector,
		logger:    logger,
		telemetry: telemetry,
		cache:     make(map[string]domain.FileSet),
	}
}

// FilteredFiles returns the files of lang after the global include and exclude
// filters, with explicitly named files added back unfiltered.
// The first successful result per language is cached and returned as-is afterwards,
// so the returned set is shared and must be treated as read-only. GetFiles returns
// a fresh slice for callers that need their own copy.
//
// Concurrent first calls for one language share a single resolution. That
// resolution ignores the cancellation of whichever caller started it; each caller
// still stops waiting and returns its own ctx error when its ctx is done.
func (m *Manager) FilteredFiles(ctx context.Context, lang string) (domain.FileSet, error) {
	canonical, err := domain.CanonicalLanguage(lang)
	if err != nil {
		return nil, err
	}

	if set, ok := m.cached(canonical); ok {
		_, vertex := m.telemetry.Record(ctx, vertexName(canonical))
		vertex.Cached()
		vertex.Complete(nil)
		return set, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := m.group.DoChan(canonical, func() (any, error) {
		if set, ok := m.cached(canonical); ok {
			return set, nil
		}

		set, err := m.resolve(shared, canonical)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.cache[canonical] = set
		m.mu.Unlock()

		return set, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	set, ok := res.Val.(domain.FileSet)
	if !ok {
		return nil, zerr.With(zerr.New("unexpected cached value"), "language", canonical)
	}
	return set, nil
}

// GetFiles applies includes then excludes on top of FilteredFiles and returns
// the paths sorted. The slice is owned by the caller.
func (m *Manager) GetFiles(ctx context.Context, lang string, includes, excludes []string) ([]string, error) {
	set, err := m.FilteredFiles(ctx, lang)
	if err != nil {
		return nil, err
	}

	set = domain.FilterIncludes(set, includes)
	set = domain.FilterExcludes(set, excludes)
	return set.Sorted(), nil
}

func (m *Manager) cached(lang string) (domain.FileSet, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.cache[lang]
	return set, ok
}

func (m *Manager) resolve(ctx context.Context, lang string) (_ domain.FileSet, err error) {
	exts, err := domain.Extensions(lang)
	if err != nil {
		return nil, err
	}

	ctx, vertex := m.telemetry.Record(ctx, vertexName(lang))
	defer func() { vertex.Complete(err) }()

	explicit, dirs, err := m.partition(m.resolver.ResolveTargets(m.opts.Targets))
	if err != nil {
		return nil, err
	}

	expanded, err := m.expand(ctx, dirs, exts)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterIncludes(expanded, m.opts.Includes)
	filtered = domain.FilterExcludes(filtered, m.opts.Excludes)
	result := filtered.Union(explicit)

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d files (%d expanded, %d explicit)", result.Len(), expanded.Len(), explicit.Len()))
	_, _ = fmt.Fprintf(vertex.Stdout(), "digest %s\n", result.Digest())

	return result, nil
}

// partition splits resolved paths into explicit files and directories.
// Paths that do not exist are dropped.
func (m *Manager) partition(resolved domain.FileSet) (domain.FileSet, []string, error) {
	explicit := domain.NewFileSet()
	var dirs []string

	for _, path := range resolved.Sorted() {
		kind, err := m.inspector.Kind(path)
		if err != nil {
			return nil, nil, err
		}

		switch kind {
		case domain.PathFile:
			explicit.Add(path)
		case domain.PathDir:
			dirs = append(dirs, path)
		case domain.PathMissing:
			m.logger.Debug("dropping missing target", "path", path)
		}
	}

	return explicit, dirs, nil
}

// expand lists every directory for every extension with bounded concurrency.
func (m *Manager) expand(ctx context.Context, dirs, exts []string) (domain.FileSet, error) {
	lister := m.plain
	if m.opts.VisibleToGitOnly {
		lister = m.vcs
	}
	if lister == nil {
		return nil, zerr.Wrap(domain.ErrVersionControlUnavailable, "no version control backend configured")
	}

	expanded := domain.NewFileSet()
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, dir := range dirs {
		for _, ext := range exts {
			g.Go(func() error {
				files, err := lister.ListFiles(groupCtx, dir, ext)
				if err != nil {
					return err
				}

				mu.Lock()
				for path := range files {
					expanded.Add(path)
				}
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return expanded, nil
}

func vertexName(lang string) string {
	return "resolve " + lang
}
