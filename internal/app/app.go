// Package app implements the application layer for sieve.
package app

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/sieve/internal/engine/targets"
	"go.trai.ch/zerr"
)

// FilesRequest describes one target resolution invocation.
//
// Every pattern in a request is a global filter: it applies to expanded directory
// contents before the per-language cache, and explicitly named files bypass it.
// The per-call include and exclude layer of targets.Manager.GetFiles is not
// exposed here; library callers that need it use a targets.Manager directly.
type FilesRequest struct {
	// Cwd is where project configuration discovery starts.
	Cwd string
	// Targets are the file or directory paths to analyze.
	Targets []string
	// Languages are resolved in order; aliases are accepted.
	Languages []string
	// Includes and Excludes are appended to the project patterns.
	Includes []string
	Excludes []string
	// GitOnly restricts expansion to version-control visible files. It is OR-ed
	// with the project setting.
	GitOnly bool
}

// LanguageFiles is the resolution result of one requested language.
type LanguageFiles struct {
	Language string   `json:"language"`
	Files    []string `json:"files"`
	Digest   string   `json:"digest"`
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      *targets.Factory
	vcsProvider  ports.VersionControlProvider
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory *targets.Factory,
	vcsProvider ports.VersionControlProvider,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		vcsProvider:  vcsProvider,
		logger:       logger,
	}
}

// Files resolves the requested targets for every requested language.
func (a *App) Files(ctx context.Context, req FilesRequest) ([]LanguageFiles, error) {
	if len(req.Languages) == 0 {
		return nil, domain.ErrNoLanguageSpecified
	}
	for _, lang := range req.Languages {
		if _, err := domain.CanonicalLanguage(lang); err != nil {
			return nil, err
		}
	}
	if len(req.Targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}
	if err := domain.ValidatePatterns(req.Includes); err != nil {
		return nil, zerr.With(err, "flag", "include")
	}
	if err := domain.ValidatePatterns(req.Excludes); err != nil {
		return nil, zerr.With(err, "flag", "exclude")
	}

	cwd := req.Cwd
	if cwd == "" {
		cwd = "."
	}
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	opts := targets.Options{
		Targets:          req.Targets,
		Includes:         lo.Uniq(slices.Concat(settings.Includes, req.Includes)),
		Excludes:         lo.Uniq(slices.Concat(settings.Excludes, req.Excludes)),
		VisibleToGitOnly: settings.GitOnly || req.GitOnly,
	}

	var vcs ports.VersionControl
	if opts.VisibleToGitOnly {
		vcs, err = a.vcsProvider.VersionControl(settings.VCSBackend, settings.VCSTimeout)
		if err != nil {
			return nil, err
		}
	}

	manager := a.factory.Manager(opts, vcs)

	results := make([]LanguageFiles, 0, len(req.Languages))
	for _, lang := range req.Languages {
		files, err := manager.GetFiles(ctx, lang, nil, nil)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve targets"), "language", lang)
		}

		a.logger.Debug("resolved targets", "language", lang, "files", len(files))
		results = append(results, LanguageFiles{
			Language: lang,
			Files:    files,
			Digest:   domain.NewFileSet(files...).Digest(),
		})
	}

	return results, nil
}
