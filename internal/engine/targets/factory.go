package targets

import "go.trai.ch/sieve/internal/core/ports"

// Factory holds the long-lived collaborators shared by every Manager of a process.
type Factory struct {
	resolver  ports.TargetResolver
	finder    ports.FileFinder
	inspector ports.PathInspector
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewFactory creates a Factory.
func NewFactory(
	resolver ports.TargetResolver,
	finder ports.FileFinder,
	inspector ports.PathInspector,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Factory {
	return &Factory{
		resolver:  resolver,
		finder:    finder,
		inspector: inspector,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Manager creates a Manager for one resolution session. vcs may be nil when
// opts.VisibleToGitOnly is false.
func (f *Factory) Manager(opts Options, vcs ports.VersionControl) *Manager {
	var vcsLister ports.FileLister
	if vcs != nil {
		vcsLister = NewVCSLister(vcs)
	}

	return New(
		opts,
		f.resolver,
		NewPlainLister(f.finder),
		vcsLister,
		f.inspector,
		f.logger,
		f.telemetry,
	)
}
