package git

import (
	"time"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionControlProvider = (*Provider)(nil)

// Provider builds the version-control backend named in project settings.
type Provider struct {
	logger ports.Logger
}

// NewProvider creates a new Provider.
func NewProvider(logger ports.Logger) *Provider {
	return &Provider{logger: logger}
}

// VersionControl returns the CLI backend for "" or "cli" and the go-git backend for "go-git".
func (p *Provider) VersionControl(backend string, timeout time.Duration) (ports.VersionControl, error) {
	switch backend {
	case "", domain.BackendCLI:
		return NewCLI(p.logger, timeout), nil
	case domain.BackendGoGit:
		return NewRepository(p.logger), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "unsupported vcs backend"), "backend", backend)
	}
}
