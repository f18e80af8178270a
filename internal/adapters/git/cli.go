// Package git provides version-control adapters answering tracked and untracked file queries.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionControl = (*CLI)(nil)

// CLI implements ports.VersionControl by running the git binary.
type CLI struct {
	binary  string
	timeout time.Duration
	logger  ports.Logger
}

// NewCLI creates a CLI backend. A zero timeout disables the per-query bound.
func NewCLI(logger ports.Logger, timeout time.Duration) *CLI {
	return &CLI{
		binary:  "git",
		timeout: timeout,
		logger:  logger,
	}
}

// WithBinary overrides the git executable. Used for testing.
func (c *CLI) WithBinary(binary string) *CLI {
	c.binary = binary
	return c
}

// ListTracked runs `git ls-files -z -- <pattern>` in dir.
func (c *CLI) ListTracked(ctx context.Context, dir, pattern string) ([]string, error) {
	return c.lsFiles(ctx, dir, "ls-files", "-z", "--", pattern)
}

// ListUntracked runs `git ls-files -z --others --exclude-standard -- <pattern>` in dir.
func (c *CLI) ListUntracked(ctx context.Context, dir, pattern string) ([]string, error) {
	return c.lsFiles(ctx, dir, "ls-files", "-z", "--others", "--exclude-standard", "--", pattern)
}

func (c *CLI) lsFiles(ctx context.Context, dir string, args ...string) ([]string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // fixed git subcommand
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running version control query", "dir", dir, "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		return nil, c.classify(ctx, dir, err, stderr.String())
	}

	return parseOutput(stdout.String()), nil
}

func (c *CLI) classify(ctx context.Context, dir string, err error, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		wrapped := zerr.Wrap(errors.Join(domain.ErrVersionControlUnavailable, ctxErr), "version control query did not finish")
		return zerr.With(zerr.With(wrapped, "dir", dir), "timeout", c.timeout.String())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped := zerr.Wrap(domain.ErrNotVersionControlled, "git ls-files failed")
		wrapped = zerr.With(wrapped, "dir", dir)
		wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		if msg := strings.TrimSpace(stderr); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return wrapped
	}

	if errors.Is(err, exec.ErrNotFound) {
		wrapped := zerr.Wrap(errors.Join(domain.ErrVersionControlUnavailable, err), "git executable not found")
		return zerr.With(wrapped, "binary", c.binary)
	}

	// Anything else failed before git ran, typically chdir into dir.
	wrapped := zerr.Wrap(errors.Join(domain.ErrNotVersionControlled, err), "could not run git in directory")
	return zerr.With(wrapped, "dir", dir)
}

// parseOutput splits NUL-terminated `ls-files -z` output into paths. Names are
// verbatim, so quotes, backslashes, tabs and newlines survive. Empty output yields no paths.
func parseOutput(output string) []string {
	var paths []string
	for _, entry := range strings.Split(output, "\x00") {
		if entry == "" {
			continue
		}
		paths = append(paths, entry)
	}
	return paths
}
