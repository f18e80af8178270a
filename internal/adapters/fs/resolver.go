package fs

import (
	"path/filepath"

	"go.trai.ch/sieve/internal/core/domain"
)

// Resolver turns user supplied target strings into normalized paths.
// Resolution is purely lexical; the filesystem is never consulted.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver joining relative targets onto the working directory ".",
// which keeps them relative to the invocation root.
func NewResolver() *Resolver {
	return NewResolverAt(".")
}

// NewResolverAt creates a Resolver joining relative targets onto base.
func NewResolverAt(base string) *Resolver {
	return &Resolver{base: base}
}

// ResolveTargets resolves targets to a deduplicated set of paths.
// Absolute targets are kept as they are; relative targets are joined onto the base.
func (r *Resolver) ResolveTargets(targets []string) domain.FileSet {
	resolved := make(domain.FileSet, len(targets))
	for _, target := range targets {
		resolved.Add(r.resolve(target))
	}
	return resolved
}

func (r *Resolver) resolve(target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(r.base, target)
}
