package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// FileSet is a set of resolved paths. Identity is the exact path string, not the inode.
type FileSet map[string]struct{}

// NewFileSet creates a FileSet holding the given paths.
func NewFileSet(paths ...string) FileSet {
	s := make(FileSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts path into the set.
func (s FileSet) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether path is in the set.
func (s FileSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set.
func (s FileSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of s and other. Neither input is modified.
func (s FileSet) Union(other FileSet) FileSet {
	out := make(FileSet, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the members ordered by path string.
func (s FileSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Digest returns an order-independent fingerprint of the set.
func (s FileSet) Digest() string {
	hasher := xxhash.New()
	for _, p := range s.Sorted() {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// PathKind classifies what a target path points at.
type PathKind int

const (
	// PathMissing means nothing exists at the path.
	PathMissing PathKind = iota
	// PathFile means the path exists and is not a directory.
	PathFile
	// PathDir means the path is a directory.
	PathDir
)

// String returns the string representation of the PathKind.
func (k PathKind) String() string {
	switch k {
	case PathFile:
		return "file"
	case PathDir:
		return "dir"
	default:
		return "missing"
	}
}
