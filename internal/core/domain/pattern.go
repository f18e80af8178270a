package domain

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

// MatchAny reports whether path, or any of its ancestor directories, matches one of patterns.
//
// A pattern is matched against the trailing segments of a path, one glob per segment, so
// "tests" matches "project/tests" and "src/*.py" matches "a/src/b.py". A pattern starting
// with a separator is anchored and must match the whole path.
func MatchAny(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	abs := filepath.IsAbs(path)
	segments := splitSegments(path)

	for end := len(segments); end > 0; end-- {
		for _, pattern := range patterns {
			if matchSegments(segments[:end], abs, pattern) {
				return true
			}
		}
	}
	return false
}

// FilterIncludes returns the members of set matching at least one pattern.
// An empty pattern list means no restriction and returns set itself.
func FilterIncludes(set FileSet, patterns []string) FileSet {
	if len(patterns) == 0 {
		return set
	}

	out := make(FileSet)
	for p := range set {
		if MatchAny(p, patterns) {
			out.Add(p)
		}
	}
	return out
}

// FilterExcludes returns the members of set matching none of the patterns.
// An empty pattern list excludes nothing and returns set itself.
func FilterExcludes(set FileSet, patterns []string) FileSet {
	if len(patterns) == 0 {
		return set
	}

	out := make(FileSet, len(set))
	for p := range set {
		if !MatchAny(p, patterns) {
			out.Add(p)
		}
	}
	return out
}

// ValidatePatterns checks that every pattern is a well-formed glob.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		segments := splitSegments(pattern)
		if len(segments) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidPattern, "pattern is empty"), "pattern", pattern)
		}
		for _, segment := range segments {
			if !doublestar.ValidatePattern(segment) {
				return zerr.With(zerr.Wrap(ErrInvalidPattern, "pattern is malformed"), "pattern", pattern)
			}
		}
	}
	return nil
}

func matchSegments(segments []string, abs bool, pattern string) bool {
	patternSegments := splitSegments(pattern)
	if len(patternSegments) == 0 || len(patternSegments) > len(segments) {
		return false
	}

	if isAnchored(pattern) {
		if !abs || len(patternSegments) != len(segments) {
			return false
		}
	}

	offset := len(segments) - len(patternSegments)
	for i, ps := range patternSegments {
		ok, err := doublestar.Match(ps, segments[offset+i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func isAnchored(pattern string) bool {
	return strings.HasPrefix(filepath.ToSlash(pattern), "/") || filepath.IsAbs(pattern)
}

// splitSegments splits a path into its named segments, dropping empty and "." entries.
func splitSegments(p string) []string {
	p = filepath.ToSlash(filepath.Clean(p))
	if vol := filepath.VolumeName(p); vol != "" {
		p = strings.TrimPrefix(p, vol)
	}

	raw := strings.Split(p, "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}
