package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedLanguage is returned when a language identifier is not in the alias table.
	ErrUnsupportedLanguage = zerr.New("unsupported language")

	// ErrNotVersionControlled is returned when a version-control query for a directory fails.
	ErrNotVersionControlled = zerr.New("not a version-controlled directory")

	// ErrVersionControlUnavailable is returned when the version-control tool cannot be run at all
	// (binary missing, spawn failure or timeout).
	ErrVersionControlUnavailable = zerr.New("version control tool unavailable")

	// ErrInvalidPattern is returned when an include or exclude glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrNoTargetsSpecified is returned when a resolution is requested without any target paths.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrNoLanguageSpecified is returned when a resolution is requested without a language.
	ErrNoLanguageSpecified = zerr.New("no language specified")

	// ErrPathStatFailed is returned when stating a target path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrWalkFailed is returned when a directory walk is aborted.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownBackend is returned when the configured version-control backend is not recognized.
	ErrUnknownBackend = zerr.New("unknown version control backend")
)
