package domain

import "time"

// VCS backend identifiers accepted in project configuration.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// DefaultVCSTimeout bounds a single version-control query.
const DefaultVCSTimeout = 60 * time.Second

// Settings holds project-wide target resolution defaults.
type Settings struct {
	Includes   []string
	Excludes   []string
	GitOnly    bool
	VCSBackend string
	VCSTimeout time.Duration
}

// DefaultSettings returns the settings used when no project file is present.
func DefaultSettings() Settings {
	return Settings{
		VCSBackend: BackendCLI,
		VCSTimeout: DefaultVCSTimeout,
	}
}
