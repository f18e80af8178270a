// Package config provides the configuration loader for sieve.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the nearest .sieve.yaml at or above cwd. Without one, defaults are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to resolve working directory"), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		l.Logger.Debug("no project configuration found", "cwd", cwd)
		return domain.DefaultSettings(), nil
	}

	l.Logger.Debug("loading project configuration", "path", configPath)
	return loadSievefile(configPath)
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func loadSievefile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to read config file"), "path", path)
	}

	var file Sievefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "failed to parse config file"), "path", path)
	}

	settings, err := toSettings(&file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func toSettings(file *Sievefile) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	switch file.Version {
	case "", SchemaVersion:
	default:
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported config version"), "version", file.Version)
	}

	if err := domain.ValidatePatterns(file.Include); err != nil {
		return domain.Settings{}, zerr.With(err, "field", "include")
	}
	if err := domain.ValidatePatterns(file.Exclude); err != nil {
		return domain.Settings{}, zerr.With(err, "field", "exclude")
	}
	settings.Includes = file.Include
	settings.Excludes = file.Exclude
	settings.GitOnly = file.GitOnly

	switch file.VCS.Backend {
	case "":
	case domain.BackendCLI, domain.BackendGoGit:
		settings.VCSBackend = file.VCS.Backend
	default:
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "unsupported vcs backend"), "backend", file.VCS.Backend)
	}

	if file.VCS.Timeout != "" {
		timeout, err := time.ParseDuration(file.VCS.Timeout)
		if err != nil || timeout <= 0 {
			cause := err
			if cause == nil {
				cause = zerr.New("timeout must be positive")
			}
			return domain.Settings{}, zerr.With(
				zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, cause), "invalid vcs timeout"),
				"timeout", file.VCS.Timeout,
			)
		}
		settings.VCSTimeout = timeout
	}

	return settings, nil
}
