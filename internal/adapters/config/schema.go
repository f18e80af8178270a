package config

// FileName is the project configuration file discovered from the working directory upward.
const FileName = ".sieve.yaml"

// SchemaVersion is the only accepted value of the version key. An omitted version means this one.
const SchemaVersion = "1"

// Sievefile represents the structure of the .sieve.yaml configuration file.
type Sievefile struct {
	Version string   `yaml:"version"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	GitOnly bool     `yaml:"git_only"`
	VCS     VCSDTO   `yaml:"vcs"`
}

// VCSDTO configures the version-control backend.
type VCSDTO struct {
	Backend string `yaml:"backend"`
	Timeout string `yaml:"timeout"`
}
