package domain

import (
	"fmt"
	"path/filepath"
)

// Built-in defaults used when .speclint.yaml leaves a field unset.
const (
	DefaultSpecsDir    = "specs"
	DefaultCommitLimit = 20
)

// DefaultRequiredDirs returns the directories a spec-driven repository is
// expected to contain.
func DefaultRequiredDirs() []string {
	return []string{
		"dev-docs/sdd",
		"dev-docs/agents",
		"dev-docs/git",
		"dev-docs/cli",
		"specs",
		"templates",
		"templates/commands",
		"scripts",
		"scripts/sdd",
		"tests",
		".github/workflows",
	}
}

// RepoConfig holds repository-level configuration loaded from .speclint.yaml.
// Each list replaces the built-in default entirely when non-empty.
type RepoConfig struct {
	RequiredDirs []string `yaml:"required_dirs" json:"required_dirs,omitempty"`
	SpecsDir     string   `yaml:"specs_dir"     json:"specs_dir,omitempty"`
	ExcludeDirs  []string `yaml:"exclude_dirs"  json:"exclude_dirs,omitempty"`
	ExcludeFiles []string `yaml:"exclude_files" json:"exclude_files,omitempty"`
	CommitLimit  int      `yaml:"commit_limit"  json:"commit_limit,omitempty"`
	Strict       bool     `yaml:"strict"        json:"strict,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() RepoConfig {
	return RepoConfig{}
}

// Validate catches malformed user input before a run starts.
func (c RepoConfig) Validate() error {
	if c.SpecsDir != "" && filepath.IsAbs(c.SpecsDir) {
		return fmt.Errorf("specs_dir must be relative to the repository root, got %q", c.SpecsDir)
	}
	if c.CommitLimit < 0 {
		return fmt.Errorf("commit_limit must not be negative, got %d", c.CommitLimit)
	}
	for _, d := range c.RequiredDirs {
		if filepath.IsAbs(d) {
			return fmt.Errorf("required_dirs entries must be relative, got %q", d)
		}
	}
	return nil
}

// ResolvedRequiredDirs returns the configured directory list or the default.
func (c RepoConfig) ResolvedRequiredDirs() []string {
	if len(c.RequiredDirs) > 0 {
		return c.RequiredDirs
	}
	return DefaultRequiredDirs()
}

// ResolvedSpecsDir returns the configured specs root or the default.
func (c RepoConfig) ResolvedSpecsDir() string {
	if c.SpecsDir != "" {
		return c.SpecsDir
	}
	return DefaultSpecsDir
}

// ResolvedCommitLimit returns the configured commit window or the default.
func (c RepoConfig) ResolvedCommitLimit() int {
	if c.CommitLimit > 0 {
		return c.CommitLimit
	}
	return DefaultCommitLimit
}
