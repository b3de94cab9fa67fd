// Package config provides the run configuration for rulesync: the file
// manifests and branch settings loaded once from the repository root.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the optional configuration file at the repo root
const ConfigFileName = ".rulesync.json"

// Config holds the file manifests and branch settings for a run.
// It is loaded once and treated as immutable for the duration of a run.
type Config struct {
	// Include lists files and directories propagated by sync
	Include []string `json:"include,omitempty"`

	// Exclude lists paths removed from a newly derived branch
	Exclude []string `json:"exclude,omitempty"`

	// Protect lists paths sync must never overwrite, in addition to the
	// per-branch marker file
	Protect []string `json:"protect,omitempty"`

	// SkipBranches lists branches ignored during sync target discovery
	SkipBranches []string `json:"skipBranches,omitempty"`

	// MarkerExt is the extension of the per-branch marker file
	MarkerExt string `json:"markerExt,omitempty"`

	// Remote is the remote pushed to and used for branch discovery
	Remote string `json:"remote,omitempty"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Include: []string{
			"README.md",
			"rules/general.mdc",
		},
		Exclude: []string{
			".vscode",
			"todo.txt",
		},
		SkipBranches: []string{"main", "master"},
		MarkerExt:    ".mdc",
		Remote:       "origin",
	}
}

// Load reads the configuration file from the repository root.
// A missing file yields the default configuration; fields left unset in the
// file fall back to their defaults.
func Load(repoRoot string) (*Config, error) {
	configPath := filepath.Join(repoRoot, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	defaults := Default()
	if cfg.Include == nil {
		cfg.Include = defaults.Include
	}
	if cfg.Exclude == nil {
		cfg.Exclude = defaults.Exclude
	}
	if cfg.SkipBranches == nil {
		cfg.SkipBranches = defaults.SkipBranches
	}
	if cfg.MarkerExt == "" {
		cfg.MarkerExt = defaults.MarkerExt
	}
	if cfg.Remote == "" {
		cfg.Remote = defaults.Remote
	}

	return cfg, nil
}

// MarkerFile returns the marker file name for a branch
func (c *Config) MarkerFile(branch string) string {
	return branch + c.MarkerExt
}

// IsProtected reports whether a path must not be overwritten when syncing
// into the given target branch. The target's marker file is always protected;
// further paths come from the Protect list.
func (c *Config) IsProtected(path string, targetBranch string) bool {
	if path == c.MarkerFile(targetBranch) {
		return true
	}
	return contains(c.Protect, path)
}

// IsSkipped reports whether a branch is excluded from sync target discovery
func (c *Config) IsSkipped(branch string) bool {
	return contains(c.SkipBranches, branch)
}

// contains checks if a string slice contains a value
func contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
