// Package runtime provides the per-invocation context shared by commands:
// the loaded configuration, the output logger and the repository root.
package runtime

import (
	"context"
	"os"

	"rulesync.dev/rulesync/internal/config"
	"rulesync.dev/rulesync/internal/tui"
)

// Context provides access to configuration and output for actions
type Context struct {
	Context  context.Context
	Config   *config.Config
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext creates a new context for the given repository root.
// When RULESYNC_LOG_FILE is set, output is additionally written to a
// rotating log file at that path.
func NewContext(cfg *config.Config, repoRoot string) *Context {
	splog := tui.NewSplog()
	if logFile := os.Getenv("RULESYNC_LOG_FILE"); logFile != "" {
		if fileSplog, err := tui.NewSplogWithLogFile(logFile); err == nil {
			splog = fileSplog
		}
	}

	return &Context{
		Context:  context.Background(),
		Config:   cfg,
		Splog:    splog,
		RepoRoot: repoRoot,
	}
}
