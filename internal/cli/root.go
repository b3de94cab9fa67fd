// Package cli wires the rulesync commands onto a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"rulesync.dev/rulesync/internal/config"
	"rulesync.dev/rulesync/internal/git"
	"rulesync.dev/rulesync/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulesync",
		Short: "Rulesync propagates shared rule files across derived branches",
		Long: `Rulesync manages a repository whose branches share a common set of rule
files: it derives new branches with a per-branch marker file and propagates
updates to the shared files from a source branch into the other branches.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDeriveCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// newRunContext locates the repository and loads the configuration
func newRunContext() (*runtime.Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	// Anchor git commands at the repository root so configured paths resolve
	// the same way regardless of the invocation directory
	git.SetWorkingDir(repoRoot)

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	return runtime.NewContext(cfg, repoRoot), nil
}
