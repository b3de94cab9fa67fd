package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rulesync.dev/rulesync/internal/actions"
	"rulesync.dev/rulesync/internal/tui"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [source] [targets...]",
		Short: "Propagate shared files from a source branch into target branches",
		Long: `Copy the configured include list from the source branch (default main) into
each target branch, committing and pushing per branch. Per-branch marker
files and other protected paths are never overwritten.

With no targets, all remote branches except the source and the configured
skip list are synchronized, in remote listing order.

A target that already matches the source is reported as "no changes". The
process exits nonzero if any target failed; "no changes" counts as success.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRunContext()
			if err != nil {
				return err
			}

			opts := actions.SyncOptions{Source: "main"}
			if len(args) > 0 {
				opts.Source = args[0]
				opts.Targets = args[1:]
			}

			results, err := actions.SyncAction(ctx, opts)
			printSyncReport(ctx.Splog, results)
			if err != nil {
				return err
			}

			failed := 0
			for _, result := range results {
				if result.Outcome == actions.OutcomeFailed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d target branches failed", failed, len(results))
			}
			return nil
		},
	}

	return cmd
}

// printSyncReport renders the per-target outcomes
func printSyncReport(splog *tui.Splog, results []actions.TargetResult) {
	if len(results) == 0 {
		return
	}

	splog.Newline()
	for _, result := range results {
		switch result.Outcome {
		case actions.OutcomeUpdated:
			splog.Info("%s %s", tui.ColorSuccess("✓"), tui.ColorBranchName(result.Branch))
		case actions.OutcomeNoChanges:
			splog.Info("%s %s (no changes)", tui.ColorWarn("-"), tui.ColorBranchName(result.Branch))
		case actions.OutcomeFailed:
			splog.Info("%s %s: %v", tui.ColorFailure("✗"), tui.ColorBranchName(result.Branch), result.Err)
		}
	}
}
