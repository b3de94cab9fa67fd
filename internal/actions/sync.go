package actions

import (
	"fmt"

	rserrors "rulesync.dev/rulesync/internal/errors"
	"rulesync.dev/rulesync/internal/git"
	"rulesync.dev/rulesync/internal/runtime"
	"rulesync.dev/rulesync/internal/tui"
)

// SyncOptions contains options for the sync command
type SyncOptions struct {
	// Source is the branch the shared files are copied from
	Source string

	// Targets are the branches to update, in order. When empty, targets are
	// discovered from the remote, minus the source and the configured skip
	// list.
	Targets []string
}

// Outcome describes the result of syncing one target branch
type Outcome int

const (
	// OutcomeUpdated means shared files changed and were committed and pushed
	OutcomeUpdated Outcome = iota

	// OutcomeNoChanges means the target already matched the source
	OutcomeNoChanges

	// OutcomeFailed means the target could not be updated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeNoChanges:
		return "no changes"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TargetResult is the outcome of syncing a single target branch
type TargetResult struct {
	Branch  string
	Outcome Outcome
	Err     error
}

// SyncAction propagates the configured include list from the source branch
// into each target branch, in order. Failures are isolated per target: one
// failing branch does not prevent attempting the rest. The original checkout
// is restored on exit, successful or not.
func SyncAction(ctx *runtime.Context, opts SyncOptions) ([]TargetResult, error) {
	cfg := ctx.Config
	splog := ctx.Splog
	source := opts.Source

	original, err := git.GetCurrentBranch()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := git.CheckoutBranch(ctx.Context, original); err != nil {
			splog.Error("Failed to return to branch %s: %v", original, err)
		}
	}()

	targets := opts.Targets
	if len(targets) == 0 {
		splog.Info("Fetching remotes...")
		if err := git.FetchAll(ctx.Context); err != nil {
			return nil, err
		}
		discovered, err := git.GetRemoteBranchNames(ctx.Context, cfg.Remote)
		if err != nil {
			return nil, err
		}
		for _, branch := range discovered {
			if branch == source || cfg.IsSkipped(branch) {
				continue
			}
			targets = append(targets, branch)
		}
		splog.Info("Discovered %d target branches on %s.", len(targets), cfg.Remote)
	}

	// Switch to the source first so every target starts from a consistent base
	if err := git.CheckoutBranch(ctx.Context, source); err != nil {
		return nil, err
	}

	results := make([]TargetResult, 0, len(targets))
	for _, target := range targets {
		outcome, err := syncTarget(ctx, source, target)
		if err != nil {
			splog.Error("%s: %v", tui.ColorBranchName(target), err)
		}
		results = append(results, TargetResult{Branch: target, Outcome: outcome, Err: err})

		// Return to the source so the next checkout starts clean
		if err := git.CheckoutBranch(ctx.Context, source); err != nil {
			return results, err
		}
	}

	return results, nil
}

// syncTarget updates a single target branch from the source branch
func syncTarget(ctx *runtime.Context, source, target string) (Outcome, error) {
	cfg := ctx.Config
	splog := ctx.Splog

	localExists, err := git.LocalBranchExists(target)
	if err != nil {
		return OutcomeFailed, err
	}
	if localExists {
		if err := git.CheckoutBranch(ctx.Context, target); err != nil {
			return OutcomeFailed, err
		}
	} else {
		remoteExists, err := git.RemoteBranchExists(ctx.Context, cfg.Remote, target)
		if err != nil {
			return OutcomeFailed, err
		}
		if !remoteExists {
			return OutcomeFailed, rserrors.NewBranchNotFoundError(target)
		}
		splog.Info("Creating local branch %s from %s/%s...", target, cfg.Remote, target)
		if err := git.FetchBranch(ctx.Context, cfg.Remote, target); err != nil {
			return OutcomeFailed, err
		}
		if err := git.CheckoutTrackingBranch(ctx.Context, target, cfg.Remote+"/"+target); err != nil {
			return OutcomeFailed, err
		}
	}

	for _, path := range cfg.Include {
		if cfg.IsProtected(path, target) {
			splog.Debug("Skipping protected path %s on %s.", path, target)
			continue
		}
		splog.Info("Updating %s from %s in %s...", path, source, target)
		if err := git.CheckoutPathFrom(ctx.Context, source, path); err != nil {
			return OutcomeFailed, err
		}
	}

	if err := git.StageAll(ctx.Context); err != nil {
		return OutcomeFailed, err
	}
	staged, err := git.HasStagedChanges(ctx.Context)
	if err != nil {
		return OutcomeFailed, err
	}
	if !staged {
		splog.Info("No changes in branch %s.", target)
		return OutcomeNoChanges, nil
	}

	splog.Info("Committing and pushing changes in branch %s...", target)
	if err := git.Commit(ctx.Context, fmt.Sprintf("Propagate shared files from %s", source)); err != nil {
		return OutcomeFailed, err
	}
	if err := git.PushBranch(ctx.Context, cfg.Remote, target, true); err != nil {
		return OutcomeFailed, err
	}

	return OutcomeUpdated, nil
}
