package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"rulesync.dev/rulesync/internal/branchutil"
	rserrors "rulesync.dev/rulesync/internal/errors"
	"rulesync.dev/rulesync/internal/git"
	"rulesync.dev/rulesync/internal/runtime"
	"rulesync.dev/rulesync/internal/tui"
)

// DeriveOptions contains options for the derive command
type DeriveOptions struct {
	// Name is the desired branch name before sanitization
	Name string

	// From is the branch to derive from; empty means the current branch
	From string

	// Yes accepts a sanitized name without prompting
	Yes bool
}

// DeriveAction creates a new branch from the source branch, renames the
// marker file to match the new branch, removes the configured excluded paths,
// commits and pushes. It returns the final (sanitized) branch name.
//
// The action fails fast: the first git failure aborts the operation, leaving
// any local changes on the new branch in the working tree.
func DeriveAction(ctx *runtime.Context, opts DeriveOptions) (string, error) {
	cfg := ctx.Config
	splog := ctx.Splog

	name := branchutil.SanitizeBranchName(opts.Name)
	if name == "" {
		return "", rserrors.NewInvalidNameError(opts.Name)
	}

	if name != opts.Name && !opts.Yes {
		if !isInteractive() {
			return "", fmt.Errorf("branch name %q was sanitized to %q; re-run with --yes to accept it", opts.Name, name)
		}
		splog.Info("Branch name %q was sanitized to %q.", opts.Name, name)
		ok, err := promptConfirm("Continue with the sanitized branch name?", false)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", rserrors.ErrAborted
		}
	}

	if !git.IsGitInstalled() {
		return "", fmt.Errorf("git does not appear to be installed or is not in PATH")
	}
	if !git.HasCommitIdentity(ctx.Context) {
		return "", fmt.Errorf("git user.name or user.email is not set; configure git before committing")
	}

	source := opts.From
	if source == "" {
		current, err := git.GetCurrentBranch()
		if err != nil {
			return "", err
		}
		source = current
	}

	localExists, err := git.LocalBranchExists(name)
	if err != nil {
		return "", err
	}
	remoteExists, err := git.RemoteBranchExists(ctx.Context, cfg.Remote, name)
	if err != nil {
		return "", err
	}
	if localExists || remoteExists {
		return "", rserrors.NewBranchExistsError(name)
	}

	splog.Info("Creating and switching to branch %s...", tui.ColorBranchName(name))
	if err := git.CreateAndCheckoutBranch(ctx.Context, name, opts.From); err != nil {
		return "", err
	}

	marker := cfg.MarkerFile(source)
	newMarker := cfg.MarkerFile(name)
	if _, err := os.Stat(filepath.Join(ctx.RepoRoot, marker)); err == nil {
		splog.Info("Renaming %s to %s...", marker, newMarker)
		if err := git.MovePath(ctx.Context, marker, newMarker); err != nil {
			return "", err
		}
	} else {
		splog.Warn("Marker file %s not found, skipping rename.", marker)
	}

	for _, path := range cfg.Exclude {
		if _, err := os.Stat(filepath.Join(ctx.RepoRoot, path)); err != nil {
			splog.Debug("Skipping %s (not found).", path)
			continue
		}
		splog.Info("Removing %s from the new branch...", path)
		if err := git.RemovePath(ctx.Context, path); err != nil {
			return "", err
		}
	}

	if err := git.StageAll(ctx.Context); err != nil {
		return "", err
	}
	staged, err := git.HasStagedChanges(ctx.Context)
	if err != nil {
		return "", err
	}
	if staged {
		if err := git.Commit(ctx.Context, fmt.Sprintf("Initialize branch %s", name)); err != nil {
			return "", err
		}
	}

	splog.Info("Pushing %s to %s...", name, cfg.Remote)
	if err := git.PushBranch(ctx.Context, cfg.Remote, name, true); err != nil {
		return "", err
	}

	splog.Info("Branch %s created and pushed.", tui.ColorBranchName(name))
	return name, nil
}
