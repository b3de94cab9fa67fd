package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates and checks out a new branch. When from is
// non-empty the branch starts at that revision instead of HEAD.
func CreateAndCheckoutBranch(ctx context.Context, branchName, from string) error {
	args := []string{"checkout", "-b", branchName}
	if from != "" {
		args = append(args, from)
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutTrackingBranch creates a local branch tracking the given remote ref
// and checks it out.
func CheckoutTrackingBranch(ctx context.Context, branchName, remoteRef string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", "-b", branchName, remoteRef)
	if err != nil {
		return fmt.Errorf("failed to checkout tracking branch %s from %s: %w", branchName, remoteRef, err)
	}
	return nil
}

// MovePath renames a tracked file or directory with git mv
func MovePath(ctx context.Context, oldPath, newPath string) error {
	_, err := RunGitCommandWithContext(ctx, "mv", oldPath, newPath)
	if err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// RemovePath removes a file or directory from the working tree and the index.
// Paths absent from the index are ignored.
func RemovePath(ctx context.Context, path string) error {
	_, err := RunGitCommandWithContext(ctx, "rm", "-r", "-q", "--ignore-unmatch", "--", path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// CheckoutPathFrom overwrites a path in the working tree with its content at
// the tip of another branch.
func CheckoutPathFrom(ctx context.Context, branch, path string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branch, "--", path)
	if err != nil {
		return fmt.Errorf("failed to restore %s from %s: %w", path, branch, err)
	}
	return nil
}
