package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to the remote. When setUpstream is true the
// upstream tracking reference is created.
func PushBranch(ctx context.Context, remote, branchName string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "--set-upstream")
	}
	args = append(args, remote, branchName)

	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
	}
	return nil
}
