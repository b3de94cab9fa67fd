package git

import (
	"context"
	"fmt"
	"strings"
)

// FetchAll fetches all remotes so remote-tracking refs are current
func FetchAll(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", "--all")
	if err != nil {
		return fmt.Errorf("failed to fetch remotes: %w", err)
	}
	return nil
}

// GetRemoteBranchNames returns the branch names on the given remote, parsed
// from the remote-tracking refs. The HEAD pointer entry is skipped.
func GetRemoteBranchNames(ctx context.Context, remote string) ([]string, error) {
	output, err := RunGitCommandWithContext(ctx, "branch", "-r")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}

	prefix := remote + "/"
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "->") {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			names = append(names, strings.TrimPrefix(line, prefix))
		}
	}

	return names, nil
}

// RemoteBranchExists reports whether a branch exists on the given remote.
// The remote is queried directly, so the answer does not depend on how
// recently the remote-tracking refs were fetched.
func RemoteBranchExists(ctx context.Context, remote, branchName string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-remote", "--heads", remote, branchName)
	if err != nil {
		return false, fmt.Errorf("failed to check remote branch %s: %w", branchName, err)
	}
	return strings.TrimSpace(output) != "", nil
}

// FetchBranch fetches a single branch from the given remote, updating its
// remote-tracking ref.
func FetchBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w", branchName, remote, err)
	}
	return nil
}
