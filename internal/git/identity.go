package git

import "context"

// GetUserName returns the git user's name from git config
func GetUserName(ctx context.Context) (string, error) {
	return RunGitCommandWithContext(ctx, "config", "user.name")
}

// GetUserEmail returns the git user's email from git config
func GetUserEmail(ctx context.Context) (string, error) {
	return RunGitCommandWithContext(ctx, "config", "user.email")
}

// HasCommitIdentity checks that user.name and user.email are configured.
// Commits fail or produce warnings without them.
func HasCommitIdentity(ctx context.Context) bool {
	name, err := GetUserName(ctx)
	if err != nil || name == "" {
		return false
	}
	email, err := GetUserEmail(ctx)
	if err != nil || email == "" {
		return false
	}
	return true
}
