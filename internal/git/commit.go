package git

import (
	"context"
	"fmt"
)

// Commit creates a commit with the given message. Messages are always
// generated by the caller, so the editor is never opened.
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
