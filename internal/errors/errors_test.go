package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "invalid name error matches ErrInvalidName",
			err:      NewInvalidNameError("???"),
			sentinel: ErrInvalidName,
		},
		{
			name:     "branch exists error matches ErrBranchExists",
			err:      NewBranchExistsError("feature"),
			sentinel: ErrBranchExists,
		},
		{
			name:     "branch not found error matches ErrBranchNotFound",
			err:      NewBranchNotFoundError("feature"),
			sentinel: ErrBranchNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestSentinelMatchingThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("derive failed: %w", NewBranchExistsError("feature"))
	require.ErrorIs(t, wrapped, ErrBranchExists)

	var existsErr *BranchExistsError
	require.ErrorAs(t, wrapped, &existsErr)
	require.Equal(t, "feature", existsErr.BranchName)
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("exit status 128")
	err := NewGitCommandError("git", []string{"checkout", "missing"}, "", "error: pathspec 'missing' did not match", underlying)

	require.Contains(t, err.Error(), "git command failed")
	require.Contains(t, err.Error(), "checkout missing")
	require.Contains(t, err.Error(), "pathspec 'missing'")
	require.ErrorIs(t, err, underlying)
}
