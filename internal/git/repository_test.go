package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rulesync.dev/rulesync/internal/git"
	"rulesync.dev/rulesync/testhelpers"
)

func TestRepository_Queries(t *testing.T) {
	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.WriteFile("README.md", "readme"))
	require.NoError(t, repo.CommitAll("initial commit"))
	require.NoError(t, repo.CreateBranch("feature"))

	r, err := git.OpenRepository(repo.Dir)
	require.NoError(t, err)

	current, err := r.GetCurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)

	names, err := r.GetBranchNames()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "feature"}, names)

	exists, err := r.HasBranch("feature")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = r.HasBranch("missing")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestOpenRepository_NotARepo(t *testing.T) {
	_, err := git.OpenRepository(t.TempDir())
	require.Error(t, err)
}
