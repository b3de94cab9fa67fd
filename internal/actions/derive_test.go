package actions_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"rulesync.dev/rulesync/internal/actions"
	"rulesync.dev/rulesync/internal/config"
	rserrors "rulesync.dev/rulesync/internal/errors"
	"rulesync.dev/rulesync/internal/git"
	"rulesync.dev/rulesync/internal/runtime"
	"rulesync.dev/rulesync/testhelpers"
)

func init() {
	// Disable interactive prompts in tests
	os.Setenv("RULESYNC_TEST_NO_INTERACTIVE", "1")
}

// setupRepo creates a repository with a marker file, shared rule files,
// excluded paths and a bare origin remote, and points the git runner at it.
func setupRepo(t *testing.T) (*testhelpers.GitRepo, string) {
	t.Helper()

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.WriteFile("main.mdc", "# main branch rules\n"))
	require.NoError(t, repo.WriteFile("rules/general.mdc", "general v1\n"))
	require.NoError(t, repo.WriteFile("README.md", "readme\n"))
	require.NoError(t, repo.WriteFile("project.mdc", "project main\n"))
	require.NoError(t, repo.WriteFile(".vscode/settings.json", "{}\n"))
	require.NoError(t, repo.WriteFile("todo.txt", "todo\n"))
	require.NoError(t, repo.CommitAll("initial commit"))

	bareDir, err := repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, repo.PushBranch("origin", "main"))

	git.SetWorkingDir(repo.Dir)
	t.Cleanup(func() { git.SetWorkingDir("") })

	return repo, bareDir
}

func newTestContext(repo *testhelpers.GitRepo) *runtime.Context {
	return runtime.NewContext(config.Default(), repo.Dir)
}

func TestDeriveAction_CreatesRenamesExcludesAndPushes(t *testing.T) {
	repo, bareDir := setupRepo(t)
	ctx := newTestContext(repo)

	name, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "My Feature", Yes: true})
	require.NoError(t, err)
	require.Equal(t, "My-Feature", name)

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "My-Feature", current)

	// Marker renamed to match the branch
	require.True(t, repo.FileExists("My-Feature.mdc"))
	require.False(t, repo.FileExists("main.mdc"))

	// Excluded paths removed
	require.False(t, repo.FileExists(".vscode"))
	require.False(t, repo.FileExists("todo.txt"))

	// Shared files untouched
	require.True(t, repo.FileExists("rules/general.mdc"))

	// Branch pushed with an upstream reference
	remoteBranches, err := testhelpers.RemoteBranches(bareDir)
	require.NoError(t, err)
	require.Contains(t, remoteBranches, "My-Feature")

	// The setup changes were committed on the new branch only
	mainSHA, err := repo.GetRevision("main")
	require.NoError(t, err)
	branchSHA, err := repo.GetRevision("My-Feature")
	require.NoError(t, err)
	require.NotEqual(t, mainSHA, branchSHA)
}

func TestDeriveAction_ExistingLocalBranchFails(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	require.NoError(t, repo.CreateBranch("taken"))
	beforeSHA, err := repo.GetRevision("taken")
	require.NoError(t, err)

	_, err = actions.DeriveAction(ctx, actions.DeriveOptions{Name: "taken", Yes: true})
	require.ErrorIs(t, err, rserrors.ErrBranchExists)

	// The existing branch is left unmodified and we stay on the original branch
	afterSHA, err := repo.GetRevision("taken")
	require.NoError(t, err)
	require.Equal(t, beforeSHA, afterSHA)

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", current)
}

func TestDeriveAction_ExistingRemoteBranchFails(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	require.NoError(t, repo.CreateBranch("remote-only"))
	require.NoError(t, repo.PushBranch("origin", "remote-only"))
	require.NoError(t, repo.DeleteBranch("remote-only"))

	_, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "remote-only", Yes: true})
	require.ErrorIs(t, err, rserrors.ErrBranchExists)
}

func TestDeriveAction_StaleRemoteTrackingRefsStillDetectCollision(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	// The branch exists on the remote but is unknown locally: no local branch
	// and no remote-tracking ref
	require.NoError(t, repo.CreateBranch("ghost"))
	require.NoError(t, repo.PushBranch("origin", "ghost"))
	require.NoError(t, repo.DeleteBranch("ghost"))
	require.NoError(t, repo.RunGitCommand("branch", "-d", "-r", "origin/ghost"))

	_, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "ghost", Yes: true})
	require.ErrorIs(t, err, rserrors.ErrBranchExists)
}

func TestDeriveAction_InvalidName(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	for _, name := range []string{"", "!!!", "   "} {
		_, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: name, Yes: true})
		require.ErrorIs(t, err, rserrors.ErrInvalidName, "name %q", name)
	}
}

func TestDeriveAction_SanitizedNameRequiresConsent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	// Without --yes and without a terminal the action refuses to proceed
	_, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "My Feature"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--yes")

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", current)
}

func TestDeriveAction_MissingMarkerIsSkipped(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	require.NoError(t, repo.RunGitCommand("rm", "main.mdc"))
	require.NoError(t, repo.CommitAll("drop marker"))

	name, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "no-marker", Yes: true})
	require.NoError(t, err)

	require.False(t, repo.FileExists(name+".mdc"))
	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "no-marker", current)
}

func TestDeriveAction_FromBranch(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := newTestContext(repo)

	// Derive a base branch first, then derive from it while main is checked out
	base, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "base", Yes: true})
	require.NoError(t, err)
	require.NoError(t, repo.CheckoutBranch("main"))

	name, err := actions.DeriveAction(ctx, actions.DeriveOptions{Name: "child", From: base, Yes: true})
	require.NoError(t, err)

	// The marker of the source branch is the one renamed
	require.True(t, repo.FileExists(name+".mdc"))
	require.False(t, repo.FileExists(base+".mdc"))
}
