package git

// openCurrentRepo opens the repository containing the runner's working directory
func openCurrentRepo() (*Repository, error) {
	root, err := GetRepoRoot()
	if err != nil {
		return nil, err
	}
	return OpenRepository(root)
}

// GetCurrentBranch returns the name of the currently checked out branch
func GetCurrentBranch() (string, error) {
	repo, err := openCurrentRepo()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

// LocalBranchExists reports whether a local branch with the given name exists
func LocalBranchExists(name string) (bool, error) {
	repo, err := openCurrentRepo()
	if err != nil {
		return false, err
	}
	return repo.HasBranch(name)
}
