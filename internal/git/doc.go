// Package git provides low-level git operations for rulesync.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, checkout, existence queries)
//   - Working tree operations (rename, remove, restore from another branch)
//   - Commit and push operations
//   - Remote branch discovery
//
// This package should be the only place where direct git commands are executed.
package git
