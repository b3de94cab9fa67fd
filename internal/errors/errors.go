// Package errors provides sentinel errors and custom error types for rulesync.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidName indicates that a branch name sanitized to an unusable result
	ErrInvalidName = errors.New("invalid branch name")

	// ErrBranchExists indicates that a branch with the requested name already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist locally or on the remote
	ErrBranchNotFound = errors.New("branch not found")

	// ErrAborted indicates that the user declined to proceed
	ErrAborted = errors.New("aborted by user")
)

// InvalidNameError represents a branch name that sanitized to an empty string
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("branch name %q contains no usable characters", e.Name)
}

// Is returns true if the target error is ErrInvalidName
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// NewInvalidNameError creates a new InvalidNameError
func NewInvalidNameError(name string) *InvalidNameError {
	return &InvalidNameError{Name: name}
}

// BranchExistsError represents an attempt to derive a branch that already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution.
// The failing command and its output are preserved verbatim for diagnosis.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s %s", e.Command, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
