// Package errors provides sentinel errors and custom error types for metro.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRevisionNotFound indicates that a revision could not be resolved to a commit
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrBranchNotFound indicates that a branch does not exist, or HEAD is not on one
	ErrBranchNotFound = errors.New("branch not found")

	// ErrRepositoryExists indicates an attempt to create a repository over an existing one
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrCurrentlyMerging indicates that the operation requires no merge to be in progress
	ErrCurrentlyMerging = errors.New("a merge is in progress")

	// ErrNotMerging indicates that the operation requires a merge to be in progress
	ErrNotMerging = errors.New("no merge in progress")

	// ErrUnnecessaryMerge indicates that the merge target is already contained in HEAD
	ErrUnnecessaryMerge = errors.New("already up to date")

	// ErrUnsupportedOperation indicates an operation metro does not support
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// RevisionNotFoundError represents an error when a revision does not resolve
type RevisionNotFoundError struct {
	Revision string
	Err      error
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %s not found", e.Revision)
}

// Is returns true if the target error is ErrRevisionNotFound
func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

func (e *RevisionNotFoundError) Unwrap() error {
	return e.Err
}

// NewRevisionNotFoundError creates a new RevisionNotFoundError
func NewRevisionNotFoundError(revision string, err error) *RevisionNotFoundError {
	return &RevisionNotFoundError{Revision: revision, Err: err}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	if e.BranchName == "" {
		return "HEAD is not on a branch"
	}
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError.
// An empty name means HEAD is detached or points at no local branch.
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// UnsupportedOperationError carries the reason an operation was refused
type UnsupportedOperationError struct {
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %s", e.Reason)
}

// Is returns true if the target error is ErrUnsupportedOperation
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(reason string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Reason: reason}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
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
