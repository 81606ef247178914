package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("reference not found")

	revErr := fmt.Errorf("absorb: %w", NewRevisionNotFoundError("feature", cause))
	require.ErrorIs(t, revErr, ErrRevisionNotFound)
	require.ErrorIs(t, revErr, cause)
	require.Contains(t, revErr.Error(), "revision feature not found")

	branchErr := fmt.Errorf("switch: %w", NewBranchNotFoundError("topic"))
	require.ErrorIs(t, branchErr, ErrBranchNotFound)
	require.Equal(t, "HEAD is not on a branch", NewBranchNotFoundError("").Error())

	var unsupported *UnsupportedOperationError
	opErr := fmt.Errorf("patch: %w", NewUnsupportedOperationError("cannot delete the initial commit"))
	require.ErrorIs(t, opErr, ErrUnsupportedOperation)
	require.ErrorAs(t, opErr, &unsupported)
	require.Equal(t, "cannot delete the initial commit", unsupported.Reason)

	require.NotErrorIs(t, opErr, ErrBranchNotFound)
}

func TestGitCommandError(t *testing.T) {
	cause := errors.New("exit status 128")
	err := NewGitCommandError("git", []string{"merge", "feature"}, "", "fatal: bad revision", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "git command failed: git [merge feature]")
	require.Contains(t, err.Error(), "stderr: fatal: bad revision")
	require.NotContains(t, err.Error(), "stdout:")
}
