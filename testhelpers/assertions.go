// Package testhelpers provides testing utilities for metro,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	filtered := []string{}
	for _, b := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			filtered = append(filtered, b)
		}
	}

	sort.Strings(filtered)
	sorted := append([]string(nil), expected...)
	sort.Strings(sorted)

	require.Equal(t, sorted, filtered, "Branches do not match")
}

// ExpectCommits asserts that the newest commit subjects on a branch match expected.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	filtered := []string{}
	for _, c := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		c = strings.TrimSpace(c)
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(filtered))
		return
	}

	require.Equal(t, expected, filtered[:len(expected)], "Commits do not match")
}

// ExpectClean asserts that the working tree has no changes, untracked files included.
func ExpectClean(t *testing.T, repo *GitRepo) {
	t.Helper()

	status, err := repo.Status()
	require.NoError(t, err)
	require.Empty(t, status, "Working tree is not clean")
}

// ExpectFileContent asserts the content of a file relative to the repository root.
func ExpectFileContent(t *testing.T, repo *GitRepo, name, expected string) {
	t.Helper()

	content, err := repo.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, expected, content)
}
