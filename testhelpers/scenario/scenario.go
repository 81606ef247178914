// Package scenario provides a high-level test scenario that combines a Scene,
// an engine Session, and a runtime Context to provide a terse API for integration tests.
package scenario

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"metro.dev/metro/internal/config"
	"metro.dev/metro/internal/engine"
	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
	"metro.dev/metro/testhelpers"
)

// Scenario represents a high-level test scenario that combines a Scene,
// an engine Session, and a runtime Context to provide a terse API for integration tests.
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Session *engine.Session
	Context *runtime.Context
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	// Force non-interactive mode for tests
	t.Setenv("METRO_NO_INTERACTIVE", "true")

	scene := testhelpers.NewScene(t, setup)

	cfg, err := config.Load(scene.Dir)
	require.NoError(t, err)

	splog := tui.NewSplog()
	session, err := engine.Open(scene.Dir,
		engine.WithLogger(splog.Logger()),
		engine.WithSignature(cfg.Signature.Name, cfg.Signature.Email),
	)
	require.NoError(t, err)

	ctx := runtime.NewContext(session, splog)
	ctx.Config = cfg

	return &Scenario{
		T:       t,
		Scene:   scene,
		Session: session,
		Context: ctx,
	}
}

// CaptureOutput redirects the context's console output into the returned buffer.
func (s *Scenario) CaptureOutput() *bytes.Buffer {
	var buf bytes.Buffer
	s.Context.Splog = tui.NewSplogWithWriter(&buf)
	return &buf
}

// Ctx returns the context operations run with
func (s *Scenario) Ctx() context.Context {
	return context.Background()
}

// WithInitialCommit creates an initial commit on the main branch.
func (s *Scenario) WithInitialCommit() *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChangeAndCommit("initial", "init")
	require.NoError(s.T, err)
	return s
}

// WithUncommittedChange creates an uncommitted change in the repository.
func (s *Scenario) WithUncommittedChange(name string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChange("unstaged content", name, true)
	require.NoError(s.T, err)
	return s
}

// WriteFile writes a file without staging it.
func (s *Scenario) WriteFile(name, content string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.WriteFile(name, content))
	return s
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.RunGitCommand(args...)
	require.NoError(s.T, err)
	return s
}

// Checkout checks out a branch with git.
func (s *Scenario) Checkout(branch string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CheckoutBranch(branch))
	return s
}

// CreateBranch creates and checks out a new branch with git.
func (s *Scenario) CreateBranch(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateAndCheckoutBranch(name))
	return s
}

// Commit creates an empty commit with the given message.
func (s *Scenario) Commit(message string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.RunGitCommand("commit", "--allow-empty", "-m", message)
	require.NoError(s.T, err)
	return s
}

// CommitChange creates a file change and commits it.
func (s *Scenario) CommitChange(name, message string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChangeAndCommit(message, name)
	require.NoError(s.T, err)
	return s
}

// Rev returns the commit id of a revision.
func (s *Scenario) Rev(rev string) string {
	s.T.Helper()
	sha, err := s.Scene.Repo.GetRevision(rev)
	require.NoError(s.T, err)
	return sha
}

// Parents returns the parent commit ids of a revision.
func (s *Scenario) Parents(rev string) []string {
	s.T.Helper()
	parents, err := s.Scene.Repo.GetParents(rev)
	require.NoError(s.T, err)
	return parents
}

// Unmerged returns the conflict stages of the index keyed by "<stage> <path>"
// with the blob id as value.
func (s *Scenario) Unmerged() map[string]string {
	s.T.Helper()
	output, err := s.Scene.Repo.UnmergedEntries()
	require.NoError(s.T, err)

	entries := map[string]string{}
	for _, line := range strings.Split(output, "\n") {
		meta, path, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		fields := strings.Fields(meta)
		require.Len(s.T, fields, 3, "malformed unmerged entry %q", line)
		entries[fields[2]+" "+path] = fields[1]
	}
	return entries
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.CurrentBranchName()
	require.NoError(s.T, err)
	require.Equal(s.T, expected, actual)
	return s
}

// ExpectBranches asserts the full set of local branches.
func (s *Scenario) ExpectBranches(expected ...string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectBranches(s.T, s.Scene.Repo, expected)
	return s
}

// ExpectFile asserts the content of a working tree file.
func (s *Scenario) ExpectFile(name, content string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectFileContent(s.T, s.Scene.Repo, name, content)
	return s
}

// ExpectNoFile asserts that a working tree file does not exist.
func (s *Scenario) ExpectNoFile(name string) *Scenario {
	s.T.Helper()
	require.False(s.T, s.Scene.Repo.FileExists(name), "expected %s to be absent", name)
	return s
}

// ExpectClean asserts that the working tree has no changes.
func (s *Scenario) ExpectClean() *Scenario {
	s.T.Helper()
	testhelpers.ExpectClean(s.T, s.Scene.Repo)
	return s
}

// ExpectMerging asserts whether a merge is in progress.
func (s *Scenario) ExpectMerging(merging bool) *Scenario {
	s.T.Helper()
	require.Equal(s.T, merging, s.Scene.Repo.MergeInProgress())
	return s
}
