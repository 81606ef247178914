package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"metro.dev/metro/internal/engine"
	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestCreate(t *testing.T) {
	t.Run("creates a repository with an initial commit", func(t *testing.T) {
		dir := testhelpers.NewEmptyDir(t)

		session, err := engine.Create(context.Background(), dir, "trunk",
			engine.WithSignature("Test User", "test@example.com"))
		require.NoError(t, err)
		require.Equal(t, dir, session.RepoRoot())

		repo := testhelpers.OpenGitRepo(dir)
		branch, err := repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "trunk", branch)

		msg, err := repo.GetCommitMessage("HEAD")
		require.NoError(t, err)
		require.Equal(t, engine.InitialCommitMessage, msg)

		parents, err := repo.GetParents("HEAD")
		require.NoError(t, err)
		require.Empty(t, parents)
	})

	t.Run("fails when a repository exists", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := engine.Create(context.Background(), scene.Dir, "main")
		require.ErrorIs(t, err, metroerrors.ErrRepositoryExists)
	})
}

func TestOpen(t *testing.T) {
	t.Run("opens from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.WriteFile("sub/file.txt", "content")
		})

		session, err := engine.Open(scene.Dir + "/sub")
		require.NoError(t, err)
		require.Equal(t, scene.Dir, session.RepoRoot())
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := engine.Open(testhelpers.NewEmptyDir(t))
		require.Error(t, err)
	})
}

func TestMergeStatus(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)

	status, err := s.Session.MergeStatus(s.Ctx())
	require.NoError(t, err)
	require.Equal(t, engine.MergeStatusClean, status)

	_, err = s.Session.Absorb(s.Ctx(), "feature")
	require.NoError(t, err)
	status, err = s.Session.MergeStatus(s.Ctx())
	require.NoError(t, err)
	require.Equal(t, engine.MergeStatusConflicted, status)

	state, err := s.Session.LoadMergeState()
	require.NoError(t, err)
	require.NotNil(t, state)
	require.Equal(t, s.Rev("feature"), state.Head)

	require.NoError(t, s.Scene.Repo.RunGitCommand("add", "-A"))
	status, err = s.Session.MergeStatus(s.Ctx())
	require.NoError(t, err)
	require.Equal(t, engine.MergeStatusMerging, status)
}

func TestStatus(t *testing.T) {
	t.Run("reports branch, changes and pending stash", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		s.RunGit("branch", "main#wip")

		st, err := s.Session.Status(s.Ctx())
		require.NoError(t, err)
		require.Equal(t, "main", st.Branch.Name)
		require.False(t, st.Detached)
		require.True(t, st.HasWip)
		require.Nil(t, st.Merge)
		require.Empty(t, st.Changes)
		require.Equal(t, engine.MergeStatusClean, st.MergeStatus())
	})

	t.Run("reports a detached head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		require.NoError(t, s.Scene.Repo.CheckoutDetached("main"))
		s.WriteFile("new.txt", "content")

		st, err := s.Session.Status(s.Ctx())
		require.NoError(t, err)
		require.True(t, st.Detached)
		require.Equal(t, s.Rev("HEAD"), st.Head.ID)
		require.Equal(t, []string{"?? new.txt"}, st.Changes)
	})
}
