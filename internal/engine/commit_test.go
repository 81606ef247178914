package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestCommit(t *testing.T) {
	t.Run("commits the whole working tree on top of head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		before := s.Rev("HEAD")

		s.WriteFile("1_test.txt", "edited").
			WriteFile("dir/new.txt", "untracked")

		id, err := s.Session.CommitOnHead(s.Ctx(), "second")
		require.NoError(t, err)

		require.Equal(t, id, s.Rev("main"))
		require.Equal(t, []string{before}, s.Parents("HEAD"))
		s.ExpectBranch("main").ExpectClean()
		testhelpers.ExpectCommits(t, s.Scene.Repo, "main", []string{"second", "1"})
	})

	t.Run("commits with explicit parents", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		main := s.Rev("main")
		feature := s.Rev("feature")

		id, err := s.Session.CommitRevisions(s.Ctx(), "joined", "main", "feature")
		require.NoError(t, err)

		require.Equal(t, id, s.Rev("HEAD"))
		require.Equal(t, []string{main, feature}, s.Parents("HEAD"))
		msg, err := s.Scene.Repo.GetCommitMessage("HEAD")
		require.NoError(t, err)
		require.Equal(t, "joined", msg)
	})

	t.Run("fails when a parent does not resolve", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		before := s.Rev("HEAD")
		s.WriteFile("new.txt", "content")

		_, err := s.Session.CommitRevisions(s.Ctx(), "nope", "main", "missing")
		require.ErrorIs(t, err, metroerrors.ErrRevisionNotFound)

		var notFound *metroerrors.RevisionNotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "missing", notFound.Revision)
		require.Equal(t, before, s.Rev("HEAD"))
	})

	t.Run("moves a detached head without touching branches", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		main := s.Rev("main")
		require.NoError(t, s.Scene.Repo.CheckoutDetached("main"))
		s.WriteFile("detached.txt", "content")

		id, err := s.Session.CommitOnHead(s.Ctx(), "detached")
		require.NoError(t, err)

		require.Equal(t, id, s.Rev("HEAD"))
		require.Equal(t, main, s.Rev("main"))
	})
}
