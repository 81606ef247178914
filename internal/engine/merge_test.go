package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"metro.dev/metro/internal/engine"
	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestAbsorb(t *testing.T) {
	t.Run("fails when the commit is already an ancestor", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.CommitChange("2", "2").RunGit("branch", "old", "HEAD~1")
		before := s.Rev("HEAD")

		_, err := s.Session.Absorb(s.Ctx(), "old")
		require.ErrorIs(t, err, metroerrors.ErrUnnecessaryMerge)

		require.Equal(t, before, s.Rev("HEAD"))
		s.ExpectMerging(false).ExpectClean()
	})

	t.Run("fails when the commit is head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.RunGit("branch", "same")

		_, err := s.Session.Absorb(s.Ctx(), "same")
		require.ErrorIs(t, err, metroerrors.ErrUnnecessaryMerge)
		s.ExpectMerging(false)
	})

	t.Run("commits a divergent merge without conflicts", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		main := s.Rev("main")
		feature := s.Rev("feature")

		result, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		require.Equal(t, engine.AbsorbClean, result)

		require.Equal(t, []string{main, feature}, s.Parents("HEAD"))
		msg, err := s.Scene.Repo.GetCommitMessage("HEAD")
		require.NoError(t, err)
		require.Equal(t, "Absorbed feature", msg)

		s.ExpectFile("feature_test.txt", "feature work").
			ExpectFile("main_test.txt", "main work").
			ExpectMerging(false).
			ExpectClean()
	})

	t.Run("merges over changes left staged by a soft uncommit", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		main := s.Rev("main")
		feature := s.Rev("feature")
		s.CommitChange("extra", "extra")
		require.NoError(t, s.Session.DeleteLastCommit(s.Ctx(), false))

		result, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		require.Equal(t, engine.AbsorbClean, result)

		require.Equal(t, []string{main, feature}, s.Parents("HEAD"))
		s.ExpectFile("extra_test.txt", "extra").
			ExpectFile("feature_test.txt", "feature work").
			ExpectMerging(false).
			ExpectClean()
	})

	t.Run("merges a fast-forwardable commit as a merge commit", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.CreateBranch("ahead").CommitChange("ahead", "ahead").Checkout("main")
		main := s.Rev("main")
		ahead := s.Rev("ahead")

		result, err := s.Session.Absorb(s.Ctx(), "ahead")
		require.NoError(t, err)
		require.Equal(t, engine.AbsorbClean, result)
		require.Equal(t, []string{main, ahead}, s.Parents("HEAD"))
	})

	t.Run("leaves conflicts for resolve", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		main := s.Rev("main")
		feature := s.Rev("feature")

		result, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		require.Equal(t, engine.AbsorbConflicts, result)

		s.ExpectMerging(true)
		msg, err := s.Scene.Repo.MergeMessage()
		require.NoError(t, err)
		require.Equal(t, "Absorbed feature", msg)

		unmerged := s.Unmerged()
		require.Contains(t, unmerged, "1 shared_test.txt")
		require.Contains(t, unmerged, "2 shared_test.txt")
		require.Contains(t, unmerged, "3 shared_test.txt")

		status, err := s.Session.MergeStatus(s.Ctx())
		require.NoError(t, err)
		require.Equal(t, engine.MergeStatusConflicted, status)

		conflicts, err := s.Session.Conflicts(s.Ctx())
		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		require.Equal(t, "shared_test.txt", conflicts[0].Path)
		require.Equal(t, unmerged["2 shared_test.txt"], conflicts[0].Ours.ID)
		require.Equal(t, unmerged["3 shared_test.txt"], conflicts[0].Theirs.ID)

		s.WriteFile("shared_test.txt", "resolved\n")
		id, err := s.Session.Resolve(s.Ctx())
		require.NoError(t, err)

		require.Equal(t, id, s.Rev("main"))
		require.Equal(t, []string{main, feature}, s.Parents("HEAD"))
		require.Empty(t, s.Unmerged())
		s.ExpectMerging(false).ExpectClean().ExpectFile("shared_test.txt", "resolved\n")

		status, err = s.Session.MergeStatus(s.Ctx())
		require.NoError(t, err)
		require.Equal(t, engine.MergeStatusClean, status)
	})

	t.Run("fails while merging", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)

		_, err = s.Session.Absorb(s.Ctx(), "feature")
		require.ErrorIs(t, err, metroerrors.ErrCurrentlyMerging)
	})

	t.Run("rejects WIP branches", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Session.Absorb(s.Ctx(), "feature#wip")
		require.ErrorIs(t, err, metroerrors.ErrUnsupportedOperation)
	})

	t.Run("fails for unknown revisions", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Session.Absorb(s.Ctx(), "nonexistent")
		require.ErrorIs(t, err, metroerrors.ErrRevisionNotFound)
		s.ExpectMerging(false)
	})
}

func TestResolve(t *testing.T) {
	t.Run("fails when not merging", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Session.Resolve(s.Ctx())
		require.ErrorIs(t, err, metroerrors.ErrNotMerging)
	})

	t.Run("uses the stored merge message", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		require.NoError(t, s.Session.Store().WriteMergeMessage("Take both sides"))

		_, err = s.Session.Resolve(s.Ctx())
		require.NoError(t, err)

		msg, err := s.Scene.Repo.GetCommitMessage("HEAD")
		require.NoError(t, err)
		require.Equal(t, "Take both sides", msg)
	})
}

func TestAbortMerge(t *testing.T) {
	t.Run("restores head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		before := s.Rev("HEAD")
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)

		require.NoError(t, s.Session.AbortMerge(s.Ctx()))

		require.Equal(t, before, s.Rev("HEAD"))
		require.Empty(t, s.Unmerged())
		s.ExpectMerging(false).ExpectClean().ExpectFile("shared_test.txt", "main\n")
	})

	t.Run("fails when not merging", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := s.Session.AbortMerge(s.Ctx())
		require.ErrorIs(t, err, metroerrors.ErrNotMerging)
	})
}
