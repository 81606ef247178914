package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestSaveWip(t *testing.T) {
	t.Run("does nothing on a clean tree", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		before := s.Rev("HEAD")

		require.NoError(t, s.Session.SaveWip(s.Ctx()))

		s.ExpectBranch("main").ExpectBranches("main")
		require.Equal(t, before, s.Rev("HEAD"))
	})

	t.Run("stashes changes on the WIP branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		c0 := s.Rev("main")
		s.WriteFile("1_test.txt", "edited").WriteFile("new.txt", "untracked")

		require.NoError(t, s.Session.SaveWip(s.Ctx()))

		s.ExpectBranch("main#wip").ExpectBranches("main", "main#wip")
		require.Equal(t, c0, s.Rev("main"))
		require.Equal(t, []string{c0}, s.Parents("main#wip"))
		msg, err := s.Scene.Repo.GetCommitMessage("main#wip")
		require.NoError(t, err)
		require.Equal(t, "WIP", msg)
		s.ExpectClean()
	})

	t.Run("replaces a stale WIP branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.CommitChange("2", "2").RunGit("branch", "main#wip", "HEAD~1")
		head := s.Rev("main")
		s.WriteFile("new.txt", "content")

		require.NoError(t, s.Session.SaveWip(s.Ctx()))

		require.Equal(t, []string{head}, s.Parents("main#wip"))
	})

	t.Run("stashes an in-progress merge", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		main := s.Rev("main")
		feature := s.Rev("feature")
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)

		require.NoError(t, s.Session.SaveWip(s.Ctx()))

		s.ExpectBranch("main#wip").ExpectMerging(false)
		require.Equal(t, []string{main, feature}, s.Parents("main#wip"))
		msg, err := s.Scene.Repo.GetCommitMessage("main#wip")
		require.NoError(t, err)
		require.Equal(t, "WIP\nAbsorbed feature", msg)
		require.Empty(t, s.Unmerged())
	})

	t.Run("fails on a detached head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		require.NoError(t, s.Scene.Repo.CheckoutDetached("main"))
		s.WriteFile("new.txt", "content")

		err := s.Session.SaveWip(s.Ctx())
		require.ErrorIs(t, err, metroerrors.ErrBranchNotFound)
	})

	t.Run("refuses to stash on a WIP branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.WriteFile("new.txt", "content")
		require.NoError(t, s.Session.SaveWip(s.Ctx()))
		s.WriteFile("other.txt", "content")

		err := s.Session.SaveWip(s.Ctx())
		require.ErrorIs(t, err, metroerrors.ErrUnsupportedOperation)
	})
}

func TestRestoreWip(t *testing.T) {
	t.Run("round trips a stash", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		c0 := s.Rev("main")
		s.WriteFile("1_test.txt", "edited").WriteFile("dir/new.txt", "untracked")

		require.NoError(t, s.Session.SaveWip(s.Ctx()))
		s.ExpectBranch("main#wip")
		require.Equal(t, []string{c0}, s.Parents("HEAD"))

		require.NoError(t, s.Session.RestoreWip(s.Ctx()))

		s.ExpectBranch("main").
			ExpectBranches("main").
			ExpectFile("1_test.txt", "edited").
			ExpectFile("dir/new.txt", "untracked")
		require.Equal(t, c0, s.Rev("main"))
	})

	t.Run("refuses to leave a WIP branch with new changes", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.WriteFile("1_test.txt", "edited")
		require.NoError(t, s.Session.SaveWip(s.Ctx()))
		wip := s.Rev("main#wip")
		s.WriteFile("1_test.txt", "edited again")

		err := s.Session.RestoreWip(s.Ctx())
		require.ErrorIs(t, err, metroerrors.ErrUnsupportedOperation)

		s.ExpectBranch("main#wip").
			ExpectBranches("main", "main#wip").
			ExpectFile("1_test.txt", "edited again")
		require.Equal(t, wip, s.Rev("main#wip"))
	})

	t.Run("round trips a conflicted merge", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		s.WriteFile("notes.txt", "in progress")

		unmerged := s.Unmerged()
		content, err := s.Scene.Repo.ReadFile("shared_test.txt")
		require.NoError(t, err)

		require.NoError(t, s.Session.SaveWip(s.Ctx()))
		require.NoError(t, s.Session.RestoreWip(s.Ctx()))

		s.ExpectBranch("main").
			ExpectBranches("feature", "main").
			ExpectMerging(true).
			ExpectFile("shared_test.txt", content).
			ExpectFile("notes.txt", "in progress")
		require.Equal(t, unmerged, s.Unmerged())

		msg, err := s.Scene.Repo.MergeMessage()
		require.NoError(t, err)
		require.Equal(t, "Absorbed feature", msg)
	})

	t.Run("keeps a custom merge message", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		require.NoError(t, s.Session.Store().WriteMergeMessage("Merge feature\n\nKeep main's wording"))

		require.NoError(t, s.Session.SaveWip(s.Ctx()))
		require.NoError(t, s.Session.RestoreWip(s.Ctx()))

		msg, err := s.Scene.Repo.MergeMessage()
		require.NoError(t, err)
		require.Equal(t, "Merge feature\n\nKeep main's wording", msg)
	})

	t.Run("keeps the default message when the WIP message has one line", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		feature := s.Rev("feature")
		s.RunGit("branch", "main#wip").
			RunGit("symbolic-ref", "HEAD", "refs/heads/main#wip").
			WriteFile("notes.txt", "draft")
		_, err := s.Session.CommitRevisions(s.Ctx(), "WIP", "main", "feature")
		require.NoError(t, err)

		require.NoError(t, s.Session.RestoreWip(s.Ctx()))

		s.ExpectBranch("main").ExpectBranches("feature", "main").ExpectMerging(true)
		msg, err := s.Scene.Repo.MergeMessage()
		require.NoError(t, err)
		require.Equal(t, "Absorbed "+feature, msg)
	})

	t.Run("does nothing without a WIP branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.WriteFile("new.txt", "content")

		require.NoError(t, s.Session.RestoreWip(s.Ctx()))

		s.ExpectBranch("main").ExpectFile("new.txt", "content")
	})
}
