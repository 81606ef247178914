package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"metro.dev/metro/internal/engine"
	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/git"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestSwitchBranch(t *testing.T) {
	t.Run("stashes changes and restores them on return", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		main := s.Rev("main")
		s.WriteFile("main_test.txt", "dirty").WriteFile("scratch.txt", "notes")

		require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "feature"))

		s.ExpectBranch("feature").
			ExpectBranches("feature", "main", "main#wip").
			ExpectFile("feature_test.txt", "feature work").
			ExpectNoFile("main_test.txt").
			ExpectNoFile("scratch.txt").
			ExpectClean()
		require.Equal(t, []string{main}, s.Parents("main#wip"))

		require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "main"))

		s.ExpectBranch("main").
			ExpectBranches("feature", "main").
			ExpectFile("main_test.txt", "dirty").
			ExpectFile("scratch.txt", "notes").
			ExpectNoFile("feature_test.txt")
		require.Equal(t, main, s.Rev("main"))
	})

	t.Run("switches without stashing a clean tree", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)

		require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "feature"))

		s.ExpectBranch("feature").ExpectBranches("feature", "main").ExpectClean()
	})

	t.Run("carries a conflicted merge across switches", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.ConflictingSceneSetup)
		_, err := s.Session.Absorb(s.Ctx(), "feature")
		require.NoError(t, err)
		unmerged := s.Unmerged()

		require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "feature"))
		s.ExpectBranch("feature").ExpectMerging(false).ExpectFile("shared_test.txt", "feature\n")
		require.Empty(t, s.Unmerged())

		require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "main"))
		s.ExpectBranch("main").ExpectBranches("feature", "main").ExpectMerging(true)
		require.Equal(t, unmerged, s.Unmerged())
	})

	t.Run("rejects WIP branches", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := s.Session.SwitchBranch(s.Ctx(), "main#wip")
		require.ErrorIs(t, err, metroerrors.ErrUnsupportedOperation)
	})

	t.Run("fails for missing branches", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		s.WriteFile("new.txt", "content")

		err := s.Session.SwitchBranch(s.Ctx(), "nonexistent")
		require.ErrorIs(t, err, metroerrors.ErrBranchNotFound)

		s.ExpectBranch("main").ExpectBranches("main").ExpectFile("new.txt", "content")
	})
}

// refusingStore is a store whose branch creation always fails
type refusingStore struct {
	git.Store
}

func (refusingStore) CreateBranch(name string, _ string) error {
	return fmt.Errorf("cannot create %s", name)
}

func TestSwitchBranchStopsWhenStashFails(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
	s.WriteFile("main_test.txt", "dirty")

	repo, err := git.OpenRepository(s.Scene.Dir)
	require.NoError(t, err)
	session := engine.NewSession(refusingStore{Store: repo})

	err = session.SwitchBranch(s.Ctx(), "feature")
	require.ErrorContains(t, err, "failed to stash work")
	require.ErrorContains(t, err, "cannot create main#wip")

	s.ExpectBranch("main").
		ExpectBranches("feature", "main").
		ExpectFile("main_test.txt", "dirty")
}
