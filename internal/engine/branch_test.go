package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"metro.dev/metro/internal/engine"
	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/testhelpers"
	"metro.dev/metro/testhelpers/scenario"
)

func TestParseBranchName(t *testing.T) {
	tests := []struct {
		name  string
		kind  engine.BranchKind
		owner string
	}{
		{"main", engine.BranchKindNormal, "main"},
		{"main#wip", engine.BranchKindWip, "main"},
		{"feature/login#wip", engine.BranchKindWip, "feature/login"},
		{"#wip", engine.BranchKindNormal, "#wip"},
		{"main#wipe", engine.BranchKindNormal, "main#wipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.ParseBranchName(tt.name)
			require.Equal(t, tt.name, b.Name)
			require.Equal(t, tt.kind, b.Kind)
			require.Equal(t, tt.owner, b.Owner)
			require.Equal(t, tt.owner+"#wip", b.WipBranch())
		})
	}
}

func TestCurrentBranch(t *testing.T) {
	t.Run("finds the attached branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
		s.Checkout("feature")

		b, err := s.Session.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature", b.Name)
		require.False(t, b.IsWip())
	})

	t.Run("fails on a detached head", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		require.NoError(t, s.Scene.Repo.CheckoutDetached("main"))

		_, err := s.Session.CurrentBranch()
		require.ErrorIs(t, err, metroerrors.ErrBranchNotFound)
	})
}

func TestCreateBranch(t *testing.T) {
	t.Run("creates a branch at head without switching", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		require.NoError(t, s.Session.CreateBranch(s.Ctx(), "feature"))

		s.ExpectBranch("main").ExpectBranches("feature", "main")
		require.Equal(t, s.Rev("main"), s.Rev("feature"))
	})

	t.Run("rejects WIP names", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := s.Session.CreateBranch(s.Ctx(), "feature#wip")
		require.ErrorIs(t, err, metroerrors.ErrUnsupportedOperation)
	})

	t.Run("fails when the branch exists", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		require.Error(t, s.Session.CreateBranch(s.Ctx(), "main"))
	})
}

func TestBranches(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.DivergedSceneSetup)
	s.WriteFile("main_test.txt", "dirty")
	require.NoError(t, s.Session.SwitchBranch(s.Ctx(), "feature"))

	branches, err := s.Session.Branches(s.Ctx())
	require.NoError(t, err)
	require.Len(t, branches, 2)

	require.Equal(t, "feature", branches[0].Name.Name)
	require.True(t, branches[0].IsCurrent)
	require.False(t, branches[0].HasWip)

	require.Equal(t, "main", branches[1].Name.Name)
	require.False(t, branches[1].IsCurrent)
	require.True(t, branches[1].HasWip)
}
