package engine

import (
	"context"
	"fmt"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/git"
)

// AbsorbedPrefix starts the default message of a merge commit
const AbsorbedPrefix = "Absorbed "

// AbsorbResult is the outcome of Absorb
type AbsorbResult int

const (
	// AbsorbClean means the merge had no conflicts and was committed
	AbsorbClean AbsorbResult = iota
	// AbsorbConflicts means the merge is left in progress with conflicts to resolve
	AbsorbConflicts
)

func (r AbsorbResult) String() string {
	if r == AbsorbConflicts {
		return "conflicts"
	}
	return "clean"
}

// StartMerge merges the commit name resolves to into the index and working tree
// without committing, leaving conflicts in place, and records the merge message
// "Absorbed <name>".
func (s *Session) StartMerge(ctx context.Context, name string) error {
	other, err := s.store.ResolveCommit(name)
	if err != nil {
		return err
	}

	analysis, err := s.store.MergeAnalysis(other.ID)
	if err != nil {
		return err
	}
	switch {
	case analysis.Has(git.MergeAnalysisUpToDate), analysis == git.MergeAnalysisNone:
		return metroerrors.ErrUnnecessaryMerge
	case analysis.Has(git.MergeAnalysisUnborn):
		return metroerrors.NewUnsupportedOperationError("cannot merge into a branch with no commits")
	case !analysis.Has(git.MergeAnalysisNormal):
		return metroerrors.NewUnsupportedOperationError(fmt.Sprintf("cannot merge %s", name))
	}

	s.log.Debug("starting merge", "revision", name, "commit", other.ID)
	if err := s.store.Merge(ctx, other.ID); err != nil {
		return err
	}
	return s.storeMergeState(AbsorbedPrefix + name)
}

// Absorb merges mergeHead into the current branch. Without conflicts the merge is
// committed right away; otherwise it is left in progress for Resolve.
func (s *Session) Absorb(ctx context.Context, mergeHead string) (AbsorbResult, error) {
	if err := rejectWip(mergeHead, "absorb"); err != nil {
		return AbsorbClean, err
	}
	if err := s.requireNotMerging(); err != nil {
		return AbsorbClean, err
	}

	if err := s.StartMerge(ctx, mergeHead); err != nil {
		return AbsorbClean, err
	}

	conflicted, err := s.store.HasConflicts(ctx)
	if err != nil {
		return AbsorbClean, err
	}
	if conflicted {
		s.log.Debug("merge left open with conflicts", "revision", mergeHead)
		return AbsorbConflicts, nil
	}

	if _, err := s.Resolve(ctx); err != nil {
		return AbsorbClean, err
	}
	return AbsorbClean, nil
}

// Resolve concludes the in-progress merge: the merge state and every conflict
// entry are cleared and the working tree is committed with HEAD and the merge
// head as parents. It returns the merge commit id.
func (s *Session) Resolve(ctx context.Context) (string, error) {
	state, err := s.LoadMergeState()
	if err != nil {
		return "", err
	}
	if state == nil {
		return "", metroerrors.ErrNotMerging
	}

	head, err := s.store.HeadCommit()
	if err != nil {
		return "", err
	}
	mergeHead, err := s.store.ResolveCommit(state.Head)
	if err != nil {
		return "", err
	}

	if err := s.clearMergeState(); err != nil {
		return "", err
	}
	if err := s.store.CleanupConflicts(ctx); err != nil {
		return "", err
	}

	s.log.Debug("resolving merge", "head", head.ID, "mergeHead", mergeHead.ID)
	return s.Commit(ctx, state.Message, []*git.Commit{head, mergeHead})
}

// AbortMerge discards the in-progress merge, resetting the index and working
// tree to HEAD
func (s *Session) AbortMerge(ctx context.Context) error {
	state, err := s.LoadMergeState()
	if err != nil {
		return err
	}
	if state == nil {
		return metroerrors.ErrNotMerging
	}

	head, err := s.store.HeadCommit()
	if err != nil {
		return err
	}

	if err := s.clearMergeState(); err != nil {
		return err
	}
	if err := s.store.CleanupConflicts(ctx); err != nil {
		return err
	}

	s.log.Debug("aborting merge", "head", head.ID, "mergeHead", state.Head)
	return s.store.HardReset(ctx, head.ID)
}

// Conflicts returns the conflicted paths of the index
func (s *Session) Conflicts(ctx context.Context) ([]git.Conflict, error) {
	return s.store.Conflicts(ctx)
}
