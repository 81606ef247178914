package engine

import (
	"context"
	"errors"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/git"
)

// Status is a snapshot of the repository for display
type Status struct {
	// Branch is the current branch; it is the zero value when Detached is set
	Branch    BranchName
	Detached  bool
	Head      *git.Commit
	Merge     *MergeState
	Conflicts []git.Conflict
	// Changes are porcelain status lines of the working tree
	Changes []string
	// HasWip reports whether work is stashed for the current branch
	HasWip bool
}

// MergeStatus derives the merge controller state from the snapshot
func (st *Status) MergeStatus() MergeStatus {
	switch {
	case st.Merge == nil:
		return MergeStatusClean
	case len(st.Conflicts) > 0:
		return MergeStatusConflicted
	default:
		return MergeStatusMerging
	}
}

// Status collects the current branch, merge state, conflicts and changes
func (s *Session) Status(ctx context.Context) (*Status, error) {
	st := &Status{}

	current, err := s.CurrentBranch()
	switch {
	case errors.Is(err, metroerrors.ErrBranchNotFound):
		st.Detached = true
	case err != nil:
		return nil, err
	default:
		st.Branch = current
		wip, err := s.store.LookupBranch(current.WipBranch())
		if err != nil {
			return nil, err
		}
		st.HasWip = wip != nil && !current.IsWip()
	}

	if st.Head, err = s.store.HeadCommit(); err != nil {
		return nil, err
	}
	if st.Merge, err = s.LoadMergeState(); err != nil {
		return nil, err
	}
	if st.Conflicts, err = s.store.Conflicts(ctx); err != nil {
		return nil, err
	}
	if st.Changes, err = s.store.ChangedPaths(ctx); err != nil {
		return nil, err
	}
	return st, nil
}
