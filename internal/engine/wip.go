package engine

import (
	"context"
	"fmt"
	"strings"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/git"
)

// WipMessage is the message of a WIP commit. When a merge was stashed the merge
// message follows it after a line break.
const WipMessage = "WIP"

// hasWork reports whether there is anything SaveWip would record
func (s *Session) hasWork(ctx context.Context) (bool, error) {
	merging, err := s.IsMerging()
	if err != nil {
		return false, err
	}
	if merging {
		return true, nil
	}
	return s.store.HasUncommittedChanges(ctx)
}

// SaveWip stashes the working tree, and the in-progress merge if any, as a
// commit on the current branch's WIP branch and leaves HEAD on that branch.
// It does nothing when the working tree is clean and no merge is in progress.
func (s *Session) SaveWip(ctx context.Context) error {
	dirty, err := s.hasWork(ctx)
	if err != nil {
		return err
	}
	if !dirty {
		s.log.Debug("nothing to stash")
		return nil
	}

	current, err := s.CurrentBranch()
	if err != nil {
		return err
	}
	if current.IsWip() {
		return metroerrors.NewUnsupportedOperationError(fmt.Sprintf("already on WIP branch %s", current.Name))
	}

	head, err := s.store.HeadCommit()
	if err != nil {
		return err
	}
	state, err := s.LoadMergeState()
	if err != nil {
		return err
	}

	wipBranch := current.WipBranch()

	// A leftover WIP branch is replaced; failure means there was none
	_ = s.store.DeleteBranch(wipBranch)

	if err := s.store.CreateBranch(wipBranch, head.ID); err != nil {
		return err
	}
	if err := s.store.SetHead(wipBranch); err != nil {
		return err
	}

	if state == nil {
		s.log.Debug("stashing work", "branch", current.Name, "wip", wipBranch)
		_, err := s.Commit(ctx, WipMessage, []*git.Commit{head})
		return err
	}

	mergeHead, err := s.store.ResolveCommit(state.Head)
	if err != nil {
		return err
	}

	s.log.Debug("stashing merge", "branch", current.Name, "wip", wipBranch, "mergeHead", mergeHead.ID)
	if _, err := s.Commit(ctx, WipMessage+"\n"+state.Message, []*git.Commit{head, mergeHead}); err != nil {
		return err
	}
	return s.clearMergeState()
}

// RestoreWip brings back the work stashed for the current branch: the working
// tree is forced to the WIP tree, a stashed merge is restarted with its message
// and conflicts, and the WIP branch is deleted. When HEAD is on a WIP branch,
// HEAD first returns to the branch that owns it, which fails while that WIP
// branch has uncommitted changes. It does nothing when there is
// no WIP branch. The index ends up matching the WIP tree.
func (s *Session) RestoreWip(ctx context.Context) error {
	current, err := s.CurrentBranch()
	if err != nil {
		return err
	}

	if current.IsWip() {
		dirty, err := s.store.HasUncommittedChanges(ctx)
		if err != nil {
			return err
		}
		if dirty {
			return metroerrors.NewUnsupportedOperationError(fmt.Sprintf(
				"changes made on %s after saving would be overwritten; commit or discard them first", current.Name))
		}
		s.log.Debug("leaving WIP branch", "wip", current.Name, "branch", current.Owner)
		if err := s.store.CheckoutTree(ctx, current.Owner); err != nil {
			return err
		}
		if err := s.store.SetHead(current.Owner); err != nil {
			return err
		}
	}

	wipBranch := current.WipBranch()
	branch, err := s.store.LookupBranch(wipBranch)
	if err != nil {
		return err
	}
	if branch == nil {
		s.log.Debug("nothing to restore", "branch", current.Owner)
		return nil
	}

	wip, err := s.store.ResolveCommit(branch.Target)
	if err != nil {
		return err
	}

	var conflicts []git.Conflict
	if wip.ParentCount() > 1 {
		conflicts, err = s.restartMerge(ctx, wip)
		if err != nil {
			return err
		}
	}

	s.log.Debug("restoring work", "branch", current.Owner, "wip", wip.ID, "conflicts", len(conflicts))
	if err := s.store.CheckoutTree(ctx, wip.ID); err != nil {
		return err
	}
	if err := s.store.DeleteBranch(wipBranch); err != nil {
		return err
	}
	return s.store.AddConflicts(ctx, conflicts)
}

// restartMerge re-runs the merge a WIP commit stashed, restores its message and
// returns detached copies of its conflicts, which are cleared from the index
func (s *Session) restartMerge(ctx context.Context, wip *git.Commit) ([]git.Conflict, error) {
	mergeHead := wip.Parent(1)
	if err := s.StartMerge(ctx, mergeHead); err != nil {
		return nil, err
	}

	if _, message, ok := strings.Cut(wip.Message, "\n"); ok {
		if err := s.storeMergeState(message); err != nil {
			return nil, err
		}
	}

	conflicts, err := s.store.Conflicts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.CleanupConflicts(ctx); err != nil {
		return nil, err
	}
	return conflicts, nil
}
