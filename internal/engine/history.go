package engine

import (
	"context"

	metroerrors "metro.dev/metro/internal/errors"
)

// DeleteLastCommit moves the current branch back to the first parent of HEAD.
// A hard delete also forces the index and working tree to that commit; a soft
// delete leaves them untouched.
func (s *Session) DeleteLastCommit(ctx context.Context, hard bool) error {
	head, err := s.store.HeadCommit()
	if err != nil {
		return err
	}
	if head.ParentCount() == 0 {
		return metroerrors.NewUnsupportedOperationError("cannot delete the initial commit")
	}

	parent := head.Parent(0)
	s.log.Debug("deleting last commit", "commit", head.ID, "parent", parent, "hard", hard)
	if hard {
		return s.store.HardReset(ctx, parent)
	}
	return s.store.SoftReset(ctx, parent)
}

// Patch replaces the last commit with one holding the current working tree and
// message, keeping the original parents. It returns the new commit id.
func (s *Session) Patch(ctx context.Context, message string) (string, error) {
	if err := s.requireNotMerging(); err != nil {
		return "", err
	}

	head, err := s.store.HeadCommit()
	if err != nil {
		return "", err
	}
	parents, err := s.resolveAll(head.Parents)
	if err != nil {
		return "", err
	}

	if err := s.DeleteLastCommit(ctx, false); err != nil {
		return "", err
	}
	return s.Commit(ctx, message, parents)
}
