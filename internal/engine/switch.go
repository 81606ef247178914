package engine

import (
	"context"
	"fmt"

	metroerrors "metro.dev/metro/internal/errors"
)

// SwitchBranch moves to branch name, stashing the current work on the current
// branch's WIP branch and restoring whatever was stashed for the target.
// The steps are not atomic; running SwitchBranch again is the way to recover
// from a failure part way through.
func (s *Session) SwitchBranch(ctx context.Context, name string) error {
	if err := rejectWip(name, "switch to"); err != nil {
		return err
	}

	target, err := s.store.LookupBranch(name)
	if err != nil {
		return err
	}
	if target == nil {
		return metroerrors.NewBranchNotFoundError(name)
	}

	if err := s.SaveWip(ctx); err != nil {
		return fmt.Errorf("failed to stash work: %w", err)
	}

	s.log.Debug("switching branch", "branch", name, "commit", target.Target)
	if err := s.store.CheckoutTree(ctx, target.Target); err != nil {
		return err
	}
	if err := s.store.SetHead(name); err != nil {
		return err
	}

	if err := s.RestoreWip(ctx); err != nil {
		return fmt.Errorf("failed to restore work on %s: %w", name, err)
	}
	return nil
}
