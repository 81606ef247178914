package git

import (
	"context"
	"fmt"
)

// HardReset moves the current branch to sha and forces the index and working tree to match
func (r *Repository) HardReset(ctx context.Context, sha string) error {
	_, err := r.runner.Run(ctx, "reset", "-q", "--hard", sha)
	if err != nil {
		return fmt.Errorf("failed to hard reset to %s: %w", sha, err)
	}
	return nil
}

// SoftReset moves the current branch to sha, leaving the index and working tree untouched
func (r *Repository) SoftReset(ctx context.Context, sha string) error {
	_, err := r.runner.Run(ctx, "reset", "-q", "--soft", sha)
	if err != nil {
		return fmt.Errorf("failed to soft reset to %s: %w", sha, err)
	}
	return nil
}

// CheckoutTree forces the index and working tree to match the tree of rev without
// moving HEAD. Paths tracked in the index but absent from the tree are removed;
// untracked files not in the tree are left alone.
func (r *Repository) CheckoutTree(ctx context.Context, rev string) error {
	commit, err := r.ResolveCommit(rev)
	if err != nil {
		return err
	}
	_, err = r.runner.Run(ctx, "read-tree", "--reset", "-u", commit.Tree)
	if err != nil {
		return fmt.Errorf("failed to checkout tree of %s: %w", rev, err)
	}
	return nil
}
