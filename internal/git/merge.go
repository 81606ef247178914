package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// Files that make up git's merge state inside the git dir
const (
	mergeHeadFile = "MERGE_HEAD"
	mergeMsgFile  = "MERGE_MSG"
	mergeModeFile = "MERGE_MODE"
	autoMergeFile = "AUTO_MERGE"
)

// MergeAnalysis reports how the commit otherID relates to HEAD
func (r *Repository) MergeAnalysis(otherID string) (MergeAnalysis, error) {
	headRef, err := r.Reference(plumbing.HEAD, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return MergeAnalysisFastForward | MergeAnalysisUnborn, nil
	}
	if err != nil {
		return MergeAnalysisNone, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	head, err := r.CommitObject(headRef.Hash())
	if err != nil {
		return MergeAnalysisNone, fmt.Errorf("failed to load HEAD commit: %w", err)
	}
	other, err := r.CommitObject(plumbing.NewHash(otherID))
	if err != nil {
		return MergeAnalysisNone, fmt.Errorf("failed to load commit %s: %w", otherID, err)
	}

	if head.Hash == other.Hash {
		return MergeAnalysisUpToDate, nil
	}
	contained, err := other.IsAncestor(head)
	if err != nil {
		return MergeAnalysisNone, fmt.Errorf("failed to compare %s with HEAD: %w", otherID, err)
	}
	if contained {
		return MergeAnalysisUpToDate, nil
	}

	fastForward, err := head.IsAncestor(other)
	if err != nil {
		return MergeAnalysisNone, fmt.Errorf("failed to compare HEAD with %s: %w", otherID, err)
	}
	if fastForward {
		return MergeAnalysisNormal | MergeAnalysisFastForward, nil
	}
	return MergeAnalysisNormal, nil
}

// Merge merges commitID into the index and working tree without committing.
// Conflicts are not an error: they are left in the index with markers in the
// working tree and MERGE_HEAD is written either way.
//
// git refuses to merge over a dirty index, so staged changes are unstaged
// first. They stay in the working tree and are picked up by the next commit.
func (r *Repository) Merge(ctx context.Context, commitID string) error {
	if _, err := r.runner.Run(ctx, "reset", "-q", "--mixed", "HEAD"); err != nil {
		return fmt.Errorf("failed to unstage changes before merging %s: %w", commitID, err)
	}

	_, err := r.runner.Run(ctx, "merge", "--no-commit", "--no-ff", "--no-edit", commitID)
	if err == nil {
		return nil
	}

	// A conflicted merge exits non-zero but leaves the merge in progress
	if _, ok, stateErr := r.ReadMergeState(); stateErr == nil && ok {
		return nil
	}
	return fmt.Errorf("failed to merge %s: %w", commitID, err)
}

// ReadMergeState returns the merge head id and message. ok is false when no merge is in progress.
func (r *Repository) ReadMergeState() (state MergeFiles, ok bool, err error) {
	data, err := os.ReadFile(filepath.Join(r.gitDir, mergeHeadFile))
	if errors.Is(err, os.ErrNotExist) {
		return MergeFiles{}, false, nil
	}
	if err != nil {
		return MergeFiles{}, false, fmt.Errorf("failed to read merge head: %w", err)
	}

	head := strings.TrimSpace(string(data))
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = strings.TrimSpace(head[:i])
	}
	if head == "" {
		return MergeFiles{}, false, nil
	}

	msg, err := os.ReadFile(filepath.Join(r.gitDir, mergeMsgFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return MergeFiles{}, false, fmt.Errorf("failed to read merge message: %w", err)
	}

	return MergeFiles{Head: head, Message: string(msg)}, true, nil
}

// MergeFiles is the persisted merge state
type MergeFiles struct {
	Head    string
	Message string
}

// WriteMergeMessage replaces the stored merge message
func (r *Repository) WriteMergeMessage(message string) error {
	if err := os.WriteFile(filepath.Join(r.gitDir, mergeMsgFile), []byte(message), 0600); err != nil {
		return fmt.Errorf("failed to write merge message: %w", err)
	}
	return nil
}

// CleanupState removes the merge head marker, the merge message and their companions.
// The index and working tree are left as they are.
func (r *Repository) CleanupState() error {
	for _, name := range []string{mergeHeadFile, mergeMsgFile, mergeModeFile, autoMergeFile} {
		err := os.Remove(filepath.Join(r.gitDir, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	return nil
}
