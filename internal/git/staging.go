package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files, honouring ignore rules.
// Conflicted paths are collapsed to a single stage-0 entry holding the working
// tree content, conflict markers included.
func (r *Repository) StageAll(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// WriteTree writes the index as a tree object and returns its id.
// The index itself is already persisted by the staging commands.
func (r *Repository) WriteTree(ctx context.Context) (string, error) {
	tree, err := r.runner.Run(ctx, "write-tree")
	if err != nil {
		return "", fmt.Errorf("failed to write tree: %w", err)
	}
	return tree, nil
}

// HasUncommittedChanges checks for differences between HEAD, the index and the
// working tree, untracked files included
func (r *Repository) HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return false, fmt.Errorf("failed to check status: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// ChangedPaths returns the porcelain status lines of the working tree
func (r *Repository) ChangedPaths(ctx context.Context) ([]string, error) {
	// Raw output: the leading status column may be a space
	output, err := r.runner.RunRaw(ctx, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, fmt.Errorf("failed to check status: %w", err)
	}
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// EntryCount returns the number of entries in the index, conflict stages included
func (r *Repository) EntryCount(ctx context.Context) (int, error) {
	output, err := r.runner.RunRaw(ctx, "ls-files", "--stage", "-z")
	if err != nil {
		return 0, fmt.Errorf("failed to list index: %w", err)
	}
	count := 0
	for _, record := range strings.Split(output, "\x00") {
		if record != "" {
			count++
		}
	}
	return count, nil
}
