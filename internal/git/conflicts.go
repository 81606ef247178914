package git

import (
	"context"
	"fmt"
	"strings"
)

const zeroID = "0000000000000000000000000000000000000000"

// Conflicts returns a detached copy of every conflicted path in the index, ordered by path
func (r *Repository) Conflicts(ctx context.Context) ([]Conflict, error) {
	output, err := r.runner.RunRaw(ctx, "ls-files", "--unmerged", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	return parseUnmerged(output)
}

// HasConflicts reports whether the index holds any conflict entries
func (r *Repository) HasConflicts(ctx context.Context) (bool, error) {
	conflicts, err := r.Conflicts(ctx)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// parseUnmerged parses NUL separated "<mode> <object> <stage>\t<path>" records
func parseUnmerged(output string) ([]Conflict, error) {
	var conflicts []Conflict
	index := map[string]int{}

	for _, record := range strings.Split(output, "\x00") {
		if record == "" {
			continue
		}
		meta, path, ok := strings.Cut(record, "\t")
		if !ok {
			return nil, fmt.Errorf("malformed index record %q", record)
		}
		fields := strings.Fields(meta)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed index record %q", record)
		}

		i, seen := index[path]
		if !seen {
			conflicts = append(conflicts, Conflict{Path: path})
			i = len(conflicts) - 1
			index[path] = i
		}

		entry := &IndexEntry{Mode: fields[0], ID: fields[1]}
		switch fields[2] {
		case "1":
			conflicts[i].Ancestor = entry
		case "2":
			conflicts[i].Ours = entry
		case "3":
			conflicts[i].Theirs = entry
		default:
			return nil, fmt.Errorf("unexpected stage %s for %s", fields[2], path)
		}
	}
	return conflicts, nil
}

// CleanupConflicts removes every conflict entry from the index and persists it.
// The conflicted paths end up absent from the index.
func (r *Repository) CleanupConflicts(ctx context.Context) error {
	conflicts, err := r.Conflicts(ctx)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return nil
	}

	var b strings.Builder
	for _, c := range conflicts {
		writeRemoval(&b, c.Path)
	}
	if _, err := r.runner.RunWithInput(ctx, b.String(), "update-index", "-z", "--index-info"); err != nil {
		return fmt.Errorf("failed to clear conflicts: %w", err)
	}
	return nil
}

// AddConflicts inserts the given conflicts into the index, replacing whatever
// entries their paths had, and persists the index
func (r *Repository) AddConflicts(ctx context.Context, conflicts []Conflict) error {
	if len(conflicts) == 0 {
		return nil
	}

	var b strings.Builder
	for _, c := range conflicts {
		writeRemoval(&b, c.Path)
		writeStage(&b, c.Path, c.Ancestor, 1)
		writeStage(&b, c.Path, c.Ours, 2)
		writeStage(&b, c.Path, c.Theirs, 3)
	}
	if _, err := r.runner.RunWithInput(ctx, b.String(), "update-index", "-z", "--index-info"); err != nil {
		return fmt.Errorf("failed to restore conflicts: %w", err)
	}
	return nil
}

// writeRemoval emits a mode 0 record, which drops every stage of the path
func writeRemoval(b *strings.Builder, path string) {
	fmt.Fprintf(b, "0 %s\t%s\x00", zeroID, path)
}

func writeStage(b *strings.Builder, path string, entry *IndexEntry, stage int) {
	if entry == nil {
		return
	}
	fmt.Fprintf(b, "%s %s %d\t%s\x00", entry.Mode, entry.ID, stage, path)
}
