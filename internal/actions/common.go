package actions

import (
	"context"

	"metro.dev/metro/internal/git"
	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

const shortIDLength = 7

// ShortID abbreviates a commit id for display
func ShortID(id string) string {
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

// Subject returns the first line of a commit message
func Subject(message string) string {
	for i, r := range message {
		if r == '\n' {
			return message[:i]
		}
	}
	return message
}

// PrintConflictStatus displays the conflicted paths and how to finish the merge
func PrintConflictStatus(_ context.Context, conflicts []git.Conflict, splog *tui.Splog) {
	splog.Info("%s", tui.ColorYellow("Unmerged paths:"))
	for _, c := range conflicts {
		splog.Info("  %s", tui.ColorConflict(c.Path))
	}
	splog.Newline()
	splog.Info("%s", tui.ColorYellow("To finish the merge:"))
	splog.Info("(1) resolve the listed conflicts in your editor")
	splog.Info("(2) run %s to commit the merge", tui.ColorCyan("metro resolve"))
	splog.Info("It's safe to cancel the merge with %s.", tui.ColorCyan("metro abort"))
}

func reportCommit(ctx *runtime.Context, verb string, id string) error {
	commit, err := ctx.Engine.Store().ResolveCommit(id)
	if err != nil {
		return err
	}
	ctx.Splog.Info("%s %s %s", verb, tui.ColorDim(ShortID(commit.ID)), Subject(commit.Message))
	return nil
}
