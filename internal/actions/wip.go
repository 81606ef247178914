package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// WipSaveAction stashes the working directory, conflicts and merge state
// of the current branch onto its WIP branch
func WipSaveAction(ctx *runtime.Context) error {
	current, err := ctx.Engine.CurrentBranch()
	if err != nil {
		return err
	}
	wipBranch := current.WipBranch()

	before, err := ctx.Engine.Store().LookupBranch(wipBranch)
	if err != nil {
		return err
	}
	if err := ctx.Engine.SaveWip(ctx.Context); err != nil {
		return fmt.Errorf("failed to save work in progress: %w", err)
	}
	after, err := ctx.Engine.Store().LookupBranch(wipBranch)
	if err != nil {
		return err
	}

	if after == nil || (before != nil && before.Target == after.Target) {
		ctx.Splog.Info("Nothing to save.")
		if after != nil {
			ctx.Splog.Warn("%s still holds work saved earlier; run %s on %s to bring it back.",
				tui.ColorWip(wipBranch), tui.ColorCyan("metro wip restore"), tui.ColorBranchName(current.Owner))
		}
		return nil
	}
	ctx.Splog.Info("Saved work in progress to %s.", tui.ColorWip(wipBranch))
	ctx.Splog.Tip("Run %s to bring it back.", tui.ColorCyan("metro wip restore"))
	return nil
}

// WipRestoreAction brings back work stashed for the current branch
func WipRestoreAction(ctx *runtime.Context) error {
	current, err := ctx.Engine.CurrentBranch()
	if err != nil {
		return err
	}
	owner := current.Owner

	stashed, err := ctx.Engine.Store().LookupBranch(current.WipBranch())
	if err != nil {
		return err
	}
	if stashed == nil {
		ctx.Splog.Info("No work in progress saved for %s.", tui.ColorBranchName(owner))
		return nil
	}

	if err := ctx.Engine.RestoreWip(ctx.Context); err != nil {
		return fmt.Errorf("failed to restore work in progress: %w", err)
	}
	ctx.Splog.Info("Restored work in progress on %s.", tui.ColorBranchName(owner))

	conflicts, err := ctx.Engine.Conflicts(ctx.Context)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		ctx.Splog.Newline()
		PrintConflictStatus(ctx.Context, conflicts, ctx.Splog)
	}
	return nil
}
