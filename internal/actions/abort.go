package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// AbortOptions contains options for the abort command
type AbortOptions struct {
	Force bool
}

// AbortAction cancels an in-progress merge
func AbortAction(ctx *runtime.Context, opts AbortOptions) error {
	merging, err := ctx.Engine.IsMerging()
	if err != nil {
		return err
	}
	if !merging {
		ctx.Splog.Info("No merge in progress to abort.")
		return nil
	}

	// Confirm unless force is used
	if !opts.Force && tui.IsInteractive() {
		confirmed, err := tui.PromptConfirm("Abort the merge? Uncommitted changes will be lost.", false)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			ctx.Splog.Info("Abort canceled.")
			return nil
		}
	}

	if err := ctx.Engine.AbortMerge(ctx.Context); err != nil {
		return fmt.Errorf("failed to abort merge: %w", err)
	}
	ctx.Splog.Info("Merge aborted.")
	return nil
}
