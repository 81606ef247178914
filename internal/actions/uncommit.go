package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// UncommitOptions contains options for the uncommit command
type UncommitOptions struct {
	Hard  bool
	Force bool
}

// UncommitAction moves the current branch back to the parent of HEAD
func UncommitAction(ctx *runtime.Context, opts UncommitOptions) error {
	head, err := ctx.Engine.Store().HeadCommit()
	if err != nil {
		return err
	}

	if opts.Hard && !opts.Force && tui.IsInteractive() {
		msg := fmt.Sprintf("Delete %s and discard its changes along with any uncommitted work?", ShortID(head.ID))
		confirmed, err := tui.PromptConfirm(msg, false)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			ctx.Splog.Info("Uncommit canceled.")
			return nil
		}
	}

	if err := ctx.Engine.DeleteLastCommit(ctx.Context, opts.Hard); err != nil {
		return fmt.Errorf("failed to uncommit: %w", err)
	}

	ctx.Splog.Info("Removed %s %s", tui.ColorDim(ShortID(head.ID)), Subject(head.Message))
	if !opts.Hard {
		ctx.Splog.Tip("Its changes are still in your working directory.")
	}
	return nil
}
