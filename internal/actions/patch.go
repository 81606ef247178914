package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// PatchOptions contains options for the patch command
type PatchOptions struct {
	Message string
}

// PatchAction replaces the last commit with one holding the working directory
func PatchAction(ctx *runtime.Context, opts PatchOptions) error {
	head, err := ctx.Engine.Store().HeadCommit()
	if err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message = head.Message
		if tui.IsInteractive() {
			edited, err := tui.OpenEditor(head.Message, "metro-patch-*.txt")
			if err != nil {
				return fmt.Errorf("failed to edit commit message: %w", err)
			}
			message = tui.CleanMessage(edited)
			if message == "" {
				return fmt.Errorf("aborting patch due to empty commit message")
			}
		}
	}

	id, err := ctx.Engine.Patch(ctx.Context, message)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", ShortID(head.ID), err)
	}
	return reportCommit(ctx, "Patched", id)
}
