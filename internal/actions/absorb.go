package actions

import (
	"errors"
	"fmt"

	"metro.dev/metro/internal/engine"
	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// AbsorbOptions contains options for the absorb command
type AbsorbOptions struct {
	Revision string
}

// AbsorbAction merges a revision into the current branch
func AbsorbAction(ctx *runtime.Context, opts AbsorbOptions) error {
	result, err := ctx.Engine.Absorb(ctx.Context, opts.Revision)
	if errors.Is(err, metroerrors.ErrUnnecessaryMerge) {
		ctx.Splog.Info("%s is already contained in the current branch.", tui.ColorBranchName(opts.Revision))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to absorb %s: %w", opts.Revision, err)
	}

	if result == engine.AbsorbConflicts {
		conflicts, err := ctx.Engine.Conflicts(ctx.Context)
		if err != nil {
			return err
		}
		ctx.Splog.Info("%s", tui.ColorRed(fmt.Sprintf("Hit conflicts absorbing %s", opts.Revision)))
		ctx.Splog.Newline()
		PrintConflictStatus(ctx.Context, conflicts, ctx.Splog)
		return nil
	}

	head, err := ctx.Engine.Store().HeadCommit()
	if err != nil {
		return err
	}
	return reportCommit(ctx, "Absorbed into", head.ID)
}
