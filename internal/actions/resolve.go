package actions

import (
	"errors"
	"fmt"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/runtime"
)

// ResolveAction commits the in-progress merge
func ResolveAction(ctx *runtime.Context) error {
	id, err := ctx.Engine.Resolve(ctx.Context)
	if errors.Is(err, metroerrors.ErrNotMerging) {
		ctx.Splog.Info("No merge in progress to resolve.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve merge: %w", err)
	}
	return reportCommit(ctx, "Resolved", id)
}
