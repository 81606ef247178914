package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
	"metro.dev/metro/internal/utils"
)

// CreateBranchAction creates a branch at HEAD without switching to it.
// Without a name, the branch is named after the subject of HEAD's commit.
func CreateBranchAction(ctx *runtime.Context, name string) error {
	if name == "" {
		head, err := ctx.Engine.Store().HeadCommit()
		if err != nil {
			return err
		}
		name = utils.GenerateBranchNameFromMessage(head.Message)
		if name == "" {
			return fmt.Errorf("cannot derive a branch name from %s; pass one explicitly", ShortID(head.ID))
		}
	}

	if err := ctx.Engine.CreateBranch(ctx.Context, name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	ctx.Splog.Info("Created branch %s.", tui.ColorBranchName(name))
	return nil
}

// ListBranchesAction prints local branches, marking the current one and stashed work
func ListBranchesAction(ctx *runtime.Context) error {
	branches, err := ctx.Engine.Branches(ctx.Context)
	if err != nil {
		return err
	}
	for _, b := range branches {
		marker := " "
		if b.IsCurrent {
			marker = "*"
		}
		ctx.Splog.Info("%s %s", marker, tui.FormatBranch(b))
	}
	return nil
}
