package actions

import (
	"fmt"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// SwitchOptions contains options for the switch command
type SwitchOptions struct {
	BranchName string
}

// SwitchAction stashes work on the current branch and checks out another one
func SwitchAction(ctx *runtime.Context, opts SwitchOptions) error {
	name := opts.BranchName
	if name == "" {
		if !tui.IsInteractive() {
			return fmt.Errorf("branch name is required when not running interactively")
		}
		selected, err := selectBranch(ctx)
		if err != nil {
			return err
		}
		name = selected
	}

	current, err := ctx.Engine.CurrentBranch()
	if err == nil && current.Name == name {
		ctx.Splog.Info("Already on %s.", tui.ColorBranchName(name))
		return nil
	}

	if err := ctx.Engine.SwitchBranch(ctx.Context, name); err != nil {
		return fmt.Errorf("failed to switch to %s: %w", name, err)
	}

	ctx.Splog.Info("Switched to %s.", tui.ColorBranchName(name))
	if err == nil {
		if stashed, _ := ctx.Engine.Store().LookupBranch(current.WipBranch()); stashed != nil {
			ctx.Splog.Tip("Work on %s was stashed; switch back to restore it.", current.Name)
		}
	}
	return nil
}

func selectBranch(ctx *runtime.Context) (string, error) {
	branches, err := ctx.Engine.Branches(ctx.Context)
	if err != nil {
		return "", err
	}
	choices, initial := tui.BranchChoices(branches)
	if len(choices) == 0 {
		return "", fmt.Errorf("no branches to switch to")
	}
	if initial < 0 {
		initial = 0
	}
	return tui.PromptBranchSelection("Switch to branch:", choices, initial)
}
