package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch [branch]",
		Aliases: []string{"sw"},
		Short:   "Switch to a branch. If no branch is provided, opens an interactive selector.",
		Long: `Switches to a branch, carrying your work along with the branch it belongs to.

Uncommitted changes, conflicts and any in-progress merge on the current branch
are stashed on "<branch>#wip". Work previously stashed for the target branch is
restored. If no branch is provided, opens an interactive selector.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			branchName := ""
			if len(args) > 0 {
				branchName = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SwitchAction(ctx, actions.SwitchOptions{BranchName: branchName})
			})
		},
	}

	return cmd
}
