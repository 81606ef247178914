package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newAbsorbCmd creates the absorb command
func newAbsorbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absorb <revision>",
		Short: "Merge a revision into the current branch",
		Long: `Merges a branch or commit into the current branch.

A clean merge is committed right away. When the merge conflicts it is left in
progress: fix the conflicts, then run "metro resolve" to commit it or
"metro abort" to cancel it. Switching branches in the middle of a merge stashes
it with the rest of your work.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.AbsorbAction(ctx, actions.AbsorbOptions{Revision: args[0]})
			})
		},
	}

	return cmd
}
