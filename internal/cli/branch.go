package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "Create a branch at the current commit",
		Long: `Creates a branch pointing at the current commit without switching to it.
Names ending in "#wip" are reserved for stashed work.

If no name is provided, one is generated from the current commit's subject.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateBranchAction(ctx, name)
			})
		},
	}

	return cmd
}

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branches",
		Aliases: []string{"ls"},
		Short:   "List branches and the ones with stashed work",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ListBranchesAction)
		},
	}

	return cmd
}
