package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newAbortCmd creates the abort command
func newAbortCmd() *cobra.Command {
	var (
		force bool
	)

	cmd := &cobra.Command{
		Use:   "abort",
		Short: "Cancel the in-progress merge",
		Long: `Cancels the in-progress merge and resets the working directory to the
last commit of the current branch. Uncommitted changes are discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.AbortAction(ctx, actions.AbortOptions{Force: force})
			})
		},
	}

	// Add flags
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not prompt for confirmation; abort immediately.")

	return cmd
}
