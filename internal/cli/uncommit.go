package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newUncommitCmd creates the uncommit command
func newUncommitCmd() *cobra.Command {
	var (
		hard  bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "uncommit",
		Short: "Move the current branch back to the parent of the last commit",
		Long: `Moves the current branch back to the first parent of the last commit.

By default the working directory is left untouched, so the commit's changes
become uncommitted changes. With --hard the working directory and index are
reset as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.UncommitAction(ctx, actions.UncommitOptions{Hard: hard, Force: force})
			})
		},
	}

	// Add flags
	cmd.Flags().BoolVar(&hard, "hard", false, "Discard the commit's changes and any uncommitted work.")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not prompt for confirmation with --hard.")

	return cmd
}
