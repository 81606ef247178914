package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message string
		parents []string
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit every change in the working directory",
		Long: `Commits every change in the working directory, including untracked files,
on top of the current branch.

If no message is provided and the terminal is interactive, you will be prompted for one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, actions.CommitOptions{
					Message: message,
					Parents: parents,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "The commit message.")
	cmd.Flags().StringSliceVarP(&parents, "parent", "p", nil, "Revisions to use as parents instead of HEAD. Repeat for several.")

	return cmd
}
