package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
	"metro.dev/metro/internal/runtime"
)

// newPatchCmd creates the patch command
func newPatchCmd() *cobra.Command {
	var (
		message string
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Replace the last commit with the working directory",
		Long: `Replaces the last commit with a new one holding the working directory,
keeping its parents.

If no message is provided, the last commit's message opens in your editor when
the terminal is interactive, and is reused as-is otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PatchAction(ctx, actions.PatchOptions{Message: message})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "The new commit message.")

	return cmd
}
