package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
)

// newResolveCmd creates the resolve command
func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Commit the in-progress merge",
		Long: `Commits the in-progress merge with the working directory as it is now.
Any remaining conflict markers are committed as file content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ResolveAction)
		},
	}

	return cmd
}
