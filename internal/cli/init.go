package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		defaultBranch string
		name          string
		email         string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a repository with an initial commit",
		Long: `Creates a git repository at path (the current directory by default)
and records an initial commit on the default branch.

The default branch and the fallback commit signature are saved in the
repository's metro configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			splog := helpers.NewSplog(cmd)
			defer func() { _ = splog.Close() }()

			return actions.InitAction(cmd.Context(), splog, actions.InitOptions{
				Path:          path,
				DefaultBranch: defaultBranch,
				Name:          name,
				Email:         email,
			})
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&defaultBranch, "default-branch", "b", "", "Name of the initial branch.")
	cmd.Flags().StringVar(&name, "name", "", "Author name used when git config has no user.")
	cmd.Flags().StringVar(&email, "email", "", "Author email used when git config has no user.")

	return cmd
}
