package cli

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/actions"
	"metro.dev/metro/internal/cli/helpers"
)

// newWipCmd creates the wip command and its subcommands
func newWipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wip",
		Short: "Save or restore work in progress for the current branch",
		Long: `Work in progress is kept on a branch named "<branch>#wip". It holds the
working directory, unresolved conflicts and any in-progress merge.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Stash work in progress and leave HEAD on the WIP branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.WipSaveAction)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore",
		Short: "Restore work stashed for the current branch",
		Long: `Restores work stashed for the current branch. Run on a WIP branch, it
returns HEAD to the branch that owns it first; this is refused while the WIP
branch has uncommitted changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.WipRestoreAction)
		},
	})

	return cmd
}
