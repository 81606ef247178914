package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "metro",
		Short: "Metro is a command line tool for merging, stashing and switching branches in git",
		Long: `Metro is a command line tool for merging, stashing and switching branches in git.

Uncommitted work, conflicts and in-progress merges follow the branch they were
made on: switching away stashes them on a "<branch>#wip" branch, and switching
back restores them exactly.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print errors.")

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newAbsorbCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newAbortCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newWipCmd())
	rootCmd.AddCommand(newPatchCmd())
	rootCmd.AddCommand(newUncommitCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}
