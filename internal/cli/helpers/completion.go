package helpers

import (
	"os"

	"github.com/spf13/cobra"

	"metro.dev/metro/internal/engine"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns the
// switchable branch names in the repository. WIP branches are left out.
func CompleteBranches(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	session, err := engine.Open(wd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := session.Store().Branches()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(branches))
	for _, b := range branches {
		if engine.ParseBranchName(b.Name).IsWip() {
			continue
		}
		names = append(names, b.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
