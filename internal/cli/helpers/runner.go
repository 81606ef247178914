// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()
	applyQuiet(cmd, ctx.Splog)
	return fn(ctx)
}

// NewSplog creates the logger for commands that run outside a repository
func NewSplog(cmd *cobra.Command) *tui.Splog {
	splog := runtime.NewSplog()
	applyQuiet(cmd, splog)
	return splog
}

// applyQuiet silences console output when --quiet was given
func applyQuiet(cmd *cobra.Command, splog *tui.Splog) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		splog.SetQuiet(true)
	}
}
