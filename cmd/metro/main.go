package main

import (
	"os"

	"metro.dev/metro/internal/cli"
	"metro.dev/metro/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		tui.NewSplog().Error("%v", err)
		os.Exit(1)
	}
}
