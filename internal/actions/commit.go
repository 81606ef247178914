package actions

import (
	"fmt"
	"strings"

	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
	"metro.dev/metro/internal/utils"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Message string
	// Parents overrides the parents of the new commit; HEAD when empty
	Parents []string
}

// CommitAction records the working directory as a new commit
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	message := opts.Message
	if message == "" {
		piped, err := utils.ReadFromStdin()
		if err != nil {
			return fmt.Errorf("failed to read commit message: %w", err)
		}
		message = piped
	}
	if message == "" {
		if !tui.IsInteractive() {
			return fmt.Errorf("a commit message is required (use -m)")
		}
		var err error
		message, err = tui.PromptTextInput("Commit message:", "")
		if err != nil {
			return fmt.Errorf("failed to get commit message: %w", err)
		}
		if strings.TrimSpace(message) == "" {
			return fmt.Errorf("aborting commit due to empty commit message")
		}
	}

	var id string
	var err error
	if len(opts.Parents) > 0 {
		id, err = ctx.Engine.CommitRevisions(ctx.Context, message, opts.Parents...)
	} else {
		id, err = ctx.Engine.CommitOnHead(ctx.Context, message)
	}
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return reportCommit(ctx, "Committed", id)
}
