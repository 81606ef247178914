package actions

import (
	"context"
	"fmt"
	"path/filepath"

	"metro.dev/metro/internal/config"
	"metro.dev/metro/internal/engine"
	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// InitOptions contains options for the init command
type InitOptions struct {
	Path          string
	DefaultBranch string
	Name          string
	Email         string
}

// InitAction creates a repository with an initial commit and records its configuration
func InitAction(ctx context.Context, splog *tui.Splog, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = "."
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	// Environment overrides still apply before the repository exists
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if opts.DefaultBranch != "" {
		cfg.DefaultBranch = opts.DefaultBranch
	}
	if opts.Name != "" || opts.Email != "" {
		cfg.Signature = config.Signature{Name: opts.Name, Email: opts.Email}
	}

	sessionOpts, err := runtime.SessionOptions(cfg, splog)
	if err != nil {
		return err
	}
	session, err := engine.Create(ctx, path, cfg.DefaultBranch, sessionOpts...)
	if err != nil {
		return err
	}

	if err := config.SetDefaultBranch(session.RepoRoot(), cfg.DefaultBranch); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if opts.Name != "" || opts.Email != "" {
		if err := config.SetSignature(session.RepoRoot(), opts.Name, opts.Email); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	}

	splog.Info("Initialized repository in %s on %s.", path, tui.ColorBranchName(cfg.DefaultBranch))
	return nil
}
