package runtime

import (
	"context"
	"fmt"
	"os"

	"metro.dev/metro/internal/config"
	"metro.dev/metro/internal/engine"
	"metro.dev/metro/internal/tui"
)

// Context provides access to the engine session and output for commands
type Context struct {
	Context  context.Context
	Engine   *engine.Session
	Splog    *tui.Splog
	RepoRoot string
	Config   *config.RepoConfig
}

// NewContext creates a new context around an open session
func NewContext(session *engine.Session, splog *tui.Splog) *Context {
	return &Context{
		Context:  context.Background(),
		Engine:   session,
		Splog:    splog,
		RepoRoot: session.RepoRoot(),
	}
}

// NewSplog creates the command logger, logging to the rotating log file when it can be opened
func NewSplog() *tui.Splog {
	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		return tui.NewSplog()
	}
	return splog
}

// SessionOptions returns the engine options derived from configuration
func SessionOptions(cfg *config.RepoConfig, splog *tui.Splog) ([]engine.Option, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	return []engine.Option{
		engine.WithLogger(splog.Logger()),
		engine.WithSignature(cfg.Signature.Name, cfg.Signature.Email),
		engine.WithCommandTimeout(timeout),
	}, nil
}

// GetContext opens the repository containing the working directory
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	splog := NewSplog()

	session, err := engine.Open(wd)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	// Reopen with the repository's configuration applied
	cfg, err := config.Load(session.RepoRoot())
	if err != nil {
		return nil, err
	}
	opts, err := SessionOptions(cfg, splog)
	if err != nil {
		return nil, err
	}
	session, err = engine.Open(session.RepoRoot(), opts...)
	if err != nil {
		return nil, err
	}

	return &Context{
		Context:  ctx,
		Engine:   session,
		Splog:    splog,
		RepoRoot: session.RepoRoot(),
		Config:   cfg,
	}, nil
}
