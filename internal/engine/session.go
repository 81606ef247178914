package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/git"
)

// InitialCommitMessage is the message of the first commit of a created repository
const InitialCommitMessage = "Create repository"

// Session drives one repository. It is not safe for concurrent use.
type Session struct {
	store git.Store
	log   *slog.Logger
}

type options struct {
	logger         *slog.Logger
	signatureName  string
	signatureEmail string
	commandTimeout time.Duration
}

// Option configures a Session
type Option func(*options)

// WithLogger sets the logger protocol steps are reported to at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSignature sets the identity used when git config has no user
func WithSignature(name, email string) Option {
	return func(o *options) {
		o.signatureName = name
		o.signatureEmail = email
	}
}

// WithCommandTimeout bounds git CLI invocations made without a context deadline
func WithCommandTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.commandTimeout = timeout
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// NewSession creates a session over an existing store
func NewSession(store git.Store, opts ...Option) *Session {
	o := buildOptions(opts)
	return &Session{store: store, log: o.logger}
}

// Open opens the repository containing path
func Open(path string, opts ...Option) (*Session, error) {
	repo, err := git.OpenRepository(path)
	if err != nil {
		return nil, err
	}
	return newRepositorySession(repo, opts), nil
}

// Create initialises a repository at path on defaultBranch and records the
// initial commit. It fails with ErrRepositoryExists when path already has one.
func Create(ctx context.Context, path string, defaultBranch string, opts ...Option) (*Session, error) {
	repo, err := git.InitRepository(path, defaultBranch)
	if err != nil {
		return nil, err
	}

	s := newRepositorySession(repo, opts)
	s.log.Debug("created repository", "path", repo.GetRepoRoot(), "branch", defaultBranch)

	if _, err := s.Commit(ctx, InitialCommitMessage, nil); err != nil {
		return nil, fmt.Errorf("failed to create initial commit: %w", err)
	}
	return s, nil
}

func newRepositorySession(repo *git.Repository, opts []Option) *Session {
	o := buildOptions(opts)
	repo.SetFallbackSignature(o.signatureName, o.signatureEmail)
	repo.Runner().SetTimeout(o.commandTimeout)
	return &Session{store: repo, log: o.logger}
}

// Store returns the underlying versioned store
func (s *Session) Store() git.Store {
	return s.store
}

// RepoRoot returns the root of the working tree
func (s *Session) RepoRoot() string {
	return s.store.GetRepoRoot()
}

// MergeState is an in-progress merge: the commit being merged and the message
// the merge commit will carry
type MergeState struct {
	Head    string
	Message string
}

// LoadMergeState returns the in-progress merge, or nil when not merging.
// The merge head marker in the git dir is the only source of truth.
func (s *Session) LoadMergeState() (*MergeState, error) {
	files, ok, err := s.store.ReadMergeState()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &MergeState{Head: files.Head, Message: files.Message}, nil
}

// IsMerging reports whether a merge is in progress
func (s *Session) IsMerging() (bool, error) {
	state, err := s.LoadMergeState()
	if err != nil {
		return false, err
	}
	return state != nil, nil
}

// storeMergeState replaces the message of the in-progress merge
func (s *Session) storeMergeState(message string) error {
	return s.store.WriteMergeMessage(message)
}

func (s *Session) clearMergeState() error {
	return s.store.CleanupState()
}

// MergeStatus is the state of the merge controller
type MergeStatus int

const (
	// MergeStatusClean means no merge is in progress
	MergeStatusClean MergeStatus = iota
	// MergeStatusMerging means a merge is in progress with every conflict resolved
	MergeStatusMerging
	// MergeStatusConflicted means a merge is in progress with conflicts in the index
	MergeStatusConflicted
)

func (m MergeStatus) String() string {
	switch m {
	case MergeStatusClean:
		return "clean"
	case MergeStatusMerging:
		return "merging"
	case MergeStatusConflicted:
		return "merging with conflicts"
	default:
		return fmt.Sprintf("MergeStatus(%d)", int(m))
	}
}

// MergeStatus reports whether a merge is in progress and whether it has conflicts
func (s *Session) MergeStatus(ctx context.Context) (MergeStatus, error) {
	merging, err := s.IsMerging()
	if err != nil {
		return MergeStatusClean, err
	}
	if !merging {
		return MergeStatusClean, nil
	}

	conflicted, err := s.store.HasConflicts(ctx)
	if err != nil {
		return MergeStatusClean, err
	}
	if conflicted {
		return MergeStatusConflicted, nil
	}
	return MergeStatusMerging, nil
}

// requireNotMerging fails with ErrCurrentlyMerging when a merge is in progress
func (s *Session) requireNotMerging() error {
	merging, err := s.IsMerging()
	if err != nil {
		return err
	}
	if merging {
		return metroerrors.ErrCurrentlyMerging
	}
	return nil
}
