package git

import (
	"context"
)

// Store defines the repository primitives the engine orchestrates.
// Repository is the implementation backed by go-git and the git CLI.
type Store interface {
	GetRepoRoot() string

	// Revisions and commits
	ResolveCommit(rev string) (*Commit, error)
	HeadCommit() (*Commit, error)
	CreateCommit(tree string, parents []string, message string) (string, error)
	UpdateHead(commitID string) error

	// Index and working tree
	StageAll(ctx context.Context) error
	WriteTree(ctx context.Context) (string, error)
	HasUncommittedChanges(ctx context.Context) (bool, error)
	ChangedPaths(ctx context.Context) ([]string, error)
	EntryCount(ctx context.Context) (int, error)
	CheckoutTree(ctx context.Context, rev string) error
	HardReset(ctx context.Context, sha string) error
	SoftReset(ctx context.Context, sha string) error

	// Conflicts
	Conflicts(ctx context.Context) ([]Conflict, error)
	HasConflicts(ctx context.Context) (bool, error)
	CleanupConflicts(ctx context.Context) error
	AddConflicts(ctx context.Context, conflicts []Conflict) error

	// Merging
	MergeAnalysis(otherID string) (MergeAnalysis, error)
	Merge(ctx context.Context, commitID string) error
	ReadMergeState() (MergeFiles, bool, error)
	WriteMergeMessage(message string) error
	CleanupState() error

	// Branches and HEAD
	Branches() ([]Branch, error)
	LookupBranch(name string) (*Branch, error)
	CreateBranch(name string, commitID string) error
	DeleteBranch(name string) error
	SetHead(name string) error
}

var _ Store = (*Repository)(nil)
