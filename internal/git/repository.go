package git

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"

	metroerrors "metro.dev/metro/internal/errors"
)

// DotGit is the name of the git directory inside a working tree
const DotGit = ".git"

// Repository wraps a go-git repository and a git CLI runner bound to its working tree
type Repository struct {
	*git.Repository
	path     string
	gitDir   string
	runner   *CommandRunner
	fallback *object.Signature
}

// Exists reports whether path already holds a repository
func Exists(path string) bool {
	_, err := os.Stat(filepath.Join(path, DotGit))
	return err == nil
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return newRepository(repo)
}

// InitRepository creates a non-bare repository at path whose HEAD points at defaultBranch.
// It fails with ErrRepositoryExists when path already contains one.
func InitRepository(path string, defaultBranch string) (*Repository, error) {
	if Exists(path) {
		return nil, metroerrors.ErrRepositoryExists
	}
	if defaultBranch == "" {
		defaultBranch = plumbing.Main.Short()
	}

	repo, err := git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(defaultBranch),
		},
		Bare: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}

	return newRepository(repo)
}

func newRepository(repo *git.Repository) (*Repository, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	gitDir := filepath.Join(root, DotGit)
	if storage, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = storage.Filesystem().Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
		gitDir:     gitDir,
		runner:     NewCommandRunner(root),
	}, nil
}

// GetRepoRoot returns the root directory of the working tree
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// GitDir returns the path of the git directory
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Runner returns the git CLI runner bound to this repository
func (r *Repository) Runner() *CommandRunner {
	return r.runner
}

// SetFallbackSignature sets the identity used when git config has no user
func (r *Repository) SetFallbackSignature(name, email string) {
	if name == "" && email == "" {
		r.fallback = nil
		return
	}
	r.fallback = &object.Signature{Name: name, Email: email}
}

// DefaultSignature returns the configured user identity stamped with the current time
func (r *Repository) DefaultSignature() (*object.Signature, error) {
	cfg, err := r.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}

	name, email := cfg.User.Name, cfg.User.Email
	if cfg.Author.Name != "" {
		name = cfg.Author.Name
	}
	if cfg.Author.Email != "" {
		email = cfg.Author.Email
	}
	if r.fallback != nil {
		if name == "" {
			name = r.fallback.Name
		}
		if email == "" {
			email = r.fallback.Email
		}
	}
	if name == "" || email == "" {
		return nil, fmt.Errorf("no signature configured: set user.name and user.email")
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}, nil
}
