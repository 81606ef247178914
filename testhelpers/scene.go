package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "metro-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Resolve symlinks so paths match what git reports (macOS /var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if err := scene.writeDefaultConfig(); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write config file: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// NewEmptyDir creates a temporary directory with no repository in it.
func NewEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	return dir
}

// writeDefaultConfig writes the default metro repository configuration.
func (s *Scene) writeDefaultConfig() error {
	configPath := filepath.Join(s.Dir, ".git", ".metro_config")
	config := `{
  "defaultBranch": "main",
  "signature": {
    "name": "Test User",
    "email": "test@example.com"
  }
}
`
	return os.WriteFile(configPath, []byte(config), 0600)
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// DivergedSceneSetup creates main and feature branches that edit different files
// on top of a shared commit, leaving HEAD on main.
func DivergedSceneSetup(scene *Scene) error {
	if err := scene.Repo.CreateChangeAndCommit("base", "shared"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("feature"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("feature work", "feature"); err != nil {
		return err
	}
	if err := scene.Repo.CheckoutBranch("main"); err != nil {
		return err
	}
	return scene.Repo.CreateChangeAndCommit("main work", "main")
}

// ConflictingSceneSetup creates main and feature branches that edit the same file
// on top of a shared commit, leaving HEAD on main.
func ConflictingSceneSetup(scene *Scene) error {
	if err := scene.Repo.CreateChangeAndCommit("base\n", "shared"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("feature"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("feature\n", "shared"); err != nil {
		return err
	}
	if err := scene.Repo.CheckoutBranch("main"); err != nil {
		return err
	}
	return scene.Repo.CreateChangeAndCommit("main\n", "shared")
}
