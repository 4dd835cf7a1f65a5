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
// The directory is removed by t.TempDir's cleanup unless DEBUG is set.
// It does not change the process working directory, so it is safe for parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()
	if os.Getenv("DEBUG") != "" {
		var err error
		tmpDir, err = os.MkdirTemp("", "grelease-test-*")
		if err != nil {
			t.Fatalf("Failed to create temp dir: %v", err)
		}
		t.Logf("scene directory: %s", tmpDir)
	}

	dir := filepath.Join(tmpDir, "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WriteConfig writes a .grelease file at the repository root.
func (s *Scene) WriteConfig(contents string) error {
	return os.WriteFile(filepath.Join(s.Dir, ".grelease"), []byte(contents), 0600)
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// ReleaseSceneSetup creates a repository ready for a release run:
// a committed .grelease and package.json on main, a develop branch with one
// more commit, both pushed to a bare origin with upstreams set, and develop
// checked out.
func ReleaseSceneSetup(scene *Scene) error {
	if err := scene.WriteConfig(`{
  // release configuration
  "devBranch": "develop",
  "masterBranch": "main",
  "packages": ["package.json"],
}
`); err != nil {
		return err
	}
	if err := scene.Repo.WriteAndCommit("package.json", "{\n  \"name\": \"demo\",\n  \"version\": \"0.0.0\"\n}\n", "initial"); err != nil {
		return err
	}
	if err := scene.Repo.RunGitCommand("add", ".grelease"); err != nil {
		return err
	}
	if err := scene.Repo.RunGitCommand("commit", "-m", "add release config"); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	if err := scene.Repo.PushBranch("origin", "main"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("develop"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("feature work", "feature"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "develop")
}

// WriteFile writes contents to path, creating parent directories.
func WriteFile(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(contents), 0600)
}
