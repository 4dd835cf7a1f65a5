package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	greleaseerrors "grelease.dev/grelease/internal/errors"
	"grelease.dev/grelease/internal/git"
	"grelease.dev/grelease/testhelpers"
)

func newRealRepo(scene *testhelpers.Scene) *git.Repo {
	return git.NewRepo(git.NewCommandRunner(scene.Dir, testhelpers.GitEnvOverrides()...), "origin")
}

func TestRepoAgainstRealGit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping git integration test in short mode")
	}
	ctx := context.Background()

	t.Run("tags round trip", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := newRealRepo(scene)

		require.NoError(t, scene.Repo.CreateTag("1.0.0"))
		require.NoError(t, repo.CreateAnnotatedTag(ctx, "1.1.0", "Release of 1.1.0"))

		tags, err := repo.ListTags(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"1.0.0", "1.1.0"}, tags)

		require.NoError(t, repo.DeleteTag(ctx, "1.0.0"))
		testhelpers.ExpectTags(t, scene.Repo, []string{"1.1.0"})
	})

	t.Run("branches and status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := newRealRepo(scene)

		require.NoError(t, repo.CreateAndCheckout(ctx, "release/1.0.0"))
		branch, err := repo.CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "release/1.0.0", branch)

		branches, err := repo.ListBranches(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"main", "release/1.0.0"}, branches)

		clean, _, err := repo.IsClean(ctx)
		require.NoError(t, err)
		require.True(t, clean)

		require.NoError(t, scene.Repo.CreateChange("dirty", "wip", true))
		clean, _, err = repo.IsClean(ctx)
		require.NoError(t, err)
		require.False(t, clean)
	})

	t.Run("failing command carries stderr", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		err := newRealRepo(scene).Checkout(ctx, "does-not-exist")
		require.Error(t, err)
		_, stderr, ok := greleaseerrors.Diagnostics(err)
		require.True(t, ok)
		require.Contains(t, stderr, "does-not-exist")
	})

	t.Run("finds repository root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "nested", "dir")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		root, err := git.GetRepoRoot(sub)
		require.NoError(t, err)
		resolvedRoot, _ := filepath.EvalSymlinks(root)
		resolvedDir, _ := filepath.EvalSymlinks(scene.Dir)
		require.Equal(t, resolvedDir, resolvedRoot)
	})
}
