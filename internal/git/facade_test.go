package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	greleaseerrors "grelease.dev/grelease/internal/errors"
	"grelease.dev/grelease/internal/git"
	"grelease.dev/grelease/testhelpers"
)

func TestRepoArgumentVectors(t *testing.T) {
	ctx := context.Background()
	sim := testhelpers.NewSimulatedGit("develop", "main")
	repo := git.NewRepo(sim, "upstream")

	require.NoError(t, repo.Fetch(ctx))
	require.NoError(t, repo.PullAll(ctx))
	require.NoError(t, repo.Pull(ctx))
	require.NoError(t, repo.CreateAnnotatedTag(ctx, "1.0.0", "Release of 1.0.0"))
	require.NoError(t, repo.PushTag(ctx, "1.0.0"))
	require.NoError(t, repo.DeleteTag(ctx, "1.0.0"))
	require.NoError(t, repo.CreateAndCheckout(ctx, "release/1.0.0"))
	require.NoError(t, repo.Checkout(ctx, "develop"))
	require.NoError(t, repo.MergeNoFF(ctx, "release/1.0.0"))
	require.NoError(t, repo.StageAll(ctx))
	require.NoError(t, repo.CommitAll(ctx, "Bump version to 1.0.0."))
	require.NoError(t, repo.Push(ctx))
	require.NoError(t, repo.PushUpstream(ctx, "release/1.0.0"))

	require.Equal(t, []string{
		"fetch",
		"pull upstream -a",
		"pull",
		"tag -a 1.0.0 -m Release of 1.0.0",
		"push upstream 1.0.0",
		"tag -d 1.0.0",
		"checkout -b release/1.0.0",
		"checkout develop",
		"merge --no-ff release/1.0.0",
		"add .",
		"commit -am Bump version to 1.0.0.",
		"push",
		"push --set-upstream upstream release/1.0.0",
	}, sim.Calls())
}

func TestRepoDefaultsRemoteToOrigin(t *testing.T) {
	repo := git.NewRepo(testhelpers.NewSimulatedGit("main"), "")
	require.Equal(t, "origin", repo.Remote())
}

func TestRepoQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("lists tags without trailing artifact", func(t *testing.T) {
		sim := testhelpers.NewSimulatedGit("develop")
		sim.Tags = []string{"0.9.0", "1.0.0"}
		tags, err := git.NewRepo(sim, "").ListTags(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"0.9.0", "1.0.0"}, tags)
	})

	t.Run("lists no tags as empty slice", func(t *testing.T) {
		tags, err := git.NewRepo(testhelpers.NewSimulatedGit("develop"), "").ListTags(ctx)
		require.NoError(t, err)
		require.Empty(t, tags)
	})

	t.Run("lists branches without marker", func(t *testing.T) {
		sim := testhelpers.NewSimulatedGit("develop", "main", "release/1.0.0")
		branches, err := git.NewRepo(sim, "").ListBranches(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"develop", "main", "release/1.0.0"}, branches)
	})

	t.Run("reads current branch", func(t *testing.T) {
		branch, err := git.NewRepo(testhelpers.NewSimulatedGit("feature/x", "main"), "").CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "feature/x", branch)
	})

	t.Run("detects clean and dirty trees", func(t *testing.T) {
		sim := testhelpers.NewSimulatedGit("develop")
		clean, _, err := git.NewRepo(sim, "").IsClean(ctx)
		require.NoError(t, err)
		require.True(t, clean)

		sim.Clean = false
		clean, status, err := git.NewRepo(sim, "").IsClean(ctx)
		require.NoError(t, err)
		require.False(t, clean)
		require.Contains(t, status, "Changes not staged")
	})

	t.Run("reads remote url", func(t *testing.T) {
		url, err := git.NewRepo(testhelpers.NewSimulatedGit("develop"), "").RemoteURL(ctx)
		require.NoError(t, err)
		require.Equal(t, "git@github.com:owner/repo.git", url)
	})
}

func TestRepoPropagatesProcessFailure(t *testing.T) {
	sim := testhelpers.NewSimulatedGit("develop").FailOn("push", 1, "rejected")
	err := git.NewRepo(sim, "").Push(context.Background())
	require.Error(t, err)

	var perr *greleaseerrors.ProcessError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 1, perr.ExitCode)
	require.Equal(t, "rejected", string(perr.Stderr))
	require.Equal(t, 1, sim.CallCount("push"), "no retries")
}
