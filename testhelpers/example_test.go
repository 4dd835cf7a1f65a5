package testhelpers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"grelease.dev/grelease/testhelpers"
)

func TestGitRepoBasicOperations(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	require.NoError(t, scene.Repo.CreateTag("1.0.0"))
	testhelpers.ExpectTags(t, scene.Repo, []string{"1.0.0"})

	require.NoError(t, scene.Repo.CreateBranch("develop"))
	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "main"})
}

func TestReleaseSceneSetup(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.ReleaseSceneSetup)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "develop", branch)

	status, err := scene.Repo.RunGitCommandAndGetOutput("status")
	require.NoError(t, err)
	require.Contains(t, status, "nothing to commit, working tree clean")
}

func TestSimulatedGit(t *testing.T) {
	sim := testhelpers.NewSimulatedGit("develop", "main")
	sim.RemoteTags = []string{"1.0.0"}

	_, err := sim.Exec(context.Background(), "git", "fetch")
	require.NoError(t, err)
	require.Equal(t, []string{"1.0.0"}, sim.Tags)

	_, err = sim.Exec(context.Background(), "git", "tag", "-d", "1.0.0")
	require.NoError(t, err)
	require.Empty(t, sim.Tags)

	_, err = sim.Exec(context.Background(), "git", "checkout", "missing")
	require.Error(t, err)

	require.Equal(t, []string{"fetch", "tag -d 1.0.0", "checkout missing"}, sim.Calls())
}

func TestScriptedPrompter(t *testing.T) {
	p := testhelpers.NewScriptedPrompter("a")

	answer, err := p.Ask(context.Background(), "first? ")
	require.NoError(t, err)
	require.Equal(t, "a", answer)

	_, err = p.Ask(context.Background(), "second? ")
	require.Error(t, err)
	require.Equal(t, []string{"first? ", "second? "}, p.Questions())
}
