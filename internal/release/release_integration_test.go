package release

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"grelease.dev/grelease/internal/config"
	"grelease.dev/grelease/internal/git"
	"grelease.dev/grelease/internal/manifest"
	"grelease.dev/grelease/internal/tui"
	"grelease.dev/grelease/testhelpers"
)

func TestReleaseAgainstRealRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping git integration test in short mode")
	}

	scene := testhelpers.NewScene(t, testhelpers.ReleaseSceneSetup)
	cfg, err := config.Load(config.Path(scene.Dir))
	require.NoError(t, err)

	prompter := testhelpers.NewScriptedPrompter("1.0.0", "")
	splog, err := tui.NewSplogWithConfig(&discard{}, "")
	require.NoError(t, err)

	workflow := NewWorkflow(Options{
		Repo:     git.NewRepo(git.NewCommandRunner(scene.Dir, testhelpers.GitEnvOverrides()...), cfg.Remote),
		Prompter: prompter,
		Writer:   manifest.NewFileWriter(scene.Dir),
		Config:   cfg,
		Splog:    splog,
	})

	outcome, err := workflow.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeCompleted, outcome)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "develop", branch)

	testhelpers.ExpectTags(t, scene.Repo, []string{"1.0.0"})
	remoteTags, err := scene.Repo.RemoteTags("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"1.0.0"}, remoteTags)

	branches, err := scene.Repo.GetLocalBranches()
	require.NoError(t, err)
	require.Contains(t, branches, "release/1.0.0")

	manifestOnMain, err := scene.Repo.RunGitCommandAndGetOutput("show", "main:package.json")
	require.NoError(t, err)
	require.Contains(t, manifestOnMain, `"version": "1.0.0"`)

	manifestOnDevelop, err := scene.Repo.RunGitCommandAndGetOutput("show", "origin/develop:package.json")
	require.NoError(t, err)
	require.Contains(t, manifestOnDevelop, `"version": "1.0.0"`)

	messages, err := scene.Repo.ListCommitMessages("release/1.0.0")
	require.NoError(t, err)
	require.Contains(t, messages, "Bump version to 1.0.0.")

	annotation, err := scene.Repo.RunGitCommandAndGetOutput("tag", "-l", "-n1", "1.0.0")
	require.NoError(t, err)
	require.Contains(t, annotation, "Release of 1.0.0")

	t.Run("a second release sees the remote tag", func(t *testing.T) {
		prompter := testhelpers.NewScriptedPrompter("1.0.0", "1.1.0", "")
		workflow := NewWorkflow(Options{
			Repo:     git.NewRepo(git.NewCommandRunner(scene.Dir, testhelpers.GitEnvOverrides()...), cfg.Remote),
			Prompter: prompter,
			Writer:   manifest.NewFileWriter(scene.Dir),
			Config:   cfg,
			Splog:    splog,
		})

		outcome, err := workflow.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, OutcomeCompleted, outcome)
		require.Equal(t, "Which version do you want to release? (Last release: 1.0.0) ", prompter.Questions()[0])
		require.Equal(t, retryQuestion, prompter.Questions()[1])
		testhelpers.ExpectTags(t, scene.Repo, []string{"1.0.0", "1.1.0"})
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
