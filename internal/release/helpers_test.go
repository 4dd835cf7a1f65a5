package release

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"grelease.dev/grelease/internal/config"
	"grelease.dev/grelease/internal/git"
	"grelease.dev/grelease/internal/tui"
	"grelease.dev/grelease/testhelpers"
)

// recordingWriter records SetVersion calls and fails for paths listed in failOn
type recordingWriter struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]bool
}

func (w *recordingWriter) SetVersion(path, version string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, path+"="+version)
	if w.failOn[path] {
		return errors.New("cannot write " + path)
	}
	return nil
}

type fakePublisher struct {
	tags []string
	err  error
}

func (p *fakePublisher) PublishRelease(_ context.Context, tag string) (string, error) {
	p.tags = append(p.tags, tag)
	if p.err != nil {
		return "", p.err
	}
	return "https://github.com/owner/repo/releases/tag/" + tag, nil
}

type workflowFixture struct {
	sim      *testhelpers.SimulatedGit
	prompter *testhelpers.ScriptedPrompter
	writer   *recordingWriter
	cfg      *config.Config
	out      *bytes.Buffer
	splog    *tui.Splog
	workflow *Workflow
}

func testConfig() *config.Config {
	return &config.Config{
		DevBranch:    "develop",
		MasterBranch: "main",
		Packages:     []string{"package.json"},
		Remote:       "origin",
		GitHub:       config.GitHub{TokenEnv: config.DefaultTokenEnv},
	}
}

func newWorkflowFixture(t *testing.T, current string, answers ...string) *workflowFixture {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(out, "")
	require.NoError(t, err)

	f := &workflowFixture{
		sim:      testhelpers.NewSimulatedGit(current, "develop", "main"),
		prompter: testhelpers.NewScriptedPrompter(answers...),
		writer:   &recordingWriter{failOn: map[string]bool{}},
		cfg:      testConfig(),
		out:      out,
		splog:    splog,
	}
	f.workflow = f.build(nil)
	return f
}

// build recreates the workflow, picking up changes to the fixture's config
func (f *workflowFixture) build(publisher Publisher) *Workflow {
	f.workflow = NewWorkflow(Options{
		Repo:      git.NewRepo(f.sim, f.cfg.Remote),
		Prompter:  f.prompter,
		Writer:    f.writer,
		Config:    f.cfg,
		Splog:     f.splog,
		Publisher: publisher,
	})
	return f.workflow
}
