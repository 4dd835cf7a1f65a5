// Package runtime provides a context type that holds every collaborator of a
// release run so commands do not pass them around one by one.
package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"grelease.dev/grelease/internal/config"
	"grelease.dev/grelease/internal/git"
	"grelease.dev/grelease/internal/github"
	"grelease.dev/grelease/internal/manifest"
	"grelease.dev/grelease/internal/prompt"
	"grelease.dev/grelease/internal/release"
	"grelease.dev/grelease/internal/tui"
)

// Context provides access to configuration, git and terminal I/O for commands
type Context struct {
	context.Context
	Splog    *tui.Splog
	RepoRoot string
	Config   *config.Config
	Repo     *git.Repo
	Prompter prompt.Prompter
	Writer   manifest.Writer
	// Publisher is nil unless GitHub releases are enabled
	Publisher release.Publisher
}

// Options controls how GetContext builds a Context
type Options struct {
	// Dir is where repository discovery starts; empty means the working directory
	Dir string
	// ConfigPath overrides <repo root>/.grelease
	ConfigPath string
	PromptMode prompt.Mode
	In         io.Reader
	Out        io.Writer
	Splog      *tui.Splog
}

// GetContext finds the repository, loads its configuration and wires the
// collaborators of a release run.
func GetContext(ctx context.Context, opts Options) (*Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}

	repoRoot, err := git.GetRepoRoot(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.Path(repoRoot)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	splog.Debug("loaded %s (dev: %s, master: %s, remote: %s)", configPath, cfg.DevBranch, cfg.MasterBranch, cfg.Remote)

	prompter, err := prompt.New(opts.PromptMode, opts.In, opts.Out)
	if err != nil {
		return nil, err
	}

	rt := &Context{
		Context:  ctx,
		Splog:    splog,
		RepoRoot: repoRoot,
		Config:   cfg,
		Repo:     git.NewRepoInDir(repoRoot, cfg.Remote),
		Prompter: prompter,
		Writer:   manifest.NewFileWriter(repoRoot),
	}

	if cfg.GitHub.Release {
		remoteURL, err := rt.Repo.RemoteURL(ctx)
		if err != nil {
			return nil, err
		}
		publisher, err := github.NewPublisherFromRemote(ctx, remoteURL, cfg.GitHub.TokenEnv, cfg.GitHub.Draft)
		if err != nil {
			return nil, fmt.Errorf("GitHub releases are enabled: %w", err)
		}
		rt.Publisher = publisher
	}

	return rt, nil
}

// Workflow creates the release workflow over the context's collaborators
func (c *Context) Workflow() *release.Workflow {
	return release.NewWorkflow(release.Options{
		Repo:      c.Repo,
		Prompter:  c.Prompter,
		Writer:    c.Writer,
		Config:    c.Config,
		Splog:     c.Splog,
		Publisher: c.Publisher,
	})
}
