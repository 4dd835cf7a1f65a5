package git

import (
	"context"
	"fmt"
)

// DefaultRemote is the remote used when none is configured
const DefaultRemote = "origin"

// Repo is the git facade: a fixed-argument vocabulary over an Executor.
// Every operation propagates the underlying *errors.ProcessError; none retry.
type Repo struct {
	exec   Executor
	remote string
}

// NewRepo creates a facade that runs git through exec against remote
func NewRepo(exec Executor, remote string) *Repo {
	if remote == "" {
		remote = DefaultRemote
	}
	return &Repo{exec: exec, remote: remote}
}

// NewRepoInDir creates a facade backed by a real CommandRunner in dir.
// git runs with LC_ALL=C so status text can be matched reliably.
func NewRepoInDir(dir, remote string) *Repo {
	return NewRepo(NewCommandRunner(dir, "LC_ALL=C"), remote)
}

// Remote returns the remote name used for pulls and pushes
func (r *Repo) Remote() string {
	return r.remote
}

// run executes a git command and returns its raw stdout
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	result, err := r.exec.Exec(ctx, "git", args...)
	if err != nil {
		return "", err
	}
	return string(result.Stdout), nil
}

// Status returns the raw output of git status
func (r *Repo) Status(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "status")
	if err != nil {
		return "", fmt.Errorf("failed to read status: %w", err)
	}
	return out, nil
}
