package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	greleaseerrors "grelease.dev/grelease/internal/errors"
)

// CommandResult holds the outcome of a single subprocess invocation
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Executor runs external commands. CommandRunner is the real implementation;
// tests substitute recording fakes.
type Executor interface {
	Exec(ctx context.Context, command string, args ...string) (CommandResult, error)
}

// CommandRunner handles execution of external commands
type CommandRunner struct {
	workingDir string
	env        []string
}

// NewCommandRunner creates a new CommandRunner.
// env entries are appended to the current process environment.
func NewCommandRunner(workingDir string, env ...string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, env: env}
}

// WorkingDir returns the directory commands run in ("" means the current directory)
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Exec runs command with args and waits for it to exit.
//
// Stdout and stderr are accumulated independently as raw bytes. A zero exit
// code resolves with the captured output; anything else returns a
// *errors.ProcessError carrying the exit code and both buffers. No deadline
// is imposed: the workflow is interactive and callers own cancellation.
func (r *CommandRunner) Exec(ctx context.Context, command string, args ...string) (CommandResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return CommandResult{ExitCode: -1}, greleaseerrors.NewSpawnError(command, args, err)
	}

	err := cmd.Wait()
	result := CommandResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && ctx.Err() != nil {
			err = ctx.Err()
		}
		return result, greleaseerrors.NewProcessError(command, args, result.ExitCode, result.Stdout, result.Stderr, err)
	}
	return result, nil
}
