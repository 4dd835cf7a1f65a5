package testhelpers

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	greleaseerrors "grelease.dev/grelease/internal/errors"
	"grelease.dev/grelease/internal/git"
)

// SimulatedGit implements git.Executor by interpreting git argument vectors
// against an in-memory repository model. Every call is recorded.
//
// Supported: status, tag -l/-d/-a, symbolic-ref HEAD, branch -l,
// checkout [-b], fetch (restores RemoteTags locally), config --get.
// Anything else (pull, merge, add, commit, push) succeeds without changing state.
type SimulatedGit struct {
	mu sync.Mutex

	Clean         bool
	Tags          []string
	RemoteTags    []string
	Branches      []string
	CurrentBranch string
	RemoteURL     string

	calls    []string
	failures map[string]*greleaseerrors.ProcessError
}

// NewSimulatedGit creates a clean simulated repository on branch current
func NewSimulatedGit(current string, branches ...string) *SimulatedGit {
	all := append([]string{}, branches...)
	if !slices.Contains(all, current) {
		all = append(all, current)
	}
	return &SimulatedGit{
		Clean:         true,
		Branches:      all,
		CurrentBranch: current,
		RemoteURL:     "git@github.com:owner/repo.git",
		failures:      make(map[string]*greleaseerrors.ProcessError),
	}
}

// FailOn makes the exact argv (without the leading "git") fail with exitCode and stderr
func (g *SimulatedGit) FailOn(argv string, exitCode int, stderr string) *SimulatedGit {
	g.mu.Lock()
	defer g.mu.Unlock()
	args := strings.Fields(argv)
	g.failures[argv] = greleaseerrors.NewProcessError("git", args, exitCode, nil, []byte(stderr), fmt.Errorf("exit status %d", exitCode))
	return g
}

// Calls returns every recorded argv joined with spaces, without the leading "git"
func (g *SimulatedGit) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string{}, g.calls...)
}

// CallCount returns how many times argv was executed
func (g *SimulatedGit) CallCount(argv string) int {
	count := 0
	for _, c := range g.Calls() {
		if c == argv {
			count++
		}
	}
	return count
}

// CallsWithPrefix returns the recorded calls that start with prefix
func (g *SimulatedGit) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range g.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded calls
func (g *SimulatedGit) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}

// Exec implements git.Executor
func (g *SimulatedGit) Exec(_ context.Context, command string, args ...string) (git.CommandResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if command != "git" {
		return git.CommandResult{ExitCode: -1}, greleaseerrors.NewSpawnError(command, args, fmt.Errorf("unsupported command"))
	}

	argv := strings.Join(args, " ")
	g.calls = append(g.calls, argv)

	if perr, ok := g.failures[argv]; ok {
		return git.CommandResult{ExitCode: perr.ExitCode, Stderr: perr.Stderr}, perr
	}

	stdout, err := g.interpret(args)
	if err != nil {
		return git.CommandResult{ExitCode: err.ExitCode, Stderr: err.Stderr}, err
	}
	return git.CommandResult{Stdout: []byte(stdout)}, nil
}

func (g *SimulatedGit) fail(args []string, code int, stderr string) *greleaseerrors.ProcessError {
	return greleaseerrors.NewProcessError("git", args, code, nil, []byte(stderr), fmt.Errorf("exit status %d", code))
}

func (g *SimulatedGit) interpret(args []string) (string, *greleaseerrors.ProcessError) {
	if len(args) == 0 {
		return "", g.fail(args, 1, "usage: git")
	}

	switch args[0] {
	case "status":
		if g.Clean {
			return fmt.Sprintf("On branch %s\nnothing to commit, working tree clean\n", g.CurrentBranch), nil
		}
		return fmt.Sprintf("On branch %s\nChanges not staged for commit:\n\tmodified:   README.md\n", g.CurrentBranch), nil

	case "tag":
		return g.tag(args)

	case "symbolic-ref":
		return "refs/heads/" + g.CurrentBranch + "\n", nil

	case "branch":
		var b strings.Builder
		for _, name := range g.Branches {
			if name == g.CurrentBranch {
				b.WriteString("* " + name + "\n")
			} else {
				b.WriteString("  " + name + "\n")
			}
		}
		return b.String(), nil

	case "checkout":
		if len(args) == 3 && args[1] == "-b" {
			if slices.Contains(g.Branches, args[2]) {
				return "", g.fail(args, 128, fmt.Sprintf("fatal: a branch named '%s' already exists", args[2]))
			}
			g.Branches = append(g.Branches, args[2])
			g.CurrentBranch = args[2]
			return "", nil
		}
		if len(args) == 2 {
			if !slices.Contains(g.Branches, args[1]) {
				return "", g.fail(args, 1, fmt.Sprintf("error: pathspec '%s' did not match any file(s) known to git", args[1]))
			}
			g.CurrentBranch = args[1]
			return "", nil
		}
		return "", g.fail(args, 129, "unsupported checkout")

	case "fetch":
		for _, tag := range g.RemoteTags {
			if !slices.Contains(g.Tags, tag) {
				g.Tags = append(g.Tags, tag)
			}
		}
		return "", nil

	case "config":
		if len(args) == 3 && args[1] == "--get" && strings.HasPrefix(args[2], "remote.") {
			if g.RemoteURL == "" {
				return "", g.fail(args, 1, "")
			}
			return g.RemoteURL + "\n", nil
		}
		return "", g.fail(args, 1, "")
	}

	return "", nil
}

func (g *SimulatedGit) tag(args []string) (string, *greleaseerrors.ProcessError) {
	switch {
	case len(args) == 2 && args[1] == "-l":
		if len(g.Tags) == 0 {
			return "", nil
		}
		return strings.Join(g.Tags, "\n") + "\n", nil
	case len(args) == 3 && args[1] == "-d":
		idx := slices.Index(g.Tags, args[2])
		if idx < 0 {
			return "", g.fail(args, 1, fmt.Sprintf("error: tag '%s' not found.", args[2]))
		}
		g.Tags = slices.Delete(g.Tags, idx, idx+1)
		return fmt.Sprintf("Deleted tag '%s'\n", args[2]), nil
	case len(args) == 5 && args[1] == "-a" && args[3] == "-m":
		if slices.Contains(g.Tags, args[2]) {
			return "", g.fail(args, 128, fmt.Sprintf("fatal: tag '%s' already exists", args[2]))
		}
		g.Tags = append(g.Tags, args[2])
		return "", nil
	}
	return "", g.fail(args, 129, "unsupported tag invocation")
}
