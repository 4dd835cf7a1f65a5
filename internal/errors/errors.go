// Package errors provides sentinel errors and custom error types for the grelease application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrProcessFailure indicates that a subprocess exited non-zero or could not be started
	ErrProcessFailure = errors.New("process failure")

	// ErrDirtyWorkingTree indicates that the working tree has pending changes
	ErrDirtyWorkingTree = errors.New("working tree is not clean")

	// ErrEmptyBranchName indicates that a release branch name was derived from an empty tag
	ErrEmptyBranchName = errors.New("release branch name can not be empty")

	// ErrValidationRetry signals that a tag candidate was rejected and the operator must be asked again
	ErrValidationRetry = errors.New("tag candidate rejected")
)

// ProcessError represents a failed subprocess invocation
type ProcessError struct {
	Command string
	Args    []string
	// ExitCode is -1 when the process never started.
	ExitCode int
	Started  bool
	Stdout   []byte
	Stderr   []byte
	Err      error
}

func (e *ProcessError) Error() string {
	cmdline := e.Command
	if len(e.Args) > 0 {
		cmdline += " " + strings.Join(e.Args, " ")
	}
	if !e.Started {
		return fmt.Sprintf("failed to start %s: %v", cmdline, e.Err)
	}
	return fmt.Sprintf("child exited with code %d: %s", e.ExitCode, cmdline)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrProcessFailure
func (e *ProcessError) Is(target error) bool {
	return target == ErrProcessFailure
}

// NewProcessError creates a ProcessError for a process that ran and exited non-zero
func NewProcessError(command string, args []string, exitCode int, stdout, stderr []byte, err error) *ProcessError {
	return &ProcessError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Started:  true,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// NewSpawnError creates a ProcessError for a process that could not be started
func NewSpawnError(command string, args []string, err error) *ProcessError {
	return &ProcessError{
		Command:  command,
		Args:     args,
		ExitCode: -1,
		Err:      err,
	}
}

// DirtyWorkingTreeError represents a status check that found pending changes
type DirtyWorkingTreeError struct {
	Status string
}

func (e *DirtyWorkingTreeError) Error() string {
	return "Working tree is not clean. Please commit and push your changes."
}

// Is returns true if the target error is ErrDirtyWorkingTree
func (e *DirtyWorkingTreeError) Is(target error) bool {
	return target == ErrDirtyWorkingTree
}

// NewDirtyWorkingTreeError creates a new DirtyWorkingTreeError
func NewDirtyWorkingTreeError(status string) *DirtyWorkingTreeError {
	return &DirtyWorkingTreeError{Status: status}
}

// EmptyBranchNameError represents an attempt to use a release branch derived from an empty tag
type EmptyBranchNameError struct{}

func (e *EmptyBranchNameError) Error() string {
	return "Releasebranch name can not be empty."
}

// Is returns true if the target error is ErrEmptyBranchName
func (e *EmptyBranchNameError) Is(target error) bool {
	return target == ErrEmptyBranchName
}

// NewEmptyBranchNameError creates a new EmptyBranchNameError
func NewEmptyBranchNameError() *EmptyBranchNameError {
	return &EmptyBranchNameError{}
}

// ValidationRetry explains why a tag candidate was rejected.
// It never leaves the negotiation loop.
type ValidationRetry struct {
	Candidate string
	Exists    bool
}

func (e *ValidationRetry) Error() string {
	if e.Candidate == "" {
		return "tag must not be empty"
	}
	return fmt.Sprintf("tag %s already exists", e.Candidate)
}

// Is returns true if the target error is ErrValidationRetry
func (e *ValidationRetry) Is(target error) bool {
	return target == ErrValidationRetry
}

// Diagnostics returns the captured output of the first ProcessError in err's chain.
// ok is false when err does not wrap a ProcessError.
func Diagnostics(err error) (stdout, stderr string, ok bool) {
	var perr *ProcessError
	if !errors.As(err, &perr) {
		return "", "", false
	}
	return string(perr.Stdout), string(perr.Stderr), true
}
