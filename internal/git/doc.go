// Package git provides the process runner and the git vocabulary used by the release workflow.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Working tree status checks
//   - Tag management (list, create, delete, push)
//   - Branch management (list, checkout, create)
//   - Remote operations (fetch, pull, push)
//   - No-fast-forward merges and commits
//
// This package should be the only place where git commands are executed.
package git
