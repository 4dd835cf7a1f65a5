// Package testhelpers provides testing utilities for grelease,
// including a scene system, Git repository helpers, a simulated git
// executor, scripted prompts, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	expected = append([]string{}, expected...)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectTags asserts that the repository has exactly the expected local tags.
func ExpectTags(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	tags, err := repo.ListTags()
	require.NoError(t, err, "Failed to list tags")

	sort.Strings(tags)
	expected = append([]string{}, expected...)
	sort.Strings(expected)

	require.Equal(t, expected, tags, "Tags do not match")
}

// ExpectCommitMessages asserts the newest commit subjects reachable from rev, newest first.
func ExpectCommitMessages(t *testing.T, repo *GitRepo, rev string, expected []string) {
	t.Helper()

	messages, err := repo.ListCommitMessages(rev)
	require.NoError(t, err, "Failed to list commits")
	require.GreaterOrEqual(t, len(messages), len(expected), "not enough commits on %s", rev)
	require.Equal(t, expected, messages[:len(expected)], "Commits do not match")
}
