package git

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits raw command output on any line terminator
func splitLines(output string) []string {
	return lineBreak.Split(output, -1)
}

// ParseTagList parses the output of git tag -l.
// Order is preserved exactly as reported; the empty entry produced by the
// trailing newline (and any other blank line) is dropped, so the last
// element is always the last real tag.
func ParseTagList(output string) []string {
	tags := []string{}
	for _, line := range splitLines(output) {
		if line == "" {
			continue
		}
		tags = append(tags, line)
	}
	return tags
}

// ParseBranchList parses the output of git branch -l.
// The current-branch marker and surrounding whitespace are stripped from each line.
func ParseBranchList(output string) []string {
	branches := []string{}
	for _, line := range splitLines(output) {
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if name == "" {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}

// ParseSymbolicRef turns the output of git symbolic-ref HEAD into a branch name
func ParseSymbolicRef(output string) string {
	name := strings.TrimRight(output, "\r\n")
	return strings.TrimPrefix(name, "refs/heads/")
}
