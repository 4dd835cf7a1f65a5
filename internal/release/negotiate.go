package release

import (
	"context"
	"errors"
	"fmt"
	"slices"

	greleaseerrors "grelease.dev/grelease/internal/errors"
	"grelease.dev/grelease/internal/prompt"
	"grelease.dev/grelease/internal/tui"
)

// NoReleaseSentinel is shown as the last release when the repository has no tags
const NoReleaseSentinel = "---"

const retryQuestion = "Version already exists. New version? "

// TagLister lists the repository's tags in reported order
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

// Negotiator asks the operator for the next release tag until a valid one is given
type Negotiator struct {
	tags     TagLister
	prompter prompt.Prompter
	splog    *tui.Splog
}

// NewNegotiator creates a Negotiator. splog may be nil.
func NewNegotiator(tags TagLister, prompter prompt.Prompter, splog *tui.Splog) *Negotiator {
	return &Negotiator{tags: tags, prompter: prompter, splog: splog}
}

// DetermineNextTag returns the first answer that is non-empty and absent from a
// fresh tag listing. Rejections re-prompt without limit.
func (n *Negotiator) DetermineNextTag(ctx context.Context) (string, error) {
	tags, err := n.tags.ListTags(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	latest := NoReleaseSentinel
	if len(tags) > 0 {
		latest = tags[len(tags)-1]
	}

	question := fmt.Sprintf("Which version do you want to release? (Last release: %s) ", latest)
	for {
		answer, err := n.prompter.Ask(ctx, question)
		if err != nil {
			return "", fmt.Errorf("failed to read version: %w", err)
		}

		err = n.validate(ctx, answer)
		if err == nil {
			return answer, nil
		}
		var retry *greleaseerrors.ValidationRetry
		if !errors.As(err, &retry) {
			return "", err
		}
		if n.splog != nil {
			n.splog.Debug("rejected version candidate: %v", retry)
		}
		question = retryQuestion
	}
}

// validate returns a *ValidationRetry for rejected candidates and any other error for listing failures
func (n *Negotiator) validate(ctx context.Context, candidate string) error {
	if candidate == "" {
		return &greleaseerrors.ValidationRetry{}
	}
	tags, err := n.tags.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}
	if slices.Contains(tags, candidate) {
		return &greleaseerrors.ValidationRetry{Candidate: candidate, Exists: true}
	}
	return nil
}
