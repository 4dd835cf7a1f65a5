package github

import (
	"context"
	"fmt"
	"os"
)

// Publisher creates a GitHub release for a pushed tag
type Publisher struct {
	client Client
	draft  bool
}

// NewPublisher creates a Publisher over client
func NewPublisher(client Client, draft bool) *Publisher {
	return &Publisher{client: client, draft: draft}
}

// NewPublisherFromRemote builds a Publisher for the repository behind remoteURL.
// The token is read from the environment variable tokenEnv; a missing token
// fails here, before any request is made.
func NewPublisherFromRemote(ctx context.Context, remoteURL, tokenEnv string, draft bool) (*Publisher, error) {
	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, fmt.Errorf("GitHub token not found: set %s", tokenEnv)
	}

	repo, err := ParseRepoURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	client, err := NewRealClient(ctx, repo, token)
	if err != nil {
		return nil, err
	}
	return NewPublisher(client, draft), nil
}

// PublishRelease creates the release named "Release of <tag>" and returns its URL.
// An existing release for the tag is returned unchanged.
func (p *Publisher) PublishRelease(ctx context.Context, tag string) (string, error) {
	existing, err := p.client.GetReleaseByTag(ctx, tag)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.HTMLURL, nil
	}

	release, err := p.client.CreateRelease(ctx, CreateReleaseOptions{
		TagName: tag,
		Name:    "Release of " + tag,
		Draft:   p.draft,
	})
	if err != nil {
		return "", err
	}
	return release.HTMLURL, nil
}
