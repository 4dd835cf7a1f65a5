package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealClient creates a RealClient for repo authenticated with token
func NewRealClient(ctx context.Context, repo *RepoInfo, token string) (*RealClient, error) {
	if token == "" {
		return nil, errors.New("GitHub token is empty")
	}
	client, err := createGitHubClient(ctx, repo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return NewRealClientFromGitHub(client, repo.Owner, repo.Repo), nil
}

// NewRealClientFromGitHub wraps an already configured go-github client
func NewRealClientFromGitHub(client *github.Client, owner, repo string) *RealClient {
	return &RealClient{client: client, owner: owner, repo: repo}
}

// GetOwnerRepo returns the repository owner and name
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// GetReleaseByTag returns the release for tag, or nil when GitHub has none
func (c *RealClient) GetReleaseByTag(ctx context.Context, tag string) (*ReleaseInfo, error) {
	release, resp, err := c.client.Repositories.GetReleaseByTag(ctx, c.owner, c.repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get release %s: %w", tag, err)
	}
	return toReleaseInfo(release), nil
}

// CreateRelease creates a release for an existing tag
func (c *RealClient) CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*ReleaseInfo, error) {
	release := &github.RepositoryRelease{
		TagName: github.String(opts.TagName),
		Name:    github.String(opts.Name),
		Draft:   github.Bool(opts.Draft),
	}
	if opts.Body != "" {
		release.Body = github.String(opts.Body)
	}

	created, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, release)
	if err != nil {
		return nil, fmt.Errorf("failed to create release %s: %w", opts.TagName, err)
	}
	return toReleaseInfo(created), nil
}

func toReleaseInfo(r *github.RepositoryRelease) *ReleaseInfo {
	return &ReleaseInfo{
		ID:      r.GetID(),
		TagName: r.GetTagName(),
		Name:    r.GetName(),
		HTMLURL: r.GetHTMLURL(),
		Draft:   r.GetDraft(),
	}
}
