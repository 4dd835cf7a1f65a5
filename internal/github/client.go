// Package github publishes releases to the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"grelease.dev/grelease/internal/git"
)

// ReleaseInfo contains information about a GitHub release
// This is a simplified struct to avoid coupling to go-github library
type ReleaseInfo struct {
	ID      int64
	TagName string
	Name    string
	HTMLURL string
	Draft   bool
}

// CreateReleaseOptions contains options for creating a release
type CreateReleaseOptions struct {
	TagName string
	Name    string
	Body    string
	Draft   bool
}

// Client is an interface for the GitHub release API
type Client interface {
	// GetReleaseByTag returns the release for tag, or nil when none exists
	GetReleaseByTag(ctx context.Context, tag string) (*ReleaseInfo, error)

	// CreateRelease creates a release for an existing tag
	CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*ReleaseInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}

// RepoInfo identifies a repository on a GitHub host
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// ParseRepoURL extracts host, owner and name from a remote URL
func ParseRepoURL(remoteURL string) (*RepoInfo, error) {
	owner, repo, err := git.ParseOwnerRepo(remoteURL)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(remoteURL)
	var host string
	if i := strings.Index(trimmed, "://"); i >= 0 {
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid remote URL %s: %w", remoteURL, err)
		}
		host = u.Hostname()
	} else {
		hostPart := trimmed[:strings.Index(trimmed, ":")]
		host = hostPart[strings.LastIndex(hostPart, "@")+1:]
	}
	if host == "" {
		return nil, fmt.Errorf("invalid remote URL: %s", remoteURL)
	}

	return &RepoInfo{Hostname: host, Owner: owner, Repo: repo}, nil
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		// REST API: https://hostname/api/v3/
		// Upload API: https://hostname/api/uploads/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}
