package git

import (
	"context"
	"fmt"
	"strings"
)

// RemoteURL returns the configured URL of the facade's remote
func (r *Repo) RemoteURL(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "config", "--get", "remote."+r.remote+".url")
	if err != nil {
		return "", fmt.Errorf("failed to read url of remote %s: %w", r.remote, err)
	}
	return strings.TrimSpace(out), nil
}

// ParseOwnerRepo extracts the owner and repository name from a remote URL.
// Handles https://host/owner/repo(.git), ssh://git@host/owner/repo(.git)
// and git@host:owner/repo(.git).
func ParseOwnerRepo(url string) (string, string, error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), ".git")
	if url == "" {
		return "", "", fmt.Errorf("invalid remote URL")
	}

	var path string
	switch {
	case strings.Contains(url, "://"):
		rest := url[strings.Index(url, "://")+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", "", fmt.Errorf("invalid remote URL: %s", url)
		}
		path = rest[slash+1:]
	case strings.Contains(url, "@") && strings.Contains(url, ":"):
		path = url[strings.Index(url, ":")+1:]
	default:
		return "", "", fmt.Errorf("invalid remote URL: %s", url)
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("invalid remote URL: %s", url)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
