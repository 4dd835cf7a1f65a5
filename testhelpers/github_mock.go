package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	mu sync.Mutex

	// Releases maps tag names to existing releases
	Releases map[string]*github.RepositoryRelease
	// CreatedReleases stores releases that were created (for testing)
	CreatedReleases []*github.RepositoryRelease
	// FailCreate makes release creation respond with this status code when non-zero
	FailCreate int
	// AuthHeaders records the Authorization header of every request
	AuthHeaders []string
	// Owner and Repo for the mock server
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Releases: make(map[string]*github.RepositoryRelease),
		Owner:    "owner",
		Repo:     "repo",
	}
}

// Created returns a copy of the releases created so far
func (c *MockGitHubServerConfig) Created() []*github.RepositoryRelease {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*github.RepositoryRelease{}, c.CreatedReleases...)
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub release endpoints
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	basePath := "/repos/" + config.Owner + "/" + config.Repo + "/releases"
	htmlBase := "https://github.com/" + config.Owner + "/" + config.Repo + "/releases/tag/"

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	handler := func(w http.ResponseWriter, r *http.Request) {
		config.mu.Lock()
		defer config.mu.Unlock()
		config.AuthHeaders = append(config.AuthHeaders, r.Header.Get("Authorization"))

		path := r.URL.Path
		switch {
		case strings.HasPrefix(path, basePath+"/tags/") && r.Method == http.MethodGet:
			tag := strings.TrimPrefix(path, basePath+"/tags/")
			if release, ok := config.Releases[tag]; ok {
				writeJSON(w, http.StatusOK, release)
				return
			}
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})

		case path == basePath && r.Method == http.MethodPost:
			if config.FailCreate != 0 {
				writeJSON(w, config.FailCreate, map[string]string{"message": "Validation Failed"})
				return
			}
			var release github.RepositoryRelease
			if err := json.NewDecoder(r.Body).Decode(&release); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			id := int64(len(config.CreatedReleases) + 1)
			release.ID = &id
			release.HTMLURL = github.String(htmlBase + release.GetTagName())
			config.CreatedReleases = append(config.CreatedReleases, &release)
			config.Releases[release.GetTagName()] = &release
			writeJSON(w, http.StatusCreated, release)

		default:
			http.Error(w, fmt.Sprintf("Unhandled path: %s (method: %s)", path, r.Method), http.StatusNotFound)
		}
	}

	mux.HandleFunc(basePath, handler)
	mux.HandleFunc(basePath+"/", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client, config.Owner, config.Repo
}
