package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// FileName is the configuration file looked up at the repository root
const FileName = ".grelease"

// Defaults for optional keys
const (
	DefaultRemote   = "origin"
	DefaultTokenEnv = "GITHUB_TOKEN"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the release configuration for one repository
type Config struct {
	DevBranch    string   `json:"devBranch"`
	MasterBranch string   `json:"masterBranch"`
	Packages     []string `json:"packages"`
	Remote       string   `json:"remote,omitempty"`
	GitHub       GitHub   `json:"github"`
}

// GitHub controls publishing a GitHub release after the tag is pushed
type GitHub struct {
	Release  bool   `json:"release,omitempty"`
	Draft    bool   `json:"draft,omitempty"`
	TokenEnv string `json:"tokenEnv,omitempty"`
}

// Path returns the default configuration path for repoRoot
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads, defaults and validates the configuration at path.
// The file is JSON and may contain comments and trailing commas.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes configuration bytes, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.GitHub.TokenEnv == "" {
		c.GitHub.TokenEnv = DefaultTokenEnv
	}
}

// Validate checks the invariants the release workflow depends on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DevBranch) == "" {
		return fmt.Errorf("%w: devBranch must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.MasterBranch) == "" {
		return fmt.Errorf("%w: masterBranch must not be empty", ErrInvalidConfig)
	}
	if c.DevBranch == c.MasterBranch {
		return fmt.Errorf("%w: devBranch and masterBranch must differ (both are %q)", ErrInvalidConfig, c.DevBranch)
	}
	for i, p := range c.Packages {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: packages[%d] must not be empty", ErrInvalidConfig, i)
		}
	}
	return nil
}

// ReleaseBranch returns the release branch name for tag
func ReleaseBranch(tag string) string {
	return "release/" + tag
}
