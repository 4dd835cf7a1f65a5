package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads original format", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte(`{ "devBranch": "develop", "masterBranch": "master", "packages": ["package.json", "bower.json"] }`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "develop", cfg.DevBranch)
		require.Equal(t, "master", cfg.MasterBranch)
		require.Equal(t, []string{"package.json", "bower.json"}, cfg.Packages)
		require.Equal(t, DefaultRemote, cfg.Remote)
		require.Equal(t, DefaultTokenEnv, cfg.GitHub.TokenEnv)
		require.False(t, cfg.GitHub.Release)
	})

	t.Run("accepts comments, trailing commas and optional keys", func(t *testing.T) {
		t.Parallel()
		cfg, err := Parse([]byte(`{
  // branches
  "devBranch": "dev",
  "masterBranch": "main",
  "remote": "upstream",
  "github": { "release": true, "draft": true, "tokenEnv": "GH_TOKEN", },
  "unknown": 1,
}`))
		require.NoError(t, err)
		require.Equal(t, "upstream", cfg.Remote)
		require.True(t, cfg.GitHub.Release)
		require.True(t, cfg.GitHub.Draft)
		require.Equal(t, "GH_TOKEN", cfg.GitHub.TokenEnv)
		require.Empty(t, cfg.Packages)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), FileName))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte(`{"devBranch": `))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{DevBranch: "develop", MasterBranch: "master"}},
		{name: "empty dev branch", cfg: Config{MasterBranch: "master"}, wantErr: "devBranch"},
		{name: "blank master branch", cfg: Config{DevBranch: "develop", MasterBranch: "  "}, wantErr: "masterBranch"},
		{name: "same branches", cfg: Config{DevBranch: "main", MasterBranch: "main"}, wantErr: "must differ"},
		{name: "empty package path", cfg: Config{DevBranch: "d", MasterBranch: "m", Packages: []string{"a.json", ""}}, wantErr: "packages[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReleaseBranch(t *testing.T) {
	require.Equal(t, "release/1.0.0", ReleaseBranch("1.0.0"))
	require.Equal(t, Path("/repo"), filepath.Join("/repo", ".grelease"))
}
