package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	greleaseerrors "grelease.dev/grelease/internal/errors"
)

func TestProcessError(t *testing.T) {
	t.Run("message includes exit code and command line", func(t *testing.T) {
		err := greleaseerrors.NewProcessError("git", []string{"push", "origin"}, 128, []byte("out"), []byte("err"), errors.New("exit status 128"))
		require.Equal(t, "child exited with code 128: git push origin", err.Error())
		require.True(t, err.Started)
	})

	t.Run("spawn failure has no exit code", func(t *testing.T) {
		err := greleaseerrors.NewSpawnError("nope", nil, errors.New("executable file not found"))
		require.False(t, err.Started)
		require.Equal(t, -1, err.ExitCode)
		require.Contains(t, err.Error(), "failed to start nope")
	})

	t.Run("matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetch: %w", greleaseerrors.NewProcessError("git", []string{"fetch"}, 1, nil, nil, nil))
		require.ErrorIs(t, err, greleaseerrors.ErrProcessFailure)
		require.NotErrorIs(t, err, greleaseerrors.ErrDirtyWorkingTree)
	})
}

func TestDiagnostics(t *testing.T) {
	t.Run("returns captured buffers", func(t *testing.T) {
		perr := greleaseerrors.NewProcessError("git", []string{"merge"}, 1, []byte("CONFLICT"), []byte("fatal"), nil)
		stdout, stderr, ok := greleaseerrors.Diagnostics(fmt.Errorf("merge: %w", perr))
		require.True(t, ok)
		require.Equal(t, "CONFLICT", stdout)
		require.Equal(t, "fatal", stderr)
	})

	t.Run("reports absence for other errors", func(t *testing.T) {
		_, _, ok := greleaseerrors.Diagnostics(greleaseerrors.NewDirtyWorkingTreeError(""))
		require.False(t, ok)
	})
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	require.ErrorIs(t, greleaseerrors.NewDirtyWorkingTreeError("M file"), greleaseerrors.ErrDirtyWorkingTree)
	require.ErrorIs(t, greleaseerrors.NewEmptyBranchNameError(), greleaseerrors.ErrEmptyBranchName)
	require.ErrorIs(t, &greleaseerrors.ValidationRetry{Candidate: "1.0.0", Exists: true}, greleaseerrors.ErrValidationRetry)
	require.Equal(t, "tag must not be empty", (&greleaseerrors.ValidationRetry{}).Error())
}
