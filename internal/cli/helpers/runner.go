// Package helpers provides shared plumbing for grelease commands.
package helpers

import (
	"github.com/spf13/cobra"

	"grelease.dev/grelease/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, opts runtime.Options, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return fn(ctx)
}
