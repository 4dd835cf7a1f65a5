package git

import (
	"context"
	"fmt"
)

// StageAll stages every change under the working directory
func (r *Repo) StageAll(ctx context.Context) error {
	if _, err := r.run(ctx, "add", "."); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// CommitAll commits all tracked changes with message
func (r *Repo) CommitAll(ctx context.Context, message string) error {
	if _, err := r.run(ctx, "commit", "-am", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
