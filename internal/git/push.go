package git

import (
	"context"
	"fmt"
)

// Push pushes the current branch to its upstream
func (r *Repo) Push(ctx context.Context) error {
	if _, err := r.run(ctx, "push"); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

// PushUpstream pushes a branch and sets its upstream on the configured remote
func (r *Repo) PushUpstream(ctx context.Context, branchName string) error {
	if _, err := r.run(ctx, "push", "--set-upstream", r.remote, branchName); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}
