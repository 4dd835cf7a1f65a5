package git

import (
	"context"
	"fmt"
)

// Fetch fetches from the default remote
func (r *Repo) Fetch(ctx context.Context) error {
	if _, err := r.run(ctx, "fetch"); err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// PullAll pulls from the configured remote with -a (append fetched refs)
func (r *Repo) PullAll(ctx context.Context) error {
	if _, err := r.run(ctx, "pull", r.remote, "-a"); err != nil {
		return fmt.Errorf("failed to pull from %s: %w", r.remote, err)
	}
	return nil
}

// Pull pulls the current branch from its upstream
func (r *Repo) Pull(ctx context.Context) error {
	if _, err := r.run(ctx, "pull"); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}
