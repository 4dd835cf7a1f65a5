package git

import (
	"context"
	"fmt"
)

// CurrentBranch returns the branch HEAD points at
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "symbolic-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to read current branch: %w", err)
	}
	return ParseSymbolicRef(out), nil
}

// ListBranches returns the names of all local branches
func (r *Repo) ListBranches(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "branch", "-l")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return ParseBranchList(out), nil
}

// Checkout checks out an existing branch
func (r *Repo) Checkout(ctx context.Context, branchName string) error {
	if _, err := r.run(ctx, "checkout", branchName); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckout creates and checks out a new branch
func (r *Repo) CreateAndCheckout(ctx context.Context, branchName string) error {
	if _, err := r.run(ctx, "checkout", "-b", branchName); err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// MergeNoFF merges ref into the current branch, always creating a merge commit
func (r *Repo) MergeNoFF(ctx context.Context, ref string) error {
	if _, err := r.run(ctx, "merge", "--no-ff", ref); err != nil {
		return fmt.Errorf("failed to merge %s: %w", ref, err)
	}
	return nil
}
