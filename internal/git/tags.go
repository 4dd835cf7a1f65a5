package git

import (
	"context"
	"fmt"
)

// ListTags returns local tag names in the order git reports them
func (r *Repo) ListTags(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "tag", "-l")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return ParseTagList(out), nil
}

// DeleteTag deletes a local tag. The remote is untouched.
func (r *Repo) DeleteTag(ctx context.Context, tag string) error {
	if _, err := r.run(ctx, "tag", "-d", tag); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", tag, err)
	}
	return nil
}

// CreateAnnotatedTag creates an annotated tag on HEAD
func (r *Repo) CreateAnnotatedTag(ctx context.Context, tag, message string) error {
	if _, err := r.run(ctx, "tag", "-a", tag, "-m", message); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}
	return nil
}

// PushTag pushes a single tag to the remote
func (r *Repo) PushTag(ctx context.Context, tag string) error {
	if _, err := r.run(ctx, "push", r.remote, tag); err != nil {
		return fmt.Errorf("failed to push tag %s: %w", tag, err)
	}
	return nil
}
