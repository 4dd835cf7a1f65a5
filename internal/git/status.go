package git

import (
	"context"
	"strings"
)

// cleanTreeMarker is printed by git status when nothing is pending
const cleanTreeMarker = "nothing to commit, working tree clean"

// IsClean reports whether git status shows no pending changes.
// The status output is returned so callers can report it.
func (r *Repo) IsClean(ctx context.Context) (bool, string, error) {
	out, err := r.Status(ctx)
	if err != nil {
		return false, "", err
	}
	return strings.Contains(out, cleanTreeMarker), out, nil
}
