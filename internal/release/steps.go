package release

import (
	"context"
	"errors"
	"fmt"
	"slices"

	greleaseerrors "grelease.dev/grelease/internal/errors"
)

const (
	branchGuardQuestion = "Do you want to checkout the development branch and merge the current branch? (y/n) "
	manualEditQuestion  = "You can apply changes to the files now. Press Enter when you are ready to release ... "
)

// BumpCommitMessage is the commit message of the version bump on the release branch
func BumpCommitMessage(tag string) string {
	return fmt.Sprintf("Bump version to %s.", tag)
}

// TagMessage is the annotation of the release tag
func TagMessage(tag string) string {
	return "Release of " + tag
}

func (w *Workflow) cleanCheck(ctx context.Context, _ *WorkflowContext) error {
	w.splog.Step("- Checking local repository for uncommited changes ...")

	clean, status, err := w.repo.IsClean(ctx)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		return greleaseerrors.NewDirtyWorkingTreeError(status)
	}
	return nil
}

// tagCleanup deletes every local tag. Remote tags come back with the next fetch,
// so the remote stays the source of truth for tag existence.
func (w *Workflow) tagCleanup(ctx context.Context, _ *WorkflowContext) error {
	w.splog.Step("- Deleting local tags")

	tags, err := w.repo.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local tags: %w", err)
	}
	for _, tag := range tags {
		if err := w.repo.DeleteTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to delete local tag %s: %w", tag, err)
		}
	}
	return nil
}

func (w *Workflow) syncStep(ctx context.Context, _ *WorkflowContext) error {
	return w.sync(ctx)
}

func (w *Workflow) sync(ctx context.Context) error {
	w.splog.Step("- Pulling from remote %s", w.repo.Remote())

	if err := w.repo.Fetch(ctx); err != nil {
		return err
	}
	if err := w.repo.PullAll(ctx); err != nil {
		return err
	}
	return nil
}

func (w *Workflow) negotiate(ctx context.Context, wc *WorkflowContext) error {
	tag, err := w.negotiator.DetermineNextTag(ctx)
	if err != nil {
		return err
	}
	wc.SetTag(tag)
	wc.Answers[AnswerTag] = tag
	return nil
}

// branchGuard lets the run continue silently from the development, release or
// master branch. From any other branch the operator decides once whether to
// merge it into development first.
func (w *Workflow) branchGuard(ctx context.Context, wc *WorkflowContext) error {
	current, err := w.repo.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current branch: %w", err)
	}
	wc.StartBranch = current

	if current == w.cfg.DevBranch || current == wc.ReleaseBranch || current == w.cfg.MasterBranch {
		return nil
	}

	w.splog.Info("You are not in the development branch ('%s'). You are in '%s'.", w.cfg.DevBranch, current)
	answer, err := w.prompter.Ask(ctx, branchGuardQuestion)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	wc.Answers[AnswerBranchGuard] = answer

	if answer != "y" {
		w.splog.Info("Okay, then I will stop here.")
		return errAbortedByOperator
	}

	if err := w.repo.Checkout(ctx, w.cfg.DevBranch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", w.cfg.DevBranch, err)
	}
	if err := w.repo.Pull(ctx); err != nil {
		return fmt.Errorf("failed to pull %s: %w", w.cfg.DevBranch, err)
	}
	if err := w.repo.MergeNoFF(ctx, current); err != nil {
		return fmt.Errorf("failed to merge %s into %s: %w", current, w.cfg.DevBranch, err)
	}
	return nil
}

func (w *Workflow) branchSetup(ctx context.Context, wc *WorkflowContext) error {
	w.splog.Step("- Checking out to release branch ('%s') ... ", wc.ReleaseBranch)

	if wc.Tag == "" || wc.ReleaseBranch == "" {
		return greleaseerrors.NewEmptyBranchNameError()
	}

	branches, err := w.repo.ListBranches(ctx)
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}
	if slices.Contains(branches, wc.ReleaseBranch) {
		err = w.repo.Checkout(ctx, wc.ReleaseBranch)
	} else {
		err = w.repo.CreateAndCheckout(ctx, wc.ReleaseBranch)
	}
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", wc.ReleaseBranch, err)
	}

	w.splog.Step("- Merging '%s' into '%s' ...", w.cfg.DevBranch, wc.ReleaseBranch)
	if err := w.repo.MergeNoFF(ctx, w.cfg.DevBranch); err != nil {
		return fmt.Errorf("failed to merge %s into %s: %w", w.cfg.DevBranch, wc.ReleaseBranch, err)
	}
	return nil
}

func (w *Workflow) versionBump(ctx context.Context, wc *WorkflowContext) error {
	w.splog.Step("- Bumping version ...")

	var errs []error
	for _, path := range w.cfg.Packages {
		if err := w.writer.SetVersion(path, wc.Tag); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to bump version: %w", err)
	}

	answer, err := w.prompter.Ask(ctx, manualEditQuestion)
	if err != nil {
		return fmt.Errorf("failed to wait for manual changes: %w", err)
	}
	wc.Answers[AnswerManualEdits] = answer

	w.splog.Step("- Commiting new version ...")
	if err := w.repo.StageAll(ctx); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	if err := w.repo.CommitAll(ctx, BumpCommitMessage(wc.Tag)); err != nil {
		return fmt.Errorf("failed to commit version bump: %w", err)
	}

	w.splog.Step("- Pushing new version ...")
	if err := w.repo.PushUpstream(ctx, wc.ReleaseBranch); err != nil {
		return fmt.Errorf("failed to push %s: %w", wc.ReleaseBranch, err)
	}
	return nil
}

func (w *Workflow) masterMerge(ctx context.Context, wc *WorkflowContext) error {
	w.splog.Step("- Merging %s into %s ...", wc.ReleaseBranch, w.cfg.MasterBranch)

	if err := w.repo.Checkout(ctx, w.cfg.MasterBranch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", w.cfg.MasterBranch, err)
	}
	if err := w.repo.Fetch(ctx); err != nil {
		return err
	}
	if err := w.repo.Pull(ctx); err != nil {
		return fmt.Errorf("failed to pull %s: %w", w.cfg.MasterBranch, err)
	}
	if err := w.repo.MergeNoFF(ctx, wc.ReleaseBranch); err != nil {
		return fmt.Errorf("failed to merge %s into %s: %w", wc.ReleaseBranch, w.cfg.MasterBranch, err)
	}
	if err := w.repo.Push(ctx); err != nil {
		return fmt.Errorf("failed to push %s: %w", w.cfg.MasterBranch, err)
	}
	return nil
}

func (w *Workflow) tag(ctx context.Context, wc *WorkflowContext) error {
	w.splog.Step("- Tagging the release ...")

	if err := w.repo.CreateAnnotatedTag(ctx, wc.Tag, TagMessage(wc.Tag)); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", wc.Tag, err)
	}
	if err := w.repo.PushTag(ctx, wc.Tag); err != nil {
		return fmt.Errorf("failed to push tag %s: %w", wc.Tag, err)
	}
	return nil
}

func (w *Workflow) returnToDev(ctx context.Context, _ *WorkflowContext) error {
	w.splog.Step("- Switching back to development branch ...")

	if err := w.repo.Checkout(ctx, w.cfg.DevBranch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", w.cfg.DevBranch, err)
	}
	if err := w.sync(ctx); err != nil {
		return err
	}

	remoteMaster := w.repo.Remote() + "/" + w.cfg.MasterBranch
	w.splog.Step("- Merging '%s' into '%s' ...", w.cfg.MasterBranch, w.cfg.DevBranch)
	w.splog.Newline()
	if err := w.repo.MergeNoFF(ctx, remoteMaster); err != nil {
		return fmt.Errorf("failed to merge %s into %s: %w", remoteMaster, w.cfg.DevBranch, err)
	}
	if err := w.repo.Push(ctx); err != nil {
		return fmt.Errorf("failed to push %s: %w", w.cfg.DevBranch, err)
	}
	return nil
}

// publish never fails the run: the tag is already pushed when it runs.
func (w *Workflow) publish(ctx context.Context, wc *WorkflowContext) error {
	w.splog.Step("- Publishing GitHub release ...")

	url, err := w.publisher.PublishRelease(ctx, wc.Tag)
	if err != nil {
		w.splog.Warn("failed to publish GitHub release for %s: %v", wc.Tag, err)
		return nil
	}
	w.splog.Info("Published %s", url)
	return nil
}
