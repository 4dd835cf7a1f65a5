package release

import (
	"context"

	"grelease.dev/grelease/internal/config"
)

// Step identifies one stage of the release workflow
type Step string

const (
	StepCleanCheck  Step = "CLEAN_CHECK"
	StepTagCleanup  Step = "TAG_CLEANUP"
	StepSync        Step = "SYNC"
	StepNegotiate   Step = "NEGOTIATE"
	StepBranchGuard Step = "BRANCH_GUARD"
	StepBranchSetup Step = "BRANCH_SETUP"
	StepVersionBump Step = "VERSION_BUMP"
	StepMasterMerge Step = "MASTER_MERGE"
	StepTag         Step = "TAG"
	StepReturnToDev Step = "RETURN_TO_DEV"
	StepPublish     Step = "PUBLISH"
)

// Outcome is the terminal state of a run that did not fail
type Outcome int

const (
	// OutcomeFailed accompanies a non-nil error from Run
	OutcomeFailed Outcome = iota - 1
	// OutcomeCompleted means every step ran
	OutcomeCompleted
	// OutcomeAbortedByOperator means the operator declined the branch guard
	OutcomeAbortedByOperator
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailed:
		return "failed"
	case OutcomeCompleted:
		return "completed"
	case OutcomeAbortedByOperator:
		return "aborted by operator"
	}
	return "unknown"
}

// Prompt identifiers used as keys in WorkflowContext.Answers
const (
	AnswerTag         = "tag"
	AnswerBranchGuard = "branchGuard"
	AnswerManualEdits = "manualEdits"
)

// WorkflowContext is the run-scoped state threaded through every step
type WorkflowContext struct {
	Tag           string
	ReleaseBranch string
	// StartBranch is the branch checked out when BranchGuard ran
	StartBranch string
	Answers     map[string]string
	Completed   []Step
}

func newWorkflowContext() *WorkflowContext {
	return &WorkflowContext{Answers: make(map[string]string)}
}

// SetTag stores the negotiated tag and derives the release branch from it
func (c *WorkflowContext) SetTag(tag string) {
	c.Tag = tag
	c.ReleaseBranch = config.ReleaseBranch(tag)
}

// Repository is the subset of the git facade the workflow drives
type Repository interface {
	Remote() string
	IsClean(ctx context.Context) (bool, string, error)
	ListTags(ctx context.Context) ([]string, error)
	DeleteTag(ctx context.Context, tag string) error
	CreateAnnotatedTag(ctx context.Context, tag, message string) error
	PushTag(ctx context.Context, tag string) error
	Fetch(ctx context.Context) error
	PullAll(ctx context.Context) error
	Pull(ctx context.Context) error
	CurrentBranch(ctx context.Context) (string, error)
	ListBranches(ctx context.Context) ([]string, error)
	Checkout(ctx context.Context, branch string) error
	CreateAndCheckout(ctx context.Context, branch string) error
	MergeNoFF(ctx context.Context, ref string) error
	StageAll(ctx context.Context) error
	CommitAll(ctx context.Context, message string) error
	Push(ctx context.Context) error
	PushUpstream(ctx context.Context, branch string) error
}

// Publisher announces a pushed tag somewhere outside git
type Publisher interface {
	PublishRelease(ctx context.Context, tag string) (string, error)
}
