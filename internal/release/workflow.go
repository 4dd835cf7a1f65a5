package release

import (
	"context"
	"errors"

	"grelease.dev/grelease/internal/config"
	"grelease.dev/grelease/internal/manifest"
	"grelease.dev/grelease/internal/prompt"
	"grelease.dev/grelease/internal/tui"
)

// errAbortedByOperator ends the run without an error
var errAbortedByOperator = errors.New("aborted by operator")

// Options contains the collaborators of a Workflow
type Options struct {
	Repo     Repository
	Prompter prompt.Prompter
	Writer   manifest.Writer
	Config   *config.Config
	Splog    *tui.Splog
	// Publisher is optional; it is used only when Config.GitHub.Release is set.
	Publisher Publisher
}

// Workflow runs one release from start to finish
type Workflow struct {
	repo       Repository
	prompter   prompt.Prompter
	writer     manifest.Writer
	cfg        *config.Config
	splog      *tui.Splog
	publisher  Publisher
	negotiator *Negotiator
	state      *WorkflowContext
	failed     Step
}

type stepFunc func(ctx context.Context, wc *WorkflowContext) error

type plannedStep struct {
	step Step
	run  stepFunc
}

// NewWorkflow creates a Workflow. A nil Splog logs to stdout.
func NewWorkflow(opts Options) *Workflow {
	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Workflow{
		repo:       opts.Repo,
		prompter:   opts.Prompter,
		writer:     opts.Writer,
		cfg:        opts.Config,
		splog:      splog,
		publisher:  opts.Publisher,
		negotiator: NewNegotiator(opts.Repo, opts.Prompter, splog),
	}
}

// Context returns the state of the last run, or nil before Run
func (w *Workflow) Context() *WorkflowContext {
	return w.state
}

// FailedStep returns the step that ended the last run with an error
func (w *Workflow) FailedStep() Step {
	return w.failed
}

func (w *Workflow) plan() []plannedStep {
	steps := []plannedStep{
		{StepCleanCheck, w.cleanCheck},
		{StepTagCleanup, w.tagCleanup},
		{StepSync, w.syncStep},
		{StepNegotiate, w.negotiate},
		{StepBranchGuard, w.branchGuard},
		{StepBranchSetup, w.branchSetup},
		{StepVersionBump, w.versionBump},
		{StepMasterMerge, w.masterMerge},
		{StepTag, w.tag},
		{StepReturnToDev, w.returnToDev},
	}
	if w.cfg.GitHub.Release && w.publisher != nil {
		steps = append(steps, plannedStep{StepPublish, w.publish})
	}
	return steps
}

// Run executes every step in order with a fresh WorkflowContext.
//
// It returns OutcomeCompleted when all steps ran and OutcomeAbortedByOperator
// with a nil error when the operator declined the branch guard. Any other
// failure returns OutcomeFailed and the step's error; FailedStep names the step.
func (w *Workflow) Run(ctx context.Context) (Outcome, error) {
	wc := newWorkflowContext()
	w.state = wc
	w.failed = ""

	for _, s := range w.plan() {
		if err := s.run(ctx, wc); err != nil {
			if errors.Is(err, errAbortedByOperator) {
				return OutcomeAbortedByOperator, nil
			}
			w.failed = s.step
			w.splog.Debug("step %s failed: %v", s.step, err)
			return OutcomeFailed, err
		}
		wc.Completed = append(wc.Completed, s.step)
	}
	return OutcomeCompleted, nil
}
