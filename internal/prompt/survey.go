package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter asks through survey's Input question on the process terminal
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Ask implements Prompter
func (p *SurveyPrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var answer string
	input := &survey.Input{Message: strings.TrimSpace(question)}
	if err := survey.AskOne(input, &answer, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return answer, nil
}
