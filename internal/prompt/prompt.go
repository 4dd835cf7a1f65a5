// Package prompt asks the operator single-line questions.
//
// Every implementation returns the typed line without its terminator and
// applies no other trimming. There is no timeout; a prompt blocks until the
// operator answers or input ends.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when terminal prompts are disabled via GRELEASE_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (GRELEASE_TEST_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the operator cancels a terminal prompt
var ErrCanceled = errors.New("canceled")

// Prompter asks one question and returns one line
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Mode selects a Prompter implementation
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeLine   Mode = "line"
	ModeSurvey Mode = "survey"
	ModeTUI    Mode = "tui"
)

// ParseMode validates a mode name. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeLine, ModeSurvey, ModeTUI:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown prompt mode %q (expected auto, line, survey or tui)", s)
}

// New returns the Prompter for mode reading from in and writing to out.
// ModeAuto picks the survey prompter when both ends are terminals and the
// line prompter otherwise.
func New(mode Mode, in io.Reader, out io.Writer) (Prompter, error) {
	switch mode {
	case ModeLine:
		return NewLinePrompter(in, out), nil
	case ModeSurvey:
		return NewSurveyPrompter(), nil
	case ModeTUI:
		return NewTeaPrompter(in, out), nil
	case ModeAuto, "":
		if isTerminal(in) && isTerminal(out) {
			return NewSurveyPrompter(), nil
		}
		return NewLinePrompter(in, out), nil
	}
	return nil, fmt.Errorf("unknown prompt mode %q", mode)
}

func checkInteractiveAllowed() error {
	if os.Getenv("GRELEASE_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
