package testhelpers

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ScriptedPrompter answers prompts from a fixed list and records every question.
// It returns io.EOF once the answers run out.
type ScriptedPrompter struct {
	mu        sync.Mutex
	answers   []string
	questions []string
}

// NewScriptedPrompter creates a prompter that replies with answers in order
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Ask implements prompt.Prompter
func (p *ScriptedPrompter) Ask(_ context.Context, question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", fmt.Errorf("no scripted answer for %q: %w", question, io.EOF)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// Questions returns every question asked so far
func (p *ScriptedPrompter) Questions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.questions...)
}

// Remaining returns how many scripted answers were not consumed
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}
