package testutil

import (
	"fmt"
	"sync"
)

// Prompter answers prompts from a map keyed by label. Every label asked is
// recorded, in order, including ones it had no answer for.
type Prompter struct {
	mu      sync.Mutex
	answers map[string]string
	errs    map[string]error
	asked   []string
	log     *EventLog
}

// NewPrompter creates a prompter answering with the given label/value pairs
func NewPrompter(answers map[string]string) *Prompter {
	if answers == nil {
		answers = map[string]string{}
	}
	return &Prompter{answers: answers, errs: map[string]error{}}
}

// WithError makes the prompt for label fail with err
func (p *Prompter) WithError(label string, err error) *Prompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[label] = err
	return p
}

// WithLog records every prompt in log as "prompt <label>"
func (p *Prompter) WithLog(log *EventLog) *Prompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.log = log
	return p
}

// Prompt returns the scripted answer for label
func (p *Prompter) Prompt(label string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.asked = append(p.asked, label)
	p.log.Add("prompt " + label)
	if err, ok := p.errs[label]; ok {
		return "", err
	}
	answer, ok := p.answers[label]
	if !ok {
		return "", fmt.Errorf("no scripted answer for %q", label)
	}
	return answer, nil
}

// Asked returns the labels prompted so far
func (p *Prompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	asked := make([]string, len(p.asked))
	copy(asked, p.asked)
	return asked
}

// Count returns how many times label was prompted
func (p *Prompter) Count(label string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, l := range p.asked {
		if l == label {
			n++
		}
	}
	return n
}
