// Package prompt reads command lines interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Prompt reads a line and records non-empty input in the session history.
func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	input, err := p.State.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.AppendHistory(input)
	}
	return input, nil
}

// MultiLineInput accepts commands one per line, ending with double Enter
func MultiLineInput(w io.Writer, prompt string) ([]string, error) {
	prompter := NewLinerPrompter()
	defer func() { _ = prompter.Close() }()

	return MultiLineInputWithPrompter(prompter, w, prompt)
}

// MultiLineInputWithPrompter is MultiLineInput using a custom prompter. Blank
// lines are not returned.
func MultiLineInputWithPrompter(prompter Prompter, w io.Writer, prompt string) ([]string, error) {
	if _, err := color.New(color.FgCyan).Fprintf(w, "%s (Press Enter twice when done)\n", prompt); err != nil {
		return nil, fmt.Errorf("failed to write prompt: %w", err)
	}

	lines := make([]string, 0, 10) // pre-allocate with initial capacity
	emptyLineCount := 0

	for {
		input, err := prompter.Prompt(color.YellowString("  "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("multi-line input failed: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			emptyLineCount++
			if emptyLineCount >= 2 {
				break
			}
			continue
		}

		emptyLineCount = 0
		lines = append(lines, input)
	}

	return lines, nil
}
