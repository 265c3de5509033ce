// Package prompt asks the user for input that was not supplied on the
// command line.
package prompt

import (
	"errors"
	"io"

	"github.com/filament-tools/filament-page/internal/output"
)

// ErrNoInput is returned when a required answer cannot be obtained.
var ErrNoInput = errors.New("no input available")

// Prompter asks questions and returns the user's answers.
type Prompter interface {
	// Ask returns the answer to question. An empty answer is allowed.
	Ask(question string) (string, error)

	// AskRequired returns a non-empty answer to question.
	AskRequired(question string) (string, error)

	// Choice returns one of options. def is the index chosen on an empty answer.
	Choice(question string, options []string, def int) (string, error)
}

// New returns a terminal prompter when in is a TTY and a line-based
// prompter otherwise, so answers can be piped.
func New(in io.Reader, out io.Writer) Prompter {
	if output.IsTerminalReader(in) {
		output.Debug("using interactive prompter")
		return &Huh{}
	}
	output.Debug("using line prompter")
	return NewLine(in, out)
}

// NonInteractive never asks. Optional questions get an empty answer,
// choices get their default and required questions fail.
type NonInteractive struct{}

// Ask implements Prompter.
func (NonInteractive) Ask(string) (string, error) {
	return "", nil
}

// AskRequired implements Prompter.
func (NonInteractive) AskRequired(question string) (string, error) {
	return "", &RequiredError{Question: question}
}

// Choice implements Prompter.
func (NonInteractive) Choice(_ string, options []string, def int) (string, error) {
	return defaultOption(options, def)
}

// RequiredError reports a required question that received no answer.
type RequiredError struct {
	Question string
}

// Error implements the error interface.
func (e *RequiredError) Error() string {
	return "no answer for required question: " + e.Question
}

// Unwrap returns ErrNoInput.
func (e *RequiredError) Unwrap() error {
	return ErrNoInput
}

func defaultOption(options []string, def int) (string, error) {
	if len(options) == 0 {
		return "", errors.New("choice requires at least one option")
	}
	if def < 0 || def >= len(options) {
		def = 0
	}
	return options[def], nil
}
